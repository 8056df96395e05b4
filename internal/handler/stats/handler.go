package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/handler"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/service/stats"
)

type Handler struct {
	service *stats.Service
}

func NewHandler(service *stats.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	statistics := r.Group("/statistics")
	{
		statistics.GET("/customers", h.Customers)
		statistics.GET("/operators", h.Operators)
	}
	r.GET("/activities", h.Activities)
}

func (h *Handler) Customers(c *gin.Context) {
	customerStats, err := h.service.Customers(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(customerStats))
}

func (h *Handler) Operators(c *gin.Context) {
	operatorStats, err := h.service.Operators(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(operatorStats))
}

func (h *Handler) Activities(c *gin.Context) {
	activities, err := h.service.Activities(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(activities))
}
