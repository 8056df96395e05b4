package assignment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/handler"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/middleware"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/service/assignment"
)

type Handler struct {
	service *assignment.Service
}

func NewHandler(service *assignment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	assignments := r.Group("/assignments")
	{
		assignments.GET("", h.List)
		assignments.POST("", h.Create)
	}
}

func (h *Handler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(records))
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.service.Assign(c.Request.Context(), &req, middleware.OperatorName(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(result))
}
