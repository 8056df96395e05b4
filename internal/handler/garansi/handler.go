package garansi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/handler"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/service/garansi"
)

const dateParamFormat = "2006-01-02"

type Handler struct {
	service *garansi.Service
}

func NewHandler(service *garansi.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	accounts := r.Group("/garansi-accounts")
	{
		accounts.GET("", h.List)
		accounts.GET("/search/by-date", h.SearchByWarrantyDate)
		accounts.GET("/search/by-expires", h.SearchByExpiry)
		accounts.POST("", h.CreateBulk)
	}
}

// List returns all warranty accounts, or filters by warranty day (?date=)
// or expiry day (?expires=).
func (h *Handler) List(c *gin.Context) {
	if raw := c.Query("date"); raw != "" {
		h.listByDay(c, raw, h.service.ListByWarrantyDate)
		return
	}
	if raw := c.Query("expires"); raw != "" {
		h.listByDay(c, raw, h.service.ListByExpiry)
		return
	}

	accounts, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(accounts))
}

func (h *Handler) SearchByWarrantyDate(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("query parameter 'date' is required"))
		return
	}
	h.listByDay(c, raw, h.service.ListByWarrantyDate)
}

func (h *Handler) SearchByExpiry(c *gin.Context) {
	raw := c.Query("date")
	if raw == "" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("query parameter 'date' is required"))
		return
	}
	h.listByDay(c, raw, h.service.ListByExpiry)
}

func (h *Handler) CreateBulk(c *gin.Context) {
	var req model.GaransiBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.CreateBulk(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) listByDay(c *gin.Context, raw string, query func(ctx context.Context, day time.Time) ([]*model.GaransiAccount, error)) {
	day, err := time.Parse(dateParamFormat, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid date, expected YYYY-MM-DD"))
		return
	}

	accounts, err := query(c.Request.Context(), day)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(accounts))
}
