package report

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/handler"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/middleware"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/service/report"
)

type Handler struct {
	service *report.Service
}

func NewHandler(service *report.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reported-accounts")
	{
		reports.GET("", h.List)
		reports.POST("", h.Create)
	}
}

// RegisterAdminRoutes mounts report resolution, an admin-only action
// because it may rotate the account password.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.PATCH("/reported-accounts/:id", h.Resolve)
}

func (h *Handler) List(c *gin.Context) {
	reports, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(reports))
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req, middleware.OperatorName(c))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) Resolve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid report ID"))
		return
	}

	// The body is optional: resolving without a new password keeps the old one.
	var req model.ResolveReportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
			return
		}
	}

	if err := h.service.Resolve(c.Request.Context(), id, req.NewPassword); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "report resolved"})
}
