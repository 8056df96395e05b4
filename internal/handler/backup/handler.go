package backup

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/handler"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/service/backup"
)

type Handler struct {
	service *backup.Service
}

func NewHandler(service *backup.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.GET("/backup", h.Export)
	r.POST("/backup/restore", h.Restore)
}

// Export returns the full dataset as a downloadable JSON document.
func (h *Handler) Export(c *gin.Context) {
	data, err := h.service.Export(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="backup.json"`)
	c.JSON(http.StatusOK, data)
}

func (h *Handler) Restore(c *gin.Context) {
	var data model.BackupData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.service.Restore(c.Request.Context(), &data); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "backup restored"})
}
