package account

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/handler"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/service/account"
)

type Handler struct {
	service *account.Service
}

func NewHandler(service *account.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the read-only account endpoints, available to
// every authenticated user.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	accounts := r.Group("/accounts")
	{
		accounts.GET("", h.List)
		accounts.GET("/available", h.Available)
		accounts.GET("/search", h.Search)
		accounts.GET("/stock", h.Stock)
	}
}

// RegisterAdminRoutes mounts the mutating account endpoints.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	accounts := r.Group("/accounts")
	{
		accounts.POST("", h.Create)
		accounts.POST("/bulk", h.CreateBulk)
		accounts.PATCH("/:id", h.Update)
		accounts.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	accounts, err := h.service.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(accounts))
}

func (h *Handler) Available(c *gin.Context) {
	accounts, err := h.service.Available(c.Request.Context(), c.Query("platform"), c.Query("type"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(accounts))
}

func (h *Handler) Search(c *gin.Context) {
	accounts, err := h.service.Search(c.Request.Context(), c.Query("email"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(accounts))
}

func (h *Handler) Stock(c *gin.Context) {
	stock, err := h.service.Stock(c.Request.Context(), c.Query("type"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stock))
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) CreateBulk(c *gin.Context) {
	var req model.BulkAccountsRequest
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

func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid account ID"))
		return
	}

	var req model.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(updated))
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid account ID"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, &handler.Response{Status: "success", Message: "account deleted"})
}
