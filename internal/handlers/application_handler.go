package handlers

import (
	"net/http"

	"elgrace_backend/internal/middleware"
	"elgrace_backend/internal/models"
	"elgrace_backend/internal/services"
	"elgrace_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apps := rg.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.GET("/mine", middleware.RequireRoles(models.UserRoleModel), h.ListMine)
		apps.PATCH("/:id/status", middleware.RequireRoles(models.UserRoleBrand), h.UpdateStatus)
		apps.POST("/:id/withdraw", middleware.RequireRoles(models.UserRoleModel), h.Withdraw)
	}
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListForModel(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	brandID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.UpdateStatus(brandID, c.Param("id"), models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.applicationService.Withdraw(userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application withdrawn"})
}
