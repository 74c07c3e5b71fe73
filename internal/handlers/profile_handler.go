package handlers

import (
	"net/http"

	"elgrace_backend/internal/middleware"
	"elgrace_backend/internal/models"
	"elgrace_backend/internal/services"
	"elgrace_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	profiles.Use(middleware.AuthMiddleware())
	{
		profiles.POST("", middleware.RequireRoles(models.UserRoleModel), h.Create)
		profiles.GET("/me", middleware.RequireRoles(models.UserRoleModel), h.GetMine)
		profiles.PUT("/me", middleware.RequireRoles(models.UserRoleModel), h.UpdateMine)
		profiles.GET("/:id", h.GetByID)
	}

	admin := rg.Group("/admin/profiles")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.List)
		admin.POST("/upsert", h.Upsert)
		admin.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *ProfileHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.Create(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProfileHandler) GetMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetByUserID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.Update(userID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetByID(c *gin.Context) {
	resp, err := h.profileService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) List(c *gin.Context) {
	var q dto.ProfileListQuery
	if !h.BindAndValidateQuery(c, &q) {
		return
	}

	resp, err := h.profileService.List(q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Upsert imports a profile keyed on its model code; existing records are
// overwritten, the code itself never changes.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	var req dto.AdminUpsertProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.AdminUpsert(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateProfileStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
