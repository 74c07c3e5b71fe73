package handlers

import (
	"net/http"

	"elgrace_backend/internal/middleware"
	"elgrace_backend/internal/models"
	"elgrace_backend/internal/services"
	"elgrace_backend/internal/services/dto"
	"elgrace_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	*BaseHandler
	mediaService   services.MediaService
	profileService services.ProfileService
}

func NewMediaHandler(base *BaseHandler, mediaService services.MediaService, profileService services.ProfileService) *MediaHandler {
	return &MediaHandler{
		BaseHandler:    base,
		mediaService:   mediaService,
		profileService: profileService,
	}
}

func (h *MediaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	media := rg.Group("/media")
	media.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleModel))
	{
		media.POST("", h.Upload)
		media.GET("", h.List)
		media.DELETE("/:id", h.Delete)
	}
}

func (h *MediaHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var q dto.UploadMediaQuery
	if !h.BindAndValidateQuery(c, &q) {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file field"))
		return
	}

	profile, err := h.profileService.GetByUserID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.mediaService.Upload(c.Request.Context(), h.GetDB(c), profile.ID, models.MediaRole(q.Role), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MediaHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetByUserID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.mediaService.List(h.GetDB(c), profile.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MediaHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetByUserID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.mediaService.Delete(c.Request.Context(), h.GetDB(c), profile.ID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
