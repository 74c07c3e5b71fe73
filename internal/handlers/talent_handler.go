package handlers

import (
	"net/http"

	"elgrace_backend/internal/services"
	"elgrace_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// TalentHandler serves the public directory. No auth: this is the portal's
// landing surface.
type TalentHandler struct {
	*BaseHandler
	directoryService services.DirectoryService
	profileService   services.ProfileService
}

func NewTalentHandler(base *BaseHandler, directoryService services.DirectoryService, profileService services.ProfileService) *TalentHandler {
	return &TalentHandler{
		BaseHandler:      base,
		directoryService: directoryService,
		profileService:   profileService,
	}
}

func (h *TalentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	talents := rg.Group("/talents")
	{
		talents.GET("", h.List)
		talents.GET("/:code", h.GetByCode)
	}
}

func (h *TalentHandler) List(c *gin.Context) {
	var q dto.TalentListQuery
	if !h.BindAndValidateQuery(c, &q) {
		return
	}

	resp, err := h.directoryService.List(q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TalentHandler) GetByCode(c *gin.Context) {
	resp, err := h.profileService.GetByModelCode(c.Param("code"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
