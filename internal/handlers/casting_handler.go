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

type CastingHandler struct {
	*BaseHandler
	castingService     services.CastingService
	applicationService services.ApplicationService
}

func NewCastingHandler(base *BaseHandler, castingService services.CastingService, applicationService services.ApplicationService) *CastingHandler {
	return &CastingHandler{
		BaseHandler:        base,
		castingService:     castingService,
		applicationService: applicationService,
	}
}

func (h *CastingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Public listing of open castings
	castings := rg.Group("/castings")
	{
		castings.GET("", h.ListOpen)
		castings.GET("/:id", h.GetByID)
	}

	brand := rg.Group("/castings")
	brand.Use(middleware.AuthMiddleware())
	{
		brand.POST("", middleware.RequireRoles(models.UserRoleBrand), h.Create)
		brand.PUT("/:id", middleware.RequireRoles(models.UserRoleBrand), h.Update)
		brand.PATCH("/:id/status", middleware.RequireRoles(models.UserRoleBrand, models.UserRoleAdmin), h.UpdateStatus)
		brand.DELETE("/:id", middleware.RequireRoles(models.UserRoleBrand), h.Delete)
		brand.GET("/:id/applications", middleware.RequireRoles(models.UserRoleBrand), h.ListApplications)
		brand.POST("/:id/apply", middleware.RequireRoles(models.UserRoleModel), h.Apply)
	}

	mine := rg.Group("/brand/castings")
	mine.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleBrand))
	{
		mine.GET("", h.ListMine)
	}
}

func (h *CastingHandler) ListOpen(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.castingService.ListOpen(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CastingHandler) GetByID(c *gin.Context) {
	resp, err := h.castingService.GetByID(c.Param("id"), true)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CastingHandler) Create(c *gin.Context) {
	brandID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCastingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.castingService.Create(brandID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CastingHandler) Update(c *gin.Context) {
	brandID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCastingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.castingService.Update(brandID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CastingHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCastingStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.castingService.UpdateStatus(middleware.GetRole(c), userID, c.Param("id"), models.CastingStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CastingHandler) Delete(c *gin.Context) {
	brandID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.castingService.Delete(brandID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

func (h *CastingHandler) ListMine(c *gin.Context) {
	brandID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var q dto.CastingListQuery
	if !h.BindAndValidateQuery(c, &q) {
		return
	}

	resp, err := h.castingService.ListByBrand(brandID, q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CastingHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyToCastingRequest
	// Message is optional, ignore an empty body
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBind(&req); err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
			return
		}
	}

	resp, err := h.applicationService.Apply(userID, c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CastingHandler) ListApplications(c *gin.Context) {
	brandID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.ListForCasting(brandID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
