package handlers

import (
	"net/http"

	"elgrace_backend/internal/middleware"
	"elgrace_backend/internal/models"
	"elgrace_backend/internal/services"
	"elgrace_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
	}
}

func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware())
	{
		bookings.POST("", middleware.RequireRoles(models.UserRoleBrand), h.Create)
		bookings.GET("/sent", middleware.RequireRoles(models.UserRoleBrand), h.ListSent)
		bookings.GET("/received", middleware.RequireRoles(models.UserRoleModel), h.ListReceived)
		bookings.PATCH("/:id/status", h.UpdateStatus)
	}
}

func (h *BookingHandler) Create(c *gin.Context) {
	brandID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.bookingService.Create(brandID, req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BookingHandler) ListSent(c *gin.Context) {
	brandID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.bookingService.ListForBrand(brandID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) ListReceived(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.bookingService.ListForModel(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookingStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.bookingService.UpdateStatus(userID, middleware.GetRole(c), c.Param("id"), models.BookingStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
