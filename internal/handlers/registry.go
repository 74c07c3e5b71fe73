package handlers

import (
	"elgrace_backend/internal/services"
	"elgrace_backend/internal/storage"
	"elgrace_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// AppHandlers bundles every HTTP handler; RegisterAll mounts them on the
// versioned API group.
type AppHandlers struct {
	Auth        *AuthHandler
	Profile     *ProfileHandler
	Talent      *TalentHandler
	Media       *MediaHandler
	Casting     *CastingHandler
	Application *ApplicationHandler
	Booking     *BookingHandler
	File        *FileHandler
}

func NewAppHandlers(svcs *services.ServiceContainer, store storage.Storage, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:        NewAuthHandler(base, svcs.Auth),
		Profile:     NewProfileHandler(base, svcs.Profile),
		Talent:      NewTalentHandler(base, svcs.Directory, svcs.Profile),
		Media:       NewMediaHandler(base, svcs.Media, svcs.Profile),
		Casting:     NewCastingHandler(base, svcs.Casting, svcs.Application),
		Application: NewApplicationHandler(base, svcs.Application),
		Booking:     NewBookingHandler(base, svcs.Booking),
		File:        NewFileHandler(base, store),
	}
}

func (h *AppHandlers) RegisterAll(rg *gin.RouterGroup) {
	h.Auth.RegisterRoutes(rg)
	h.Profile.RegisterRoutes(rg)
	h.Talent.RegisterRoutes(rg)
	h.Media.RegisterRoutes(rg)
	h.Casting.RegisterRoutes(rg)
	h.Application.RegisterRoutes(rg)
	h.Booking.RegisterRoutes(rg)
	h.File.RegisterRoutes(rg)
}
