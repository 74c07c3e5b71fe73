package services

import (
	"time"

	"elgrace_backend/internal/config"
	"elgrace_backend/internal/email"
	"elgrace_backend/internal/repositories"
	"elgrace_backend/internal/storage"

	"gorm.io/gorm"
)

// ServiceContainer wires every service with its repositories. Built once at
// startup and handed to the handler registry.
type ServiceContainer struct {
	Auth        AuthService
	Profile     ProfileService
	Directory   DirectoryService
	Media       MediaService
	ModelCode   ModelCodeService
	Casting     CastingService
	Application ApplicationService
	Booking     BookingService
}

func NewServiceContainer(db *gorm.DB, cfg *config.Config, store storage.Storage, mailer email.Provider) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	mediaRepo := repositories.NewMediaRepository()
	castingRepo := repositories.NewCastingRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	counterRepo := repositories.NewModelCodeRepository(db)

	codes := NewModelCodeService(counterRepo, profileRepo)

	return &ServiceContainer{
		Auth: NewAuthService(
			userRepo,
			time.Duration(cfg.JWT.AccessTTL)*time.Minute,
			time.Duration(cfg.JWT.RefreshTTL)*time.Hour,
		),
		Profile:     NewProfileService(profileRepo, userRepo, codes, mailer, cfg.Media.BaseURL),
		Directory:   NewDirectoryService(profileRepo, cfg.Media.BaseURL),
		Media:       NewMediaService(mediaRepo, store, *cfg),
		ModelCode:   codes,
		Casting:     NewCastingService(castingRepo),
		Application: NewApplicationService(applicationRepo, castingRepo, profileRepo),
		Booking:     NewBookingService(bookingRepo, profileRepo),
	}
}
