package validator

import (
	"log"

	"elgrace_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-profile-status", validateProfileStatus)
	mustRegister("is-media-role", validateMediaRole)
	mustRegister("is-gender", validateGender)
}

// Empty values pass; pair these tags with 'required' when the field is
// mandatory.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleModel, models.UserRoleBrand, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateProfileStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ProfileStatus(value) {
	case models.ProfileStatusUnderReview, models.ProfileStatusOnline, models.ProfileStatusOffline:
		return true
	default:
		return false
	}
}

func validateMediaRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.MediaRole(value) {
	case models.MediaRoleProfile, models.MediaRolePortfolio, models.MediaRoleIntroVideo, models.MediaRolePortfolioVideo:
		return true
	default:
		return false
	}
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
		return true
	default:
		return false
	}
}
