package validator

import (
	"testing"

	"elgrace_backend/internal/models"
	"elgrace_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomRulesOnDTOs(t *testing.T) {
	v := New()

	t.Run("media role", func(t *testing.T) {
		assert.NoError(t, v.Validate(dto.UploadMediaQuery{Role: "intro_video"}))

		err := v.Validate(dto.UploadMediaQuery{Role: "banner"})
		require.Error(t, err)
		verr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, verr.Errors, "role")
	})

	t.Run("profile status", func(t *testing.T) {
		assert.NoError(t, v.Validate(dto.UpdateProfileStatusRequest{Status: models.ProfileStatusOnline}))

		err := v.Validate(dto.UpdateProfileStatusRequest{Status: "LIVE"})
		require.Error(t, err)
		verr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Equal(t, "Must be a valid profile status", verr.Errors["status"])
	})

	t.Run("user role", func(t *testing.T) {
		req := dto.RegisterRequest{
			Email:    "model@example.com",
			Password: "password123",
			Role:     models.UserRoleModel,
			FullName: "Asha Verma",
		}
		assert.NoError(t, v.Validate(req))

		req.Role = "agency"
		err := v.Validate(req)
		require.Error(t, err)
		verr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, verr.Errors, "role")
	})

	t.Run("gender", func(t *testing.T) {
		req := dto.CreateProfileRequest{FullName: "Asha Verma", Gender: "Female"}
		assert.NoError(t, v.Validate(req))

		req.Gender = "female"
		err := v.Validate(req)
		require.Error(t, err)
		verr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, verr.Errors, "gender")
	})
}
