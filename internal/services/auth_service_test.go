package services

import (
	"testing"
	"time"

	"elgrace_backend/internal/auth"
	"elgrace_backend/internal/models"
	"elgrace_backend/internal/repositories"
	"elgrace_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	repositories.UserRepository
	created *models.User
}

func (f *fakeUserRepo) Create(user *models.User) error {
	user.ID = "u-1"
	f.created = user
	return nil
}

func (f *fakeUserRepo) CreateRefreshToken(token *models.RefreshToken) error {
	return nil
}

func TestRegisterPersistsFullName(t *testing.T) {
	auth.SetSecret("test-secret")
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo, 15*time.Minute, 24*time.Hour)

	resp, err := svc.Register(dto.RegisterRequest{
		Email:    "asha@example.com",
		Password: "password123",
		Role:     models.UserRoleModel,
		FullName: "Asha Verma",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, "Asha Verma", repo.created.FullName)
	assert.Equal(t, "Asha Verma", resp.User.FullName)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo, 15*time.Minute, 24*time.Hour)

	_, err := svc.Register(dto.RegisterRequest{
		Email:    "root@example.com",
		Password: "password123",
		Role:     models.UserRoleAdmin,
		FullName: "Root",
	})
	require.Error(t, err)
	assert.Nil(t, repo.created)
}
