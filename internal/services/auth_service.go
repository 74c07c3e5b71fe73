package services

import (
	"errors"
	"time"

	"elgrace_backend/internal/auth"
	"elgrace_backend/internal/logger"
	"elgrace_backend/internal/models"
	"elgrace_backend/internal/repositories"
	"elgrace_backend/internal/services/dto"
	"elgrace_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
	GetUser(userID string) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo   repositories.UserRepository
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, accessTTL, refreshTTL time.Duration) AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *AuthServiceImpl) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Role == models.UserRoleAdmin {
		return nil, apperrors.NewForbiddenError("admin accounts cannot self-register")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hash,
		Role:         req.Role,
		Status:       models.UserStatusActive,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.NewForbiddenError("account is suspended")
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Refresh(refreshToken string) (*dto.AuthResponse, error) {
	claims, err := auth.ParseRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	stored, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if stored.ExpiresAt.Before(time.Now()) {
		_ = s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Rotate: the presented refresh token is spent.
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return apperrors.ErrInvalidToken
	}
	return nil
}

func (s *AuthServiceImpl) GetUser(userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	access, err := auth.NewAccessToken(user, s.accessTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	refresh, err := auth.NewRefreshToken(user, s.refreshTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.CreateRefreshToken(&models.RefreshToken{
		UserID:    user.ID,
		Token:     refresh,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    time.Now().Add(s.accessTTL),
		User:         dto.NewUserResponse(user),
	}, nil
}
