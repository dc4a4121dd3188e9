package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"caminodevida-backend/internal/domains/user"
	"caminodevida-backend/pkg/jwt"
	"caminodevida-backend/pkg/logger"
)

type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrValidation, err)
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			// Same error as a bad password so the response does not
			// reveal which emails have accounts.
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	logger.Info("Admin login", map[string]interface{}{
		"user_id": u.ID.String(),
		"role":    u.Role,
	})

	return &user.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         u,
	}, nil
}

func (s *userService) Refresh(ctx context.Context, req user.RefreshRequest) (*user.RefreshResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrValidation, err)
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	// Re-read the account so a deleted admin cannot keep refreshing.
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, user.ErrInvalidToken
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &user.RefreshResponse{AccessToken: accessToken}, nil
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) CreateUser(ctx context.Context, req user.CreateUserRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrValidation, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         req.Role,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("Admin account created", map[string]interface{}{
		"user_id": u.ID.String(),
		"role":    u.Role,
	})
	return u, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
