package user

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (*RefreshResponse, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*User, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
