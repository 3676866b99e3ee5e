package ports

import (
	"context"

	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/domain"
)

type AuthService interface {
	SignUp(ctx context.Context, email, password, name string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// GetUser resolves a bearer token and returns the matching account.
	GetUser(ctx context.Context, token string) (*domain.User, error)
}
