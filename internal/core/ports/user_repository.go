package ports

import (
	"context"
	"time"

	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. A duplicate email yields domain.ErrEmailRegistered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// TouchLastActive updates only the last_active field. It must never
	// rewrite or re-validate the rest of the document.
	TouchLastActive(ctx context.Context, id string, at time.Time) error
}
