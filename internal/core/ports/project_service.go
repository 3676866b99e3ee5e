package ports

import (
	"context"

	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/domain"
)

// CreateProjectInput carries the data needed to create a new project.
// Description is optional; Language defaults to domain.DefaultLanguage.
type CreateProjectInput struct {
	Name        string
	Description string
	Language    string
}

// SaveProjectInput is a partial save. Nil fields were absent from the
// request and leave the stored value untouched.
type SaveProjectInput struct {
	Code     *string
	Files    *[]any
	FileTree *[]any
}

// ProjectService defines use-case operations over projects. Every
// operation resolves the bearer token to an identity first and aborts
// without side effects when that fails.
type ProjectService interface {
	Create(ctx context.Context, token string, input CreateProjectInput) (*domain.Project, error)
	Save(ctx context.Context, token, projectID string, input SaveProjectInput) (*domain.Project, error)
	List(ctx context.Context, token string) ([]ProjectSummary, error)
	Get(ctx context.Context, token, projectID string) (*domain.Project, error)
	Rename(ctx context.Context, token, projectID, name string) (*domain.Project, error)
	Delete(ctx context.Context, token, projectID string) error
}
