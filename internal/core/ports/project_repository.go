package ports

import (
	"context"
	"time"

	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/domain"
)

// ProjectPatch carries a partial update. Nil fields are left untouched in
// the stored document; non-nil fields are overwritten, including with
// empty values.
type ProjectPatch struct {
	Name     *string
	Code     *string
	Files    *[]any
	FileTree *[]any
}

// ProjectSummary is the lightweight listing view. Code, files, and the
// file tree are excluded to keep list payloads small.
type ProjectSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// Update applies the patch in a single atomic operation, refreshes
	// updated_at, and returns the post-update document. A missing project
	// yields domain.ErrProjectNotFound.
	Update(ctx context.Context, id string, patch ProjectPatch) (*domain.Project, error)
	// ListByOwner returns the owner's projects ordered by updated_at descending.
	ListByOwner(ctx context.Context, ownerID string) ([]ProjectSummary, error)
	// Delete removes a project by id. Deleting a missing project is not an error.
	Delete(ctx context.Context, id string) error
}
