package handler

import (
	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/domain"
	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/ports"
)

func toProjectBody(p *domain.Project) projectBody {
	files := p.Files
	if files == nil {
		files = []any{}
	}
	tree := p.FileTree
	if tree == nil {
		tree = []any{}
	}
	return projectBody{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		Language:    p.Language,
		Code:        p.Code,
		Files:       files,
		FileTree:    tree,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

func toSummaryBodies(summaries []ports.ProjectSummary) []projectSummaryBody {
	out := make([]projectSummaryBody, len(summaries))
	for i, s := range summaries {
		out[i] = projectSummaryBody{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Language:    s.Language,
			CreatedAt:   s.CreatedAt.UTC(),
			UpdatedAt:   s.UpdatedAt.UTC(),
		}
	}
	return out
}
