package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mayursuryawanshi23/CodeX-backend/internal/api/metrics"
	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/domain"
	"github.com/Mayursuryawanshi23/CodeX-backend/internal/core/ports"
)

// ProjectService orchestrates identity resolution and ownership-scoped
// CRUD over the project repository.
type ProjectService struct {
	projects ports.ProjectRepository
	identity ports.IdentityVerifier
	log      zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, identity ports.IdentityVerifier, log zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, identity: identity, log: log}
}

func (s *ProjectService) Create(ctx context.Context, token string, input ports.CreateProjectInput) (*domain.Project, error) {
	ownerID, err := s.identity.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	if input.Name == "" {
		return nil, domain.ErrNameRequired
	}

	language := input.Language
	if language == "" {
		language = domain.DefaultLanguage
	}

	now := time.Now().UTC()
	project := &domain.Project{
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		Language:    language,
		Code:        domain.StarterCode(language),
		Files:       []any{},
		FileTree:    []any{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		s.log.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create project")
		return nil, err
	}

	metrics.ProjectsCreatedTotal.WithLabelValues(languageLabel(language)).Inc()
	s.log.Info().Str("project_id", created.ID).Str("owner_id", ownerID).Str("language", language).Msg("project created")
	return created, nil
}

func (s *ProjectService) Save(ctx context.Context, token, projectID string, input ports.SaveProjectInput) (*domain.Project, error) {
	ownerID, err := s.identity.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	if _, err := s.ownedProject(ctx, projectID, ownerID); err != nil {
		return nil, err
	}

	// One atomic update; absent fields stay untouched, concurrent saves
	// to disjoint fields do not clobber each other.
	updated, err := s.projects.Update(ctx, projectID, ports.ProjectPatch{
		Code:     input.Code,
		Files:    input.Files,
		FileTree: input.FileTree,
	})
	if err != nil {
		return nil, err
	}

	metrics.ProjectSavesTotal.Inc()
	if input.Code != nil {
		metrics.SaveCodeBytes.Observe(float64(len(*input.Code)))
	}
	return updated, nil
}

func (s *ProjectService) List(ctx context.Context, token string) ([]ports.ProjectSummary, error) {
	ownerID, err := s.identity.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.projects.ListByOwner(ctx, ownerID)
}

func (s *ProjectService) Get(ctx context.Context, token, projectID string) (*domain.Project, error) {
	ownerID, err := s.identity.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.ownedProject(ctx, projectID, ownerID)
}

func (s *ProjectService) Rename(ctx context.Context, token, projectID, name string) (*domain.Project, error) {
	ownerID, err := s.identity.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	if name == "" {
		return nil, domain.ErrNameRequired
	}

	if _, err := s.ownedProject(ctx, projectID, ownerID); err != nil {
		return nil, err
	}

	return s.projects.Update(ctx, projectID, ports.ProjectPatch{Name: &name})
}

// Delete removes the caller's project. A missing project is a successful
// no-op; someone else's project is forbidden.
func (s *ProjectService) Delete(ctx context.Context, token, projectID string) error {
	ownerID, err := s.identity.Resolve(ctx, token)
	if err != nil {
		return err
	}

	if _, err := s.ownedProject(ctx, projectID, ownerID); err != nil {
		if err == domain.ErrProjectNotFound {
			return nil
		}
		return err
	}

	if err := s.projects.Delete(ctx, projectID); err != nil {
		return err
	}

	s.log.Info().Str("project_id", projectID).Str("owner_id", ownerID).Msg("project deleted")
	return nil
}

// ownedProject fetches a project and enforces that ownerID owns it.
func (s *ProjectService) ownedProject(ctx context.Context, projectID, ownerID string) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	return project, nil
}

// languageLabel keeps metric cardinality bounded: arbitrary client input
// collapses to "other" unless it is a supported language.
func languageLabel(language string) string {
	lang := strings.ToLower(language)
	if domain.StarterCode(lang) == domain.StarterNotSupported {
		return "other"
	}
	return lang
}
