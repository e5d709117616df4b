package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
	"github.com/sidd-gupta05/getfly-project/internal/core/ports"
)

const (
	defaultProjectLimit = 10
	maxPageLimit        = 100
)

type ProjectService struct {
	projects ports.ProjectRepository
	reports  ports.ReportRepository
	access   accessChecker
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, reports ports.ReportRepository, cache AccessCache, logger zerolog.Logger) *ProjectService {
	return &ProjectService{
		projects: projects,
		reports:  reports,
		access:   accessChecker{reports: reports, cache: cache, log: logger},
		logger:   logger,
	}
}

func (s *ProjectService) Create(ctx context.Context, p domain.Principal, in ports.CreateProjectInput) (*domain.Project, error) {
	if !domain.CanCreateProject(p) {
		return nil, fmt.Errorf("%w: only admins and managers can create projects", domain.ErrForbidden)
	}
	if in.Name == "" || in.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: project name and start date are required", domain.ErrValidation)
	}

	status := in.Status
	if status == "" {
		status = domain.StatusPlanned
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown project status %q", domain.ErrValidation, status)
	}

	now := time.Now().UTC()
	project := &domain.Project{
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Budget:      in.Budget,
		Location:    in.Location,
		Status:      status,
		CreatedByID: p.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Str("name", in.Name).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Int64("project_id", created.ID).Int64("created_by", p.UserID).Msg("project created")
	return created, nil
}

func (s *ProjectService) Get(ctx context.Context, p domain.Principal, id int64) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := s.access.canRead(ctx, p, project)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: access denied", domain.ErrForbidden)
	}
	return project, nil
}

// List returns a page of projects. Workers only see projects they have
// reported on; projects a worker created but never reported on are excluded
// here even though Get allows them. That asymmetry is intentional.
func (s *ProjectService) List(ctx context.Context, p domain.Principal, in ports.ListProjectsInput) (*ports.ProjectPage, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultProjectLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}
	if in.Status != "" && !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown project status %q", domain.ErrValidation, in.Status)
	}

	filter := ports.ListProjectsFilter{
		Status: in.Status,
		Limit:  limit,
		Offset: offset,
	}

	if p.Role == domain.RoleWorker {
		ids, err := s.reports.ProjectIDsForUser(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
		if ids == nil {
			ids = []int64{}
		}
		filter.IDs = ids
	}

	projects, total, err := s.projects.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ProjectPage{
		Projects: projects,
		Pagination: ports.Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: int64(offset+limit) < total,
		},
	}, nil
}

func (s *ProjectService) Update(ctx context.Context, p domain.Principal, id int64, in ports.UpdateProjectInput) (*domain.Project, error) {
	if !domain.RoleIn(p.Role, domain.RoleAdmin, domain.RoleManager) {
		return nil, fmt.Errorf("%w: only admins and managers can update projects", domain.ErrForbidden)
	}

	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanUpdateProject(p, project.CreatedByID) {
		return nil, fmt.Errorf("%w: you can only update projects you created", domain.ErrForbidden)
	}

	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.StartDate != nil {
		project.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		project.EndDate = in.EndDate
	}
	if in.Budget != nil {
		project.Budget = *in.Budget
	}
	if in.Location != nil {
		project.Location = *in.Location
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown project status %q", domain.ErrValidation, *in.Status)
		}
		project.Status = *in.Status
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.projects.Update(ctx, project); err != nil {
		s.logger.Error().Err(err).Int64("project_id", id).Msg("failed to update project")
		return nil, err
	}

	s.logger.Info().Int64("project_id", id).Int64("updated_by", p.UserID).Msg("project updated")
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, p domain.Principal, id int64) error {
	if !domain.CanDeleteProject(p) {
		return fmt.Errorf("%w: only admins can delete projects", domain.ErrForbidden)
	}

	if _, err := s.projects.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int64("project_id", id).Msg("failed to delete project")
		return err
	}
	// Cascade: reports belong to the project lifecycle.
	if err := s.reports.DeleteByProject(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int64("project_id", id).Msg("failed to cascade report deletion")
	}

	s.logger.Info().Int64("project_id", id).Int64("deleted_by", p.UserID).Msg("project deleted")
	return nil
}
