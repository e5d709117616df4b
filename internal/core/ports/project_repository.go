package ports

import (
	"context"
	"time"

	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
)

// ListProjectsFilter carries all query parameters for listing projects.
// IDs is the access scope enforced by the service layer: nil means no
// restriction, an empty slice matches nothing.
type ListProjectsFilter struct {
	Status domain.ProjectStatus // optional: filter by project status
	IDs    []int64              // optional: restrict to these project ids
	Limit  int
	Offset int
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id int64) (*domain.Project, error)
	// List returns a page of projects matching filter and the total count.
	List(ctx context.Context, filter ListProjectsFilter) ([]*domain.Project, int64, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id int64) error
	// RecordReport bumps the project's activity rollup (report_count,
	// last_report_at). Called from the activity worker, not request handlers.
	RecordReport(ctx context.Context, projectID int64, at time.Time) error
}
