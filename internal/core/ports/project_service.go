package ports

import (
	"context"
	"time"

	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a project.
type CreateProjectInput struct {
	Name        string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Budget      float64
	Location    string
	Status      domain.ProjectStatus // optional, defaults to PLANNED
}

// UpdateProjectInput is a partial update: nil fields are left unchanged.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	Location    *string
	Status      *domain.ProjectStatus
}

// ListProjectsInput carries parameters for the project list endpoint.
type ListProjectsInput struct {
	Status domain.ProjectStatus
	Limit  int
	Offset int
}

// Pagination describes one page of a list response.
type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"has_more"`
}

// ProjectPage is returned by List.
type ProjectPage struct {
	Projects   []*domain.Project
	Pagination Pagination
}

// ProjectService defines use-case operations for projects. Every operation
// takes the request principal and enforces the role/ownership policy.
type ProjectService interface {
	Create(ctx context.Context, p domain.Principal, in CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, p domain.Principal, id int64) (*domain.Project, error)
	List(ctx context.Context, p domain.Principal, in ListProjectsInput) (*ProjectPage, error)
	Update(ctx context.Context, p domain.Principal, id int64, in UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, p domain.Principal, id int64) error
}
