package ports

import (
	"context"
	"time"

	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
)

// ListReportsFilter carries query parameters for listing daily reports.
// When Date is non-nil only reports within that calendar day (UTC) match.
type ListReportsFilter struct {
	ProjectID int64
	Date      *time.Time
	Limit     int
	Offset    int
}

// ReportRepository defines persistence operations for daily reports.
type ReportRepository interface {
	Create(ctx context.Context, r *domain.DailyReport) (*domain.DailyReport, error)
	// List returns a page of reports ordered by date descending and the total count.
	List(ctx context.Context, filter ListReportsFilter) ([]*domain.DailyReport, int64, error)
	// ExistsForUser reports whether the user has filed at least one report
	// on the project. Drives worker read access.
	ExistsForUser(ctx context.Context, projectID, userID int64) (bool, error)
	// ProjectIDsForUser returns the distinct projects the user has reported on.
	ProjectIDsForUser(ctx context.Context, userID int64) ([]int64, error)
	// DeleteByProject removes all reports of a project (project deletion cascade).
	DeleteByProject(ctx context.Context, projectID int64) error
}
