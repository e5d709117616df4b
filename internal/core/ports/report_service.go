package ports

import (
	"context"
	"time"

	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
)

// CreateReportInput carries all data needed to file a daily progress report.
type CreateReportInput struct {
	Date            time.Time
	WorkDescription string
	Weather         string
	WorkerCount     int
	Challenges      string
	MaterialsUsed   string
	EquipmentUsed   string
	SafetyIncidents string
	NextDayPlan     string
}

// ListReportsInput carries parameters for the report list endpoint.
type ListReportsInput struct {
	Date   *time.Time
	Limit  int
	Offset int
}

// ReportPage is returned by List.
type ReportPage struct {
	Reports    []*domain.DailyReport
	Pagination Pagination
}

// ReportService defines use-case operations for daily reports.
type ReportService interface {
	Create(ctx context.Context, p domain.Principal, projectID int64, in CreateReportInput) (*domain.DailyReport, error)
	List(ctx context.Context, p domain.Principal, projectID int64, in ListReportsInput) (*ReportPage, error)
}
