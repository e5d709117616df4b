package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
	"github.com/sidd-gupta05/getfly-project/internal/core/ports"
)

const defaultReportLimit = 50

// ReportQueue accepts report events for asynchronous processing.
type ReportQueue interface {
	Enqueue(ev ports.ReportEvent)
}

type ReportService struct {
	projects ports.ProjectRepository
	reports  ports.ReportRepository
	queue    ReportQueue
	access   accessChecker
	logger   zerolog.Logger
}

func NewReportService(projects ports.ProjectRepository, reports ports.ReportRepository, queue ReportQueue, cache AccessCache, logger zerolog.Logger) *ReportService {
	return &ReportService{
		projects: projects,
		reports:  reports,
		queue:    queue,
		access:   accessChecker{reports: reports, cache: cache, log: logger},
		logger:   logger,
	}
}

func (s *ReportService) Create(ctx context.Context, p domain.Principal, projectID int64, in ports.CreateReportInput) (*domain.DailyReport, error) {
	if in.Date.IsZero() || in.WorkDescription == "" || in.WorkerCount < 0 {
		return nil, fmt.Errorf("%w: date, work description, and worker count are required", domain.ErrValidation)
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !domain.CanCreateReport(p, project.CreatedByID) {
		return nil, fmt.Errorf("%w: you can only add reports to projects you created", domain.ErrForbidden)
	}

	now := time.Now().UTC()
	report := &domain.DailyReport{
		ProjectID:       projectID,
		UserID:          p.UserID,
		Date:            in.Date,
		WorkDescription: in.WorkDescription,
		Weather:         in.Weather,
		WorkerCount:     in.WorkerCount,
		Challenges:      in.Challenges,
		MaterialsUsed:   in.MaterialsUsed,
		EquipmentUsed:   in.EquipmentUsed,
		SafetyIncidents: in.SafetyIncidents,
		NextDayPlan:     in.NextDayPlan,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.reports.Create(ctx, report)
	if err != nil {
		s.logger.Error().Err(err).Int64("project_id", projectID).Msg("failed to create report")
		return nil, err
	}

	// Activity rollups and cache warming happen off the request path.
	s.queue.Enqueue(ports.ReportEvent{
		ProjectID: projectID,
		UserID:    p.UserID,
		Date:      created.Date,
	})

	s.logger.Info().Int64("report_id", created.ID).Int64("project_id", projectID).Int64("user_id", p.UserID).Msg("daily report created")
	return created, nil
}

func (s *ReportService) List(ctx context.Context, p domain.Principal, projectID int64, in ports.ListReportsInput) (*ports.ReportPage, error) {
	project, err := s.projects.FindByID(ctx, projectID)
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

	limit := in.Limit
	if limit <= 0 {
		limit = defaultReportLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	reports, total, err := s.reports.List(ctx, ports.ListReportsFilter{
		ProjectID: projectID,
		Date:      in.Date,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ReportPage{
		Reports: reports,
		Pagination: ports.Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: int64(offset+limit) < total,
		},
	}, nil
}
