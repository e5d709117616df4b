package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sidd-gupta05/getfly-project/internal/core/ports"
)

type activityService struct {
	projects ports.ProjectRepository
	cache    AccessCache
	log      zerolog.Logger
}

// NewActivityService returns the consumer of report events: it maintains the
// per-project activity rollup and warms the access-grant cache so the
// reporter's next read skips the store lookup.
func NewActivityService(projects ports.ProjectRepository, cache AccessCache, log zerolog.Logger) ports.ActivityService {
	return &activityService{projects: projects, cache: cache, log: log}
}

func (s *activityService) Process(ctx context.Context, ev ports.ReportEvent) error {
	if err := s.projects.RecordReport(ctx, ev.ProjectID, ev.Date); err != nil {
		return fmt.Errorf("record report activity: %w", err)
	}

	// Non-fatal: the read path falls back to the store on a cache miss.
	if err := s.cache.Grant(ctx, ev.UserID, ev.ProjectID); err != nil {
		s.log.Warn().Err(err).Int64("user_id", ev.UserID).Int64("project_id", ev.ProjectID).Msg("failed to warm access grant")
	}

	s.log.Debug().
		Int64("project_id", ev.ProjectID).
		Int64("user_id", ev.UserID).
		Msg("report activity recorded")

	return nil
}
