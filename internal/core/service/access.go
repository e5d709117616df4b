package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
	"github.com/sidd-gupta05/getfly-project/internal/core/ports"
)

// AccessCache abstracts the access-grant cache (Redis). A grant records that
// a worker has filed at least one report on a project.
type AccessCache interface {
	Has(ctx context.Context, userID, projectID int64) (bool, error)
	Grant(ctx context.Context, userID, projectID int64) error
}

// accessChecker answers the worker read-access question shared by project
// and report reads: a worker may read a project they created or have
// reported on.
type accessChecker struct {
	reports ports.ReportRepository
	cache   AccessCache
	log     zerolog.Logger
}

func (a *accessChecker) canRead(ctx context.Context, p domain.Principal, project *domain.Project) (bool, error) {
	if p.Role != domain.RoleWorker {
		return true, nil
	}
	if domain.IsOwner(p, project.CreatedByID) {
		return true, nil
	}

	// Cache only holds positive grants, so a miss falls through to the store.
	hit, err := a.cache.Has(ctx, p.UserID, project.ID)
	if err != nil {
		a.log.Warn().Err(err).Int64("user_id", p.UserID).Int64("project_id", project.ID).Msg("access cache check failed, falling back to store")
	} else if hit {
		return true, nil
	}

	exists, err := a.reports.ExistsForUser(ctx, project.ID, p.UserID)
	if err != nil {
		return false, err
	}
	if exists {
		if grantErr := a.cache.Grant(ctx, p.UserID, project.ID); grantErr != nil {
			a.log.Warn().Err(grantErr).Int64("user_id", p.UserID).Int64("project_id", project.ID).Msg("failed to set access grant")
		}
	}
	return exists, nil
}
