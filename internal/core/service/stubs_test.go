package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
	"github.com/sidd-gupta05/getfly-project/internal/core/ports"
)

// --- user repository stub ---

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by email
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// --- project repository stub ---

type stubProjectRepo struct {
	projects map[int64]*domain.Project
	nextID   int64
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[int64]*domain.Project)}
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.nextID++
	created := *p
	created.ID = r.nextID
	r.projects[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id int64) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) List(_ context.Context, filter ports.ListProjectsFilter) ([]*domain.Project, int64, error) {
	var matched []*domain.Project
	for _, p := range r.projects {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.IDs != nil && !containsID(filter.IDs, p.ID) {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}
	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *stubProjectRepo) RecordReport(_ context.Context, projectID int64, at time.Time) error {
	p, ok := r.projects[projectID]
	if !ok {
		return domain.ErrProjectNotFound
	}
	p.ReportCount++
	p.LastReportAt = &at
	return nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// --- report repository stub ---

type stubReportRepo struct {
	reports []*domain.DailyReport
	nextID  int64
}

func newStubReportRepo() *stubReportRepo {
	return &stubReportRepo{}
}

func (r *stubReportRepo) Create(_ context.Context, rep *domain.DailyReport) (*domain.DailyReport, error) {
	r.nextID++
	created := *rep
	created.ID = r.nextID
	r.reports = append(r.reports, &created)
	clone := created
	return &clone, nil
}

func (r *stubReportRepo) List(_ context.Context, filter ports.ListReportsFilter) ([]*domain.DailyReport, int64, error) {
	var matched []*domain.DailyReport
	for _, rep := range r.reports {
		if rep.ProjectID != filter.ProjectID {
			continue
		}
		if filter.Date != nil {
			day := filter.Date.UTC().Truncate(24 * time.Hour)
			if rep.Date.Before(day) || !rep.Date.Before(day.Add(24*time.Hour)) {
				continue
			}
		}
		clone := *rep
		matched = append(matched, &clone)
	}
	total := int64(len(matched))
	if filter.Offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, total, nil
}

func (r *stubReportRepo) ExistsForUser(_ context.Context, projectID, userID int64) (bool, error) {
	for _, rep := range r.reports {
		if rep.ProjectID == projectID && rep.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubReportRepo) ProjectIDsForUser(_ context.Context, userID int64) ([]int64, error) {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, rep := range r.reports {
		if rep.UserID != userID {
			continue
		}
		if _, ok := seen[rep.ProjectID]; ok {
			continue
		}
		seen[rep.ProjectID] = struct{}{}
		ids = append(ids, rep.ProjectID)
	}
	return ids, nil
}

func (r *stubReportRepo) DeleteByProject(_ context.Context, projectID int64) error {
	var kept []*domain.DailyReport
	for _, rep := range r.reports {
		if rep.ProjectID != projectID {
			kept = append(kept, rep)
		}
	}
	r.reports = kept
	return nil
}

// --- access cache stub ---

type stubAccessCache struct {
	grants map[string]bool
	hasErr error
}

func newStubAccessCache() *stubAccessCache {
	return &stubAccessCache{grants: make(map[string]bool)}
}

func (c *stubAccessCache) Has(_ context.Context, userID, projectID int64) (bool, error) {
	if c.hasErr != nil {
		return false, c.hasErr
	}
	return c.grants[cacheKey(userID, projectID)], nil
}

func (c *stubAccessCache) Grant(_ context.Context, userID, projectID int64) error {
	c.grants[cacheKey(userID, projectID)] = true
	return nil
}

func cacheKey(userID, projectID int64) string {
	return fmt.Sprintf("%d:%d", userID, projectID)
}

// --- report queue stub ---

type stubReportQueue struct {
	events []ports.ReportEvent
}

func (q *stubReportQueue) Enqueue(ev ports.ReportEvent) {
	q.events = append(q.events, ev)
}
