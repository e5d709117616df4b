package ports

import (
	"context"
	"time"
)

// ReportEvent announces that a daily report was created. It is dispatched
// asynchronously; per-project ordering is guaranteed by the queue.
type ReportEvent struct {
	ProjectID int64
	UserID    int64
	Date      time.Time
}

// ActivityService consumes report events: it maintains per-project activity
// rollups and warms the access-grant cache.
type ActivityService interface {
	Process(ctx context.Context, ev ReportEvent) error
}
