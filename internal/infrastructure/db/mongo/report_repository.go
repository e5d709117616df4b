package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sidd-gupta05/getfly-project/internal/core/domain"
	"github.com/sidd-gupta05/getfly-project/internal/core/ports"
)

const collectionReports = "daily_reports"

type ReportRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{db: db, col: db.Collection(collectionReports)}
}

func (r *ReportRepository) Create(ctx context.Context, report *domain.DailyReport) (*domain.DailyReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextID(ctx, r.db, collectionReports)
	if err != nil {
		return nil, err
	}

	created := *report
	created.ID = id
	if _, err := r.col.InsertOne(ctx, created); err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}
	return &created, nil
}

// List returns a page of reports ordered by date descending and the total
// count. A non-nil Date restricts results to that calendar day (UTC).
func (r *ReportRepository) List(ctx context.Context, filter ports.ListReportsFilter) ([]*domain.DailyReport, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"project_id": filter.ProjectID}
	if filter.Date != nil {
		day := filter.Date.UTC().Truncate(24 * time.Hour)
		query["date"] = bson.M{
			"$gte": day,
			"$lt":  day.Add(24 * time.Hour),
		}
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(int64(filter.Offset)).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}
	defer cur.Close(ctx)

	var reports []*domain.DailyReport
	if err := cur.All(ctx, &reports); err != nil {
		return nil, 0, fmt.Errorf("decode reports: %w", err)
	}
	return reports, total, nil
}

// ExistsForUser reports whether the user has filed at least one report on
// the project.
func (r *ReportRepository) ExistsForUser(ctx context.Context, projectID, userID int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.col.FindOne(ctx,
		bson.M{"project_id": projectID, "user_id": userID},
		options.FindOne().SetProjection(bson.M{"_id": 1}),
	).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("check report existence: %w", err)
	}
	return true, nil
}

// ProjectIDsForUser returns the distinct projects the user has reported on.
func (r *ReportRepository) ProjectIDsForUser(ctx context.Context, userID int64) ([]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := r.col.Distinct(ctx, "project_id", bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("distinct project ids: %w", err)
	}

	ids := make([]int64, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case int64:
			ids = append(ids, n)
		case int32:
			ids = append(ids, int64(n))
		}
	}
	return ids, nil
}

// DeleteByProject removes every report of a project (deletion cascade).
func (r *ReportRepository) DeleteByProject(ctx context.Context, projectID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{"project_id": projectID}); err != nil {
		return fmt.Errorf("delete reports: %w", err)
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the daily_reports collection.
func (r *ReportRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "project_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
