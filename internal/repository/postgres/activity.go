package postgres

import (
	"context"
	"fmt"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
)

type activityRepository struct {
	BaseRepository
}

func NewActivityRepository(base BaseRepository) repository.ActivityRepository {
	return &activityRepository{base}
}

func (r *activityRepository) List(ctx context.Context) ([]*model.OperatorActivity, error) {
	query := `SELECT * FROM operator_activities ORDER BY created_at DESC`

	activities := []*model.OperatorActivity{}
	if err := r.db.SelectContext(ctx, &activities, query); err != nil {
		return nil, fmt.Errorf("failed to list operator activities: %w", err)
	}
	return activities, nil
}

func (r *activityRepository) CountByOperatorTypeDay(ctx context.Context) ([]*model.ActivityCount, error) {
	query := `
		SELECT operator_name,
			   account_type,
			   date_trunc('day', created_at) AS day,
			   COUNT(*) AS count
		FROM operator_activities
		GROUP BY operator_name, account_type, date_trunc('day', created_at)
		ORDER BY day ASC
	`

	counts := []*model.ActivityCount{}
	if err := r.db.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate operator activities: %w", err)
	}
	return counts, nil
}
