package repository

import (
	"context"

	"github.com/Vaishnavi-Jogi/SamarthaYoga/internal/models"
)

type ActivityRepository struct {
	db DBTX
}

func NewActivityRepository(db DBTX) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Upsert marks one (user, type, date) completion. Repeat calls replace
// the meta payload with the latest value.
func (r *ActivityRepository) Upsert(ctx context.Context, userID int64, activityType, date string, meta map[string]any) (*models.Activity, error) {
	query := `
		INSERT INTO activities (user_id, type, date, meta)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, type, date) DO UPDATE SET
			meta = EXCLUDED.meta,
			updated_at = NOW()
		RETURNING id, user_id, type, date, meta, created_at, updated_at
	`
	if meta == nil {
		meta = map[string]any{}
	}
	var activity models.Activity
	err := r.db.QueryRow(ctx, query, userID, activityType, date, meta).Scan(
		&activity.ID,
		&activity.UserID,
		&activity.Type,
		&activity.Date,
		&activity.Meta,
		&activity.CreatedAt,
		&activity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// DatesSince returns the distinct completion dates for a user from
// fromDate (inclusive, YYYY-MM-DD) onward.
func (r *ActivityRepository) DatesSince(ctx context.Context, userID int64, fromDate string) (map[string]bool, error) {
	query := `
		SELECT DISTINCT date
		FROM activities
		WHERE user_id = $1 AND date >= $2
	`
	rows, err := r.db.Query(ctx, query, userID, fromDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dates := make(map[string]bool)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates[date] = true
	}
	return dates, rows.Err()
}
