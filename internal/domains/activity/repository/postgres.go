package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"sportcenter-backend/internal/domains/activity/model"
)

type ActivityRepository interface {
	Append(ctx context.Context, log *model.ActivityLog) error
	List(ctx context.Context, q model.ListActivityQuery) ([]model.ActivityLog, int, error)
}

type postgresActivityRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &postgresActivityRepository{pool: pool}
}

func (r *postgresActivityRepository) Append(ctx context.Context, log *model.ActivityLog) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO activity_logs (user_id, action, details)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, log.UserID, log.Action, log.Details).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append activity log: %w", err)
	}
	return nil
}

func (r *postgresActivityRepository) List(ctx context.Context, q model.ListActivityQuery) ([]model.ActivityLog, int, error) {
	where := ``
	args := []interface{}{}
	if q.UserID > 0 {
		where = ` WHERE user_id = $1`
		args = append(args, q.UserID)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM activity_logs`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count activity logs: %w", err)
	}

	offset := (q.Page - 1) * q.Limit
	args = append(args, q.Limit, offset)
	query := fmt.Sprintf(`
		SELECT id, user_id, action, details, created_at
		FROM activity_logs%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer rows.Close()

	logs := make([]model.ActivityLog, 0, q.Limit)
	for rows.Next() {
		var l model.ActivityLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Action, &l.Details, &l.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity log row: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate activity log rows: %w", err)
	}

	return logs, total, nil
}
