package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"sportcenter-backend/internal/domains/field/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresFieldRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresFieldRepository(pool *pgxpool.Pool) FieldRepository {
	return &postgresFieldRepository{pool: pool}
}

func (r *postgresFieldRepository) Create(ctx context.Context, field *model.Field) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO fields (branch_id, name, type, price_day, price_night, facilities, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, field.BranchID, field.Name, field.Type, field.PriceDay, field.PriceNight,
		pq.Array(field.Facilities), field.Status,
	).Scan(&field.ID, &field.CreatedAt, &field.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create field: %w", err)
	}
	return nil
}

func (r *postgresFieldRepository) GetByID(ctx context.Context, fieldID int64) (*model.Field, error) {
	var f model.Field
	err := r.pool.QueryRow(ctx, `
		SELECT id, branch_id, name, type, price_day, price_night, facilities, image_url, status, created_at, updated_at
		FROM fields
		WHERE id = $1
	`, fieldID).Scan(
		&f.ID, &f.BranchID, &f.Name, &f.Type, &f.PriceDay, &f.PriceNight,
		pq.Array(&f.Facilities), &f.ImageURL, &f.Status, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewFieldNotFoundError(fieldID)
		}
		return nil, fmt.Errorf("failed to get field %d: %w", fieldID, err)
	}
	return &f, nil
}

func (r *postgresFieldRepository) List(ctx context.Context, q model.ListFieldsQuery) ([]model.Field, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		where += fmt.Sprintf(` AND (name ILIKE $%d OR type ILIKE $%d)`, len(args), len(args))
	}
	if q.BranchID > 0 {
		args = append(args, q.BranchID)
		where += fmt.Sprintf(` AND branch_id = $%d`, len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM fields`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count fields: %w", err)
	}

	offset := (q.Page - 1) * q.Limit
	args = append(args, q.Limit, offset)
	query := fmt.Sprintf(`
		SELECT id, branch_id, name, type, price_day, price_night, facilities, image_url, status, created_at, updated_at
		FROM fields%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list fields: %w", err)
	}
	defer rows.Close()

	fields := make([]model.Field, 0, q.Limit)
	for rows.Next() {
		var f model.Field
		err := rows.Scan(
			&f.ID, &f.BranchID, &f.Name, &f.Type, &f.PriceDay, &f.PriceNight,
			pq.Array(&f.Facilities), &f.ImageURL, &f.Status, &f.CreatedAt, &f.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan field row: %w", err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate field rows: %w", err)
	}

	return fields, total, nil
}

func (r *postgresFieldRepository) ListActiveIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM fields WHERE status = 'active' ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active field ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan field id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *postgresFieldRepository) Update(ctx context.Context, field *model.Field) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE fields
		SET name = $2, type = $3, price_day = $4, price_night = $5,
		    facilities = $6, status = $7, updated_at = NOW()
		WHERE id = $1
	`, field.ID, field.Name, field.Type, field.PriceDay, field.PriceNight,
		pq.Array(field.Facilities), field.Status)
	if err != nil {
		return fmt.Errorf("failed to update field %d: %w", field.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewFieldNotFoundError(field.ID)
	}
	return nil
}

func (r *postgresFieldRepository) UpdateImageURL(ctx context.Context, fieldID int64, imageURL string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE fields SET image_url = $2, updated_at = NOW() WHERE id = $1
	`, fieldID, imageURL)
	if err != nil {
		return fmt.Errorf("failed to update field image %d: %w", fieldID, err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewFieldNotFoundError(fieldID)
	}
	return nil
}

func (r *postgresFieldRepository) Delete(ctx context.Context, fieldID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM fields WHERE id = $1`, fieldID)
	if err != nil {
		return fmt.Errorf("failed to delete field %d: %w", fieldID, err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewFieldNotFoundError(fieldID)
	}
	return nil
}

func (r *postgresFieldRepository) BookedSlots(ctx context.Context, fieldID int64, date time.Time) ([]model.BookedSlot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_time, end_time
		FROM bookings
		WHERE field_id = $1
		  AND booking_date = $2
		  AND status IN ('pending', 'confirmed')
		ORDER BY start_time
	`, fieldID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked slots for field %d: %w", fieldID, err)
	}
	defer rows.Close()

	var slots []model.BookedSlot
	for rows.Next() {
		var s model.BookedSlot
		if err := rows.Scan(&s.Start, &s.End); err != nil {
			return nil, fmt.Errorf("failed to scan booked slot: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}
