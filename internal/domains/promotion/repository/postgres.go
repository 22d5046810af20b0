package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"sportcenter-backend/internal/domains/promotion/model"
)

type PromotionRepository interface {
	Create(ctx context.Context, promotion *model.Promotion) error
	GetByID(ctx context.Context, promotionID int64) (*model.Promotion, error)
	List(ctx context.Context) ([]model.Promotion, error)
	Update(ctx context.Context, promotion *model.Promotion) error
	Delete(ctx context.Context, promotionID int64) error
}

type postgresPromotionRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPromotionRepository(pool *pgxpool.Pool) PromotionRepository {
	return &postgresPromotionRepository{pool: pool}
}

func (r *postgresPromotionRepository) Create(ctx context.Context, p *model.Promotion) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO promotions (code, description, discount_type, discount_value, max_discount, starts_at, expires_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, p.Code, p.Description, p.DiscountType, p.DiscountValue, p.MaxDiscount, p.StartsAt, p.ExpiresAt, p.Status,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.NewPromotionCodeTakenError(p.Code)
		}
		return fmt.Errorf("failed to create promotion: %w", err)
	}
	return nil
}

func (r *postgresPromotionRepository) GetByID(ctx context.Context, promotionID int64) (*model.Promotion, error) {
	var p model.Promotion
	err := r.pool.QueryRow(ctx, `
		SELECT id, code, description, discount_type, discount_value, max_discount, starts_at, expires_at, status, created_at, updated_at
		FROM promotions
		WHERE id = $1
	`, promotionID).Scan(
		&p.ID, &p.Code, &p.Description, &p.DiscountType, &p.DiscountValue,
		&p.MaxDiscount, &p.StartsAt, &p.ExpiresAt, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewPromotionNotFoundError(promotionID)
		}
		return nil, fmt.Errorf("failed to get promotion %d: %w", promotionID, err)
	}
	return &p, nil
}

func (r *postgresPromotionRepository) List(ctx context.Context) ([]model.Promotion, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, code, description, discount_type, discount_value, max_discount, starts_at, expires_at, status, created_at, updated_at
		FROM promotions
		ORDER BY expires_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	defer rows.Close()

	var promotions []model.Promotion
	for rows.Next() {
		var p model.Promotion
		if err := rows.Scan(
			&p.ID, &p.Code, &p.Description, &p.DiscountType, &p.DiscountValue,
			&p.MaxDiscount, &p.StartsAt, &p.ExpiresAt, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan promotion row: %w", err)
		}
		promotions = append(promotions, p)
	}
	return promotions, rows.Err()
}

func (r *postgresPromotionRepository) Update(ctx context.Context, p *model.Promotion) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE promotions
		SET description = $2, discount_value = $3, max_discount = $4, starts_at = $5, expires_at = $6, status = $7, updated_at = NOW()
		WHERE id = $1
	`, p.ID, p.Description, p.DiscountValue, p.MaxDiscount, p.StartsAt, p.ExpiresAt, p.Status)
	if err != nil {
		return fmt.Errorf("failed to update promotion %d: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewPromotionNotFoundError(p.ID)
	}
	return nil
}

func (r *postgresPromotionRepository) Delete(ctx context.Context, promotionID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, promotionID)
	if err != nil {
		return fmt.Errorf("failed to delete promotion %d: %w", promotionID, err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewPromotionNotFoundError(promotionID)
	}
	return nil
}
