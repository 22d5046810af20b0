package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sportcenter-backend/internal/domains/branch/model"
)

type BranchRepository interface {
	Create(ctx context.Context, branch *model.Branch) error
	GetByID(ctx context.Context, branchID int64) (*model.Branch, error)
	List(ctx context.Context) ([]model.Branch, error)
	Update(ctx context.Context, branch *model.Branch) error
	Delete(ctx context.Context, branchID int64) error
}

type postgresBranchRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBranchRepository(pool *pgxpool.Pool) BranchRepository {
	return &postgresBranchRepository{pool: pool}
}

func (r *postgresBranchRepository) Create(ctx context.Context, branch *model.Branch) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO branches (name, location, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, branch.Name, branch.Location, branch.Status,
	).Scan(&branch.ID, &branch.CreatedAt, &branch.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create branch: %w", err)
	}
	return nil
}

func (r *postgresBranchRepository) GetByID(ctx context.Context, branchID int64) (*model.Branch, error) {
	var b model.Branch
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, location, status, created_at, updated_at
		FROM branches
		WHERE id = $1
	`, branchID).Scan(&b.ID, &b.Name, &b.Location, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewBranchNotFoundError(branchID)
		}
		return nil, fmt.Errorf("failed to get branch %d: %w", branchID, err)
	}
	return &b, nil
}

func (r *postgresBranchRepository) List(ctx context.Context) ([]model.Branch, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, location, status, created_at, updated_at
		FROM branches
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []model.Branch
	for rows.Next() {
		var b model.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Location, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan branch row: %w", err)
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

func (r *postgresBranchRepository) Update(ctx context.Context, branch *model.Branch) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE branches
		SET name = $2, location = $3, status = $4, updated_at = NOW()
		WHERE id = $1
	`, branch.ID, branch.Name, branch.Location, branch.Status)
	if err != nil {
		return fmt.Errorf("failed to update branch %d: %w", branch.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewBranchNotFoundError(branch.ID)
	}
	return nil
}

func (r *postgresBranchRepository) Delete(ctx context.Context, branchID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM branches WHERE id = $1`, branchID)
	if err != nil {
		return fmt.Errorf("failed to delete branch %d: %w", branchID, err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewBranchNotFoundError(branchID)
	}
	return nil
}
