package service

import (
	"context"
	"time"

	"sportcenter-backend/internal/domains/field/model"
)

type FieldService interface {
	CreateField(ctx context.Context, req model.CreateFieldRequest) (*model.Field, error)
	GetField(ctx context.Context, fieldID int64) (*model.Field, error)
	ListFields(ctx context.Context, q model.ListFieldsQuery) ([]model.Field, int, error)
	UpdateField(ctx context.Context, fieldID int64, req model.UpdateFieldRequest) (*model.Field, error)
	DeleteField(ctx context.Context, fieldID int64) error
	UploadImage(ctx context.Context, fieldID int64, data []byte) (string, error)

	// GetAvailability serves the cached free-slot view, recomputing on a
	// cache miss.
	GetAvailability(ctx context.Context, fieldID int64, date time.Time) (*model.FieldAvailability, error)

	// RefreshAvailability recomputes today's availability for the given
	// fields (all active fields when empty), refreshes the cache and
	// publishes the result. Driven by the scheduled recompute task.
	RefreshAvailability(ctx context.Context, fieldIDs []int64) error
}
