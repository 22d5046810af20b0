package repository

import (
	"context"
	"time"

	"sportcenter-backend/internal/domains/field/model"
)

// FieldRepository persists fields and reads the booked slots used when
// availability is recomputed.
type FieldRepository interface {
	Create(ctx context.Context, field *model.Field) error
	GetByID(ctx context.Context, fieldID int64) (*model.Field, error)
	List(ctx context.Context, q model.ListFieldsQuery) ([]model.Field, int, error)
	ListActiveIDs(ctx context.Context) ([]int64, error)
	Update(ctx context.Context, field *model.Field) error
	UpdateImageURL(ctx context.Context, fieldID int64, imageURL string) error
	Delete(ctx context.Context, fieldID int64) error

	// BookedSlots returns the occupied intervals for a field on one date,
	// counting only bookings that still hold the slot.
	BookedSlots(ctx context.Context, fieldID int64, date time.Time) ([]model.BookedSlot, error)
}
