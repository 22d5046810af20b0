package service

import (
	"context"
	"fmt"
	"time"

	bookingsvc "sportcenter-backend/internal/domains/booking/service"
	"sportcenter-backend/internal/domains/field/model"
	"sportcenter-backend/internal/domains/field/repository"
	"sportcenter-backend/internal/infrastructure/realtime"
	"sportcenter-backend/internal/infrastructure/storage"
	"sportcenter-backend/pkg/cache"
	"sportcenter-backend/pkg/logger"
)

// =====================================================
// FIELD SERVICE IMPLEMENTATION
// =====================================================

type fieldService struct {
	fieldRepo   repository.FieldRepository
	cache       cache.Cache
	storage     *storage.MinIOStorage
	images      *storage.ImageProcessor
	broadcaster realtime.Broadcaster
	cacheTTL    time.Duration
	now         func() time.Time
}

func NewFieldService(
	fieldRepo repository.FieldRepository,
	cache cache.Cache,
	minioStorage *storage.MinIOStorage,
	broadcaster realtime.Broadcaster,
	cacheTTL time.Duration,
) FieldService {
	if broadcaster == nil {
		broadcaster = realtime.NopBroadcaster{}
	}
	return &fieldService{
		fieldRepo:   fieldRepo,
		cache:       cache,
		storage:     minioStorage,
		images:      storage.NewImageProcessor(),
		broadcaster: broadcaster,
		cacheTTL:    cacheTTL,
		now:         time.Now,
	}
}

// =====================================================
// CRUD
// =====================================================

func (s *fieldService) CreateField(ctx context.Context, req model.CreateFieldRequest) (*model.Field, error) {
	field := &model.Field{
		BranchID:   req.BranchID,
		Name:       req.Name,
		Type:       req.Type,
		PriceDay:   req.PriceDay,
		PriceNight: req.PriceNight,
		Facilities: req.Facilities,
		Status:     model.FieldStatusActive,
	}
	if err := s.fieldRepo.Create(ctx, field); err != nil {
		return nil, err
	}

	logger.Info("Field created", map[string]interface{}{
		"field_id":  field.ID,
		"branch_id": field.BranchID,
	})
	return field, nil
}

func (s *fieldService) GetField(ctx context.Context, fieldID int64) (*model.Field, error) {
	return s.fieldRepo.GetByID(ctx, fieldID)
}

func (s *fieldService) ListFields(ctx context.Context, q model.ListFieldsQuery) ([]model.Field, int, error) {
	q.Normalize()
	return s.fieldRepo.List(ctx, q)
}

func (s *fieldService) UpdateField(ctx context.Context, fieldID int64, req model.UpdateFieldRequest) (*model.Field, error) {
	field, err := s.fieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		field.Name = *req.Name
	}
	if req.Type != nil {
		field.Type = *req.Type
	}
	if req.PriceDay != nil {
		field.PriceDay = *req.PriceDay
	}
	if req.PriceNight != nil {
		field.PriceNight = *req.PriceNight
	}
	if req.Facilities != nil {
		field.Facilities = req.Facilities
	}
	if req.Status != nil {
		field.Status = model.FieldStatus(*req.Status)
	}

	if err := s.fieldRepo.Update(ctx, field); err != nil {
		return nil, err
	}

	// Pricing or status changes make cached availability stale.
	s.invalidateAvailability(ctx, fieldID)

	return field, nil
}

func (s *fieldService) DeleteField(ctx context.Context, fieldID int64) error {
	if err := s.fieldRepo.Delete(ctx, fieldID); err != nil {
		return err
	}

	s.invalidateAvailability(ctx, fieldID)

	if s.storage != nil {
		if err := s.storage.DeleteByPrefix(ctx, fmt.Sprintf("fields/%d/", fieldID)); err != nil {
			logger.Error("Failed to delete field images", err)
		}
	}
	return nil
}

func (s *fieldService) UploadImage(ctx context.Context, fieldID int64, data []byte) (string, error) {
	// Storage is optional at boot; without it uploads are disabled, not fatal.
	if s.storage == nil {
		return "", model.NewStorageUnavailableError()
	}

	if _, err := s.fieldRepo.GetByID(ctx, fieldID); err != nil {
		return "", err
	}

	if err := s.images.ValidateImage(data); err != nil {
		return "", model.NewInvalidImageError(err.Error())
	}
	processed, err := s.images.ProcessImage(data)
	if err != nil {
		return "", model.NewInvalidImageError(err.Error())
	}

	key := fmt.Sprintf("fields/%d/cover.jpg", fieldID)
	url, err := s.storage.Upload(ctx, key, processed, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to store field image: %w", err)
	}

	if err := s.fieldRepo.UpdateImageURL(ctx, fieldID, url); err != nil {
		return "", err
	}
	return url, nil
}

// =====================================================
// AVAILABILITY
// =====================================================

func availabilityCacheKey(fieldID int64, date string) string {
	return fmt.Sprintf("field:availability:%d:%s", fieldID, date)
}

func (s *fieldService) GetAvailability(ctx context.Context, fieldID int64, date time.Time) (*model.FieldAvailability, error) {
	key := availabilityCacheKey(fieldID, date.Format("2006-01-02"))

	var cached model.FieldAvailability
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Error("Failed to read availability cache", err)
	}
	if found {
		return &cached, nil
	}

	availability, err := s.computeAndCache(ctx, fieldID, date)
	if err != nil {
		return nil, err
	}
	return availability, nil
}

func (s *fieldService) computeAndCache(ctx context.Context, fieldID int64, date time.Time) (*model.FieldAvailability, error) {
	field, err := s.fieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	booked, err := s.fieldRepo.BookedSlots(ctx, fieldID, date)
	if err != nil {
		return nil, err
	}

	availability := ComputeAvailability(field, date, booked, s.now())

	key := availabilityCacheKey(fieldID, availability.Date)
	if err := s.cache.Set(ctx, key, availability, s.cacheTTL); err != nil {
		logger.Error("Failed to cache availability", err)
	}

	return availability, nil
}

func (s *fieldService) RefreshAvailability(ctx context.Context, fieldIDs []int64) error {
	if len(fieldIDs) == 0 {
		var err error
		fieldIDs, err = s.fieldRepo.ListActiveIDs(ctx)
		if err != nil {
			return err
		}
	}

	today := s.now()
	for _, fieldID := range fieldIDs {
		availability, err := s.computeAndCache(ctx, fieldID, today)
		if err != nil {
			logger.ErrorWith("Failed to refresh field availability", err, map[string]interface{}{
				"field_id": fieldID,
			})
			continue
		}

		err = s.broadcaster.Emit(ctx, realtime.ChannelAdminPayments, realtime.EventAvailability, availability)
		if err != nil {
			logger.Error("Failed to broadcast field availability", err)
		}
	}

	return nil
}

func (s *fieldService) invalidateAvailability(ctx context.Context, fieldID int64) {
	pattern := fmt.Sprintf("field:availability:%d:*", fieldID)
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		logger.Error("Failed to invalidate availability cache", err)
	}
}

// =====================================================
// BOOKING INTEGRATION
// =====================================================

// GetFieldPricing satisfies the booking domain's pricing lookup.
func (s *fieldService) GetFieldPricing(ctx context.Context, fieldID int64) (*bookingsvc.FieldPricing, error) {
	field, err := s.fieldRepo.GetByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	return &bookingsvc.FieldPricing{
		FieldID:    field.ID,
		PriceDay:   field.PriceDay,
		PriceNight: field.PriceNight,
		Active:     field.Status == model.FieldStatusActive,
	}, nil
}
