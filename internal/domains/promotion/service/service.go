package service

import (
	"context"
	"strings"

	"sportcenter-backend/internal/domains/promotion/model"
	"sportcenter-backend/internal/domains/promotion/repository"
	"sportcenter-backend/pkg/logger"
)

type PromotionService interface {
	CreatePromotion(ctx context.Context, req model.CreatePromotionRequest) (*model.Promotion, error)
	ListPromotions(ctx context.Context) ([]model.Promotion, error)
	UpdatePromotion(ctx context.Context, promotionID int64, req model.UpdatePromotionRequest) (*model.Promotion, error)
	DeletePromotion(ctx context.Context, promotionID int64) error
}

type promotionService struct {
	promotionRepo repository.PromotionRepository
}

func NewPromotionService(promotionRepo repository.PromotionRepository) PromotionService {
	return &promotionService{promotionRepo: promotionRepo}
}

func (s *promotionService) CreatePromotion(ctx context.Context, req model.CreatePromotionRequest) (*model.Promotion, error) {
	promotion := &model.Promotion{
		// Codes are matched case-insensitively at redemption, stored upper.
		Code:          strings.ToUpper(strings.TrimSpace(req.Code)),
		Description:   req.Description,
		DiscountType:  model.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		MaxDiscount:   req.MaxDiscount,
		StartsAt:      req.StartsAt,
		ExpiresAt:     req.ExpiresAt,
		Status:        model.PromotionStatusActive,
	}
	if err := s.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, err
	}

	logger.Info("Promotion created", map[string]interface{}{
		"promotion_id": promotion.ID,
		"code":         promotion.Code,
	})
	return promotion, nil
}

func (s *promotionService) ListPromotions(ctx context.Context) ([]model.Promotion, error) {
	return s.promotionRepo.List(ctx)
}

func (s *promotionService) UpdatePromotion(ctx context.Context, promotionID int64, req model.UpdatePromotionRequest) (*model.Promotion, error) {
	promotion, err := s.promotionRepo.GetByID(ctx, promotionID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		promotion.Description = *req.Description
	}
	if req.DiscountValue != nil {
		promotion.DiscountValue = *req.DiscountValue
	}
	if req.MaxDiscount != nil {
		promotion.MaxDiscount = req.MaxDiscount
	}
	if req.StartsAt != nil {
		promotion.StartsAt = *req.StartsAt
	}
	if req.ExpiresAt != nil {
		promotion.ExpiresAt = *req.ExpiresAt
	}
	if req.Status != nil {
		promotion.Status = model.PromotionStatus(*req.Status)
	}

	if err := s.promotionRepo.Update(ctx, promotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

func (s *promotionService) DeletePromotion(ctx context.Context, promotionID int64) error {
	return s.promotionRepo.Delete(ctx, promotionID)
}
