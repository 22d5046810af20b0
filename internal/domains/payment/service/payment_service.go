package service

import (
	"context"

	"sportcenter-backend/internal/domains/payment/model"
	repo "sportcenter-backend/internal/domains/payment/repository"
)

// PaymentService exposes the read side of payments.
type PaymentService interface {
	GetPayment(ctx context.Context, paymentID int64) (*model.Payment, error)
	GetPaymentDetail(ctx context.Context, paymentID int64) (*model.PaymentDetail, error)
	ListUserPayments(ctx context.Context, userID int64) ([]model.Payment, error)
}

type paymentService struct {
	paymentRepo repo.PaymentRepository
}

func NewPaymentService(paymentRepo repo.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) GetPayment(ctx context.Context, paymentID int64) (*model.Payment, error) {
	return s.paymentRepo.GetByID(ctx, paymentID)
}

func (s *paymentService) GetPaymentDetail(ctx context.Context, paymentID int64) (*model.PaymentDetail, error) {
	return s.paymentRepo.GetDetail(ctx, paymentID)
}

func (s *paymentService) ListUserPayments(ctx context.Context, userID int64) ([]model.Payment, error) {
	return s.paymentRepo.ListByUser(ctx, userID)
}
