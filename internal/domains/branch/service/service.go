package service

import (
	"context"

	"sportcenter-backend/internal/domains/branch/model"
	"sportcenter-backend/internal/domains/branch/repository"
	"sportcenter-backend/pkg/logger"
)

type BranchService interface {
	CreateBranch(ctx context.Context, req model.CreateBranchRequest) (*model.Branch, error)
	GetBranch(ctx context.Context, branchID int64) (*model.Branch, error)
	ListBranches(ctx context.Context) ([]model.Branch, error)
	UpdateBranch(ctx context.Context, branchID int64, req model.UpdateBranchRequest) (*model.Branch, error)
	DeleteBranch(ctx context.Context, branchID int64) error
}

type branchService struct {
	branchRepo repository.BranchRepository
}

func NewBranchService(branchRepo repository.BranchRepository) BranchService {
	return &branchService{branchRepo: branchRepo}
}

func (s *branchService) CreateBranch(ctx context.Context, req model.CreateBranchRequest) (*model.Branch, error) {
	branch := &model.Branch{
		Name:     req.Name,
		Location: req.Location,
		Status:   model.BranchStatusActive,
	}
	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}

	logger.Info("Branch created", map[string]interface{}{
		"branch_id": branch.ID,
		"name":      branch.Name,
	})
	return branch, nil
}

func (s *branchService) GetBranch(ctx context.Context, branchID int64) (*model.Branch, error) {
	return s.branchRepo.GetByID(ctx, branchID)
}

func (s *branchService) ListBranches(ctx context.Context) ([]model.Branch, error) {
	return s.branchRepo.List(ctx)
}

func (s *branchService) UpdateBranch(ctx context.Context, branchID int64, req model.UpdateBranchRequest) (*model.Branch, error) {
	branch, err := s.branchRepo.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.Location != nil {
		branch.Location = *req.Location
	}
	if req.Status != nil {
		branch.Status = model.BranchStatus(*req.Status)
	}

	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

func (s *branchService) DeleteBranch(ctx context.Context, branchID int64) error {
	return s.branchRepo.Delete(ctx, branchID)
}
