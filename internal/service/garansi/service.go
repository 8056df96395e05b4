package garansi

import (
	"context"
	"fmt"
	"time"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
)

type Service struct {
	repo repository.GaransiRepository
}

func NewService(repo repository.GaransiRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*model.GaransiAccount, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByWarrantyDate(ctx context.Context, day time.Time) ([]*model.GaransiAccount, error) {
	return s.repo.ListByWarrantyDate(ctx, day)
}

func (s *Service) ListByExpiry(ctx context.Context, day time.Time) ([]*model.GaransiAccount, error) {
	return s.repo.ListByExpiry(ctx, day)
}

// CreateBulk stores a batch of warranty accounts, stamping the warranty
// date with the import time. Duplicate emails are skipped.
func (s *Service) CreateBulk(ctx context.Context, req *model.GaransiBulkRequest) ([]*model.GaransiAccount, error) {
	if len(req.Accounts) == 0 {
		return nil, apperrors.Validation("garansi accounts array cannot be empty")
	}

	now := time.Now()
	accounts := make([]*model.GaransiAccount, 0, len(req.Accounts))
	emails := make([]string, 0, len(req.Accounts))
	for _, input := range req.Accounts {
		if input.Email == "" || input.Password == "" || input.Type == "" || input.Platform == "" {
			return nil, apperrors.Validation("email, password, type, and platform are required")
		}
		if !model.ValidAccountType(input.Type) {
			return nil, apperrors.Validation(fmt.Sprintf("invalid account type: %s", input.Type))
		}
		if !model.ValidPlatform(input.Platform) {
			return nil, apperrors.Validation(fmt.Sprintf("invalid platform: %s", input.Platform))
		}
		accounts = append(accounts, &model.GaransiAccount{
			Email:        input.Email,
			Password:     input.Password,
			Type:         input.Type,
			Platform:     input.Platform,
			IsActive:     true,
			WarrantyDate: now,
			ExpiresAt:    req.ExpiresAt,
		})
		emails = append(emails, input.Email)
	}

	if err := s.repo.CreateBatch(ctx, accounts); err != nil {
		return nil, err
	}
	return s.repo.ListByEmails(ctx, emails)
}
