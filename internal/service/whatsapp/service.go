package whatsapp

import (
	"context"

	"github.com/google/uuid"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
)

type Service struct {
	repo repository.WhatsappRepository
}

func NewService(repo repository.WhatsappRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*model.WhatsappAccount, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req *model.CreateWhatsappRequest) (*model.WhatsappAccount, error) {
	account := &model.WhatsappAccount{
		Name:   req.Name,
		Number: req.Number,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateWhatsappRequest) (*model.WhatsappAccount, error) {
	if req.Name == nil && req.Number == nil {
		return nil, apperrors.Validation("no data provided for update")
	}

	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Number != nil {
		account.Number = *req.Number
	}

	if err := s.repo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
