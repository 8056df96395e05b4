package user

import (
	"context"
	"fmt"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
	"github.com/vladimirahmad90-oss/AccountManagement/pkg/security"
)

type Service struct {
	repo   repository.UserRepository
	hasher security.PasswordHasher
}

func NewService(repo repository.UserRepository, hasher security.PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

func (s *Service) List(ctx context.Context) ([]*model.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if !model.ValidRole(req.Role) {
		return nil, apperrors.Validation(fmt.Sprintf("invalid role: %s", req.Role))
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		Name:         req.Name,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) UpdatePassword(ctx context.Context, req *model.UpdateUserPasswordRequest) error {
	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return apperrors.Validation(err.Error())
	}
	return s.repo.UpdatePassword(ctx, req.Username, hash)
}

// Delete removes a panel user. The built-in admin login is protected.
func (s *Service) Delete(ctx context.Context, username string) error {
	if username == model.AdminUsername {
		return apperrors.Forbidden("the admin user cannot be deleted")
	}
	return s.repo.Delete(ctx, username)
}
