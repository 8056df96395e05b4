package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
)

const (
	defaultExpiryDays = 30
	searchResultLimit = 20
)

type Service struct {
	repo repository.AccountRepository
}

func NewService(repo repository.AccountRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, accountType string) ([]*model.Account, error) {
	if accountType != "" && !model.ValidAccountType(accountType) {
		// An unknown type filter falls back to the full listing.
		accountType = ""
	}
	return s.repo.List(ctx, accountType)
}

// Available returns accounts of the given platform and type that still
// have at least one unused profile slot.
func (s *Service) Available(ctx context.Context, platform, accountType string) ([]*model.Account, error) {
	if platform == "" || accountType == "" {
		return nil, apperrors.Validation("query parameters 'platform' and 'type' are required")
	}
	if !model.ValidPlatform(platform) {
		return nil, apperrors.Validation(fmt.Sprintf("invalid platform parameter: %s", platform))
	}
	if !model.ValidAccountType(accountType) {
		return nil, apperrors.Validation(fmt.Sprintf("invalid type parameter: %s", accountType))
	}

	accounts, err := s.repo.ListByPlatformAndType(ctx, platform, accountType)
	if err != nil {
		return nil, err
	}

	available := []*model.Account{}
	for _, account := range accounts {
		if len(account.Profiles.Available()) > 0 {
			available = append(available, account)
		}
	}
	return available, nil
}

func (s *Service) Search(ctx context.Context, emailQuery string) ([]*model.Account, error) {
	trimmed := strings.TrimSpace(emailQuery)
	if trimmed == "" {
		return nil, apperrors.Validation("query parameter 'email' is required")
	}
	return s.repo.SearchByEmail(ctx, trimmed, searchResultLimit)
}

// Stock counts available profile slots across all accounts of a type.
func (s *Service) Stock(ctx context.Context, accountType string) (*model.StockLevel, error) {
	if !model.ValidAccountType(accountType) {
		return nil, apperrors.Validation(fmt.Sprintf("invalid account type: %s", accountType))
	}

	accounts, err := s.repo.List(ctx, accountType)
	if err != nil {
		return nil, err
	}

	count := 0
	for _, account := range accounts {
		count += len(account.Profiles.Available())
	}
	return &model.StockLevel{Type: accountType, AvailableProfiles: count}, nil
}

func (s *Service) Create(ctx context.Context, req *model.CreateAccountRequest) (*model.Account, error) {
	if err := validateInput(&req.AccountInput); err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(defaultExpiryDays * 24 * time.Hour)
	if req.ExpiresAt != nil {
		expiresAt = *req.ExpiresAt
	}

	account := &model.Account{
		Email:     req.Email,
		Password:  req.Password,
		Type:      req.Type,
		Platform:  req.Platform,
		Profiles:  model.GenerateProfiles(req.Type),
		Reported:  false,
		ExpiresAt: expiresAt,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// CreateBulk inserts a batch with duplicate-email skip and returns the
// stored rows matching the batch emails, so the caller sees what actually
// exists rather than only what was new.
func (s *Service) CreateBulk(ctx context.Context, req *model.BulkAccountsRequest) ([]*model.Account, error) {
	if len(req.Accounts) == 0 {
		return nil, apperrors.Validation("accounts array cannot be empty")
	}

	accounts := make([]*model.Account, 0, len(req.Accounts))
	emails := make([]string, 0, len(req.Accounts))
	for i := range req.Accounts {
		input := &req.Accounts[i]
		if err := validateInput(input); err != nil {
			return nil, err
		}
		accounts = append(accounts, &model.Account{
			Email:     input.Email,
			Password:  input.Password,
			Type:      input.Type,
			Platform:  input.Platform,
			Profiles:  model.GenerateProfiles(input.Type),
			Reported:  false,
			ExpiresAt: req.ExpiresAt,
		})
		emails = append(emails, input.Email)
	}

	if err := s.repo.CreateBatch(ctx, accounts); err != nil {
		return nil, err
	}
	return s.repo.ListByEmails(ctx, emails)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateAccountRequest) (*model.Account, error) {
	if req.Email == nil && req.Password == nil && req.Platform == nil &&
		req.ExpiresAt == nil && req.Profiles == nil {
		return nil, apperrors.Validation("no valid fields provided for update")
	}
	if req.Platform != nil && !model.ValidPlatform(*req.Platform) {
		return nil, apperrors.Validation(fmt.Sprintf("invalid platform: %s", *req.Platform))
	}

	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		account.Email = *req.Email
	}
	if req.Password != nil {
		account.Password = *req.Password
	}
	if req.Platform != nil {
		account.Platform = *req.Platform
	}
	if req.ExpiresAt != nil {
		account.ExpiresAt = *req.ExpiresAt
	}
	if req.Profiles != nil {
		account.Profiles = model.ProfileList(req.Profiles)
	}

	if err := s.repo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func validateInput(input *model.AccountInput) error {
	if input.Email == "" || input.Password == "" || input.Type == "" || input.Platform == "" {
		return apperrors.Validation("email, password, type, and platform are required")
	}
	if !model.ValidAccountType(input.Type) {
		return apperrors.Validation(fmt.Sprintf("invalid account type: %s", input.Type))
	}
	if !model.ValidPlatform(input.Platform) {
		return apperrors.Validation(fmt.Sprintf("invalid platform: %s", input.Platform))
	}
	return nil
}
