package backup

import (
	"context"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
)

type Service struct {
	repo repository.BackupRepository
}

func NewService(repo repository.BackupRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Export(ctx context.Context) (*model.BackupData, error) {
	return s.repo.Export(ctx)
}

// Restore replaces the panel data with the contents of an exported backup.
// All four collections must be present, even if empty, so that a truncated
// or hand-edited file cannot silently wipe a table.
func (s *Service) Restore(ctx context.Context, data *model.BackupData) error {
	if data.Accounts == nil || data.CustomerAssignments == nil ||
		data.ReportedAccounts == nil || data.Users == nil {
		return apperrors.Validation("backup data is incomplete: accounts, customer_assignments, reported_accounts and users are all required")
	}
	return s.repo.Restore(ctx, data)
}
