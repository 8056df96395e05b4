package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
)

type Service struct {
	repo repository.ReportRepository
}

func NewService(repo repository.ReportRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*model.ReportWithAccount, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req *model.CreateReportRequest, operatorName string) (*model.ReportedAccount, error) {
	if operatorName == "" {
		operatorName = "System"
	}

	report := &model.ReportedAccount{
		AccountID:    req.AccountID,
		ReportReason: req.Reason,
		OperatorName: operatorName,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

// Resolve closes a report and optionally rotates the account password.
// Resolving an already-resolved report is a no-op: the first resolution's
// timestamp stands and no second password rotation happens.
func (s *Service) Resolve(ctx context.Context, reportID uuid.UUID, newPassword *string) error {
	alreadyResolved, err := s.repo.Resolve(ctx, reportID, newPassword)
	if err != nil {
		return err
	}
	if alreadyResolved {
		log.Warn().Str("report_id", reportID.String()).Msg("report already resolved")
	}
	return nil
}
