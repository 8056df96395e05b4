package assignment

import (
	"context"
	"math/rand"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
)

type Service struct {
	repo repository.AssignmentRepository
	pick repository.ProfilePicker
}

func NewService(repo repository.AssignmentRepository) *Service {
	// Uniformly random selection among available slots is deliberate:
	// it spreads customers across profile letters instead of always
	// handing out the first free one.
	return &Service{repo: repo, pick: rand.Intn}
}

// Assign claims one unused profile slot on the target account for the
// customer. The repository runs the whole thing as one transaction; the
// availability check inside it is the authoritative one.
func (s *Service) Assign(ctx context.Context, req *model.CreateAssignmentRequest, operatorName string) (*model.AssignmentResult, error) {
	if operatorName == "" {
		operatorName = "System"
	}

	params := &repository.AssignProfileParams{
		CustomerIdentifier: req.CustomerIdentifier,
		AccountID:          req.AccountID,
		WhatsappAccountID:  req.WhatsappAccountID,
		OperatorName:       operatorName,
	}
	return s.repo.AssignProfile(ctx, params, s.pick)
}

func (s *Service) List(ctx context.Context) ([]*model.AssignmentRecord, error) {
	return s.repo.List(ctx)
}
