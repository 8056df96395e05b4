package stats

import (
	"context"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
)

const dayFormat = "2006-01-02"

type Service struct {
	stats      repository.StatisticsRepository
	activities repository.ActivityRepository
}

func NewService(stats repository.StatisticsRepository, activities repository.ActivityRepository) *Service {
	return &Service{stats: stats, activities: activities}
}

func (s *Service) Customers(ctx context.Context) (*model.CustomerStatistics, error) {
	return s.stats.CustomerStatistics(ctx)
}

func (s *Service) Activities(ctx context.Context) ([]*model.OperatorActivity, error) {
	return s.activities.List(ctx)
}

// Operators aggregates assignment activity per operator, broken down by
// account type and by day.
func (s *Service) Operators(ctx context.Context) (map[string]*model.OperatorStatistics, error) {
	counts, err := s.activities.CountByOperatorTypeDay(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]*model.OperatorStatistics)
	for _, c := range counts {
		op, ok := result[c.OperatorName]
		if !ok {
			op = &model.OperatorStatistics{ByDate: make(map[string]int)}
			result[c.OperatorName] = op
		}
		op.Total += c.Count
		switch c.AccountType {
		case model.AccountTypePrivate:
			op.Private += c.Count
		case model.AccountTypeSharing:
			op.Sharing += c.Count
		case model.AccountTypeVIP:
			op.VIP += c.Count
		}
		op.ByDate[c.Day.Format(dayFormat)] += c.Count
	}
	return result, nil
}
