package postgres

import (
	"context"
	"fmt"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
)

type statisticsRepository struct {
	BaseRepository
}

func NewStatisticsRepository(base BaseRepository) repository.StatisticsRepository {
	return &statisticsRepository{base}
}

func (r *statisticsRepository) CustomerStatistics(ctx context.Context) (*model.CustomerStatistics, error) {
	query := `
		SELECT COUNT(*)                                                  AS total_assignments,
			   COUNT(DISTINCT customer_identifier)                       AS total_customers,
			   COUNT(*) FILTER (WHERE account_type = 'private')          AS private_accounts,
			   COUNT(*) FILTER (WHERE account_type = 'sharing')          AS sharing_accounts,
			   COUNT(*) FILTER (WHERE account_type = 'vip')              AS vip_accounts
		FROM customer_assignments
	`

	var stats struct {
		TotalAssignments int `db:"total_assignments"`
		TotalCustomers   int `db:"total_customers"`
		PrivateAccounts  int `db:"private_accounts"`
		SharingAccounts  int `db:"sharing_accounts"`
		VIPAccounts      int `db:"vip_accounts"`
	}
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate customer statistics: %w", err)
	}

	return &model.CustomerStatistics{
		TotalCustomers:   stats.TotalCustomers,
		TotalAssignments: stats.TotalAssignments,
		PrivateAccounts:  stats.PrivateAccounts,
		SharingAccounts:  stats.SharingAccounts,
		VIPAccounts:      stats.VIPAccounts,
	}, nil
}
