package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
)

type reportRepository struct {
	BaseRepository
}

func NewReportRepository(base BaseRepository) repository.ReportRepository {
	return &reportRepository{base}
}

// Create files a report and flags the account, both in one transaction.
func (r *reportRepository) Create(ctx context.Context, report *model.ReportedAccount) error {
	report.ID = uuid.New()
	report.ReportedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE accounts SET reported = TRUE WHERE id = $1`,
			report.AccountID,
		)
		if err != nil {
			return fmt.Errorf("failed to flag account as reported: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return apperrors.NotFound("account")
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO reported_accounts (
				id, account_id, report_reason, operator_name,
				resolved, reported_at
			) VALUES ($1, $2, $3, $4, FALSE, $5)`,
			report.ID,
			report.AccountID,
			report.ReportReason,
			report.OperatorName,
			report.ReportedAt,
		); err != nil {
			return fmt.Errorf("failed to insert report: %w", err)
		}
		return nil
	})
}

// Resolve closes a report. An already-resolved report is left untouched
// and flagged to the caller so the service can log instead of re-applying.
func (r *reportRepository) Resolve(ctx context.Context, reportID uuid.UUID, newPassword *string) (bool, error) {
	var alreadyResolved bool

	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		row := tx.QueryRowxContext(ctx,
			`SELECT account_id, resolved FROM reported_accounts WHERE id = $1 FOR UPDATE`,
			reportID,
		)

		var (
			accountID uuid.UUID
			resolved  bool
		)
		if err := row.Scan(&accountID, &resolved); err != nil {
			if isNoRows(err) {
				return apperrors.NotFound("report")
			}
			return fmt.Errorf("failed to load report: %w", err)
		}

		if resolved {
			alreadyResolved = true
			return nil
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE reported_accounts SET resolved = TRUE, resolved_at = $1 WHERE id = $2`,
			time.Now(), reportID,
		); err != nil {
			return fmt.Errorf("failed to resolve report: %w", err)
		}

		accountUpdate := `UPDATE accounts SET reported = FALSE WHERE id = $1`
		args := []interface{}{accountID}
		if newPassword != nil && *newPassword != "" {
			accountUpdate = `UPDATE accounts SET reported = FALSE, password = $2 WHERE id = $1`
			args = append(args, *newPassword)
		}
		if _, err := tx.ExecContext(ctx, accountUpdate, args...); err != nil {
			return fmt.Errorf("failed to clear account report flag: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return alreadyResolved, nil
}

func (r *reportRepository) List(ctx context.Context) ([]*model.ReportWithAccount, error) {
	query := `
		SELECT ra.*,
			   a.email    AS account_email,
			   a.type     AS account_type,
			   a.platform AS account_platform
		FROM reported_accounts ra
		JOIN accounts a ON a.id = ra.account_id
		ORDER BY ra.reported_at DESC
	`

	reports := []*model.ReportWithAccount{}
	if err := r.db.SelectContext(ctx, &reports, query); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}
