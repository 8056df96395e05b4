package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
)

type garansiRepository struct {
	BaseRepository
}

func NewGaransiRepository(base BaseRepository) repository.GaransiRepository {
	return &garansiRepository{base}
}

func (r *garansiRepository) CreateBatch(ctx context.Context, accounts []*model.GaransiAccount) error {
	query := `
		INSERT INTO garansi_accounts (
			id, email, password, type, platform, is_active,
			warranty_date, expires_at, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (email) DO NOTHING
	`

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		now := time.Now()
		for _, account := range accounts {
			account.ID = uuid.New()
			account.CreatedAt = now

			if _, err := tx.ExecContext(ctx, query,
				account.ID,
				account.Email,
				account.Password,
				account.Type,
				account.Platform,
				account.IsActive,
				account.WarrantyDate,
				account.ExpiresAt,
				account.CreatedAt,
			); err != nil {
				return fmt.Errorf("failed to insert garansi account %s: %w", account.Email, err)
			}
		}
		return nil
	})
}

func (r *garansiRepository) List(ctx context.Context) ([]*model.GaransiAccount, error) {
	query := `SELECT * FROM garansi_accounts ORDER BY created_at DESC`

	accounts := []*model.GaransiAccount{}
	if err := r.db.SelectContext(ctx, &accounts, query); err != nil {
		return nil, fmt.Errorf("failed to list garansi accounts: %w", err)
	}
	return accounts, nil
}

func (r *garansiRepository) ListByWarrantyDate(ctx context.Context, day time.Time) ([]*model.GaransiAccount, error) {
	start, end := dayRange(day)
	query := `
		SELECT * FROM garansi_accounts
		WHERE warranty_date >= $1 AND warranty_date <= $2
		ORDER BY warranty_date DESC
	`

	accounts := []*model.GaransiAccount{}
	if err := r.db.SelectContext(ctx, &accounts, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to list garansi accounts by warranty date: %w", err)
	}
	return accounts, nil
}

func (r *garansiRepository) ListByExpiry(ctx context.Context, day time.Time) ([]*model.GaransiAccount, error) {
	start, end := dayRange(day)
	query := `
		SELECT * FROM garansi_accounts
		WHERE expires_at >= $1 AND expires_at <= $2
		ORDER BY expires_at ASC
	`

	accounts := []*model.GaransiAccount{}
	if err := r.db.SelectContext(ctx, &accounts, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to list garansi accounts by expiry: %w", err)
	}
	return accounts, nil
}

func (r *garansiRepository) ListByEmails(ctx context.Context, emails []string) ([]*model.GaransiAccount, error) {
	query := `
		SELECT * FROM garansi_accounts
		WHERE email = ANY($1)
		ORDER BY created_at DESC
	`

	accounts := []*model.GaransiAccount{}
	if err := r.db.SelectContext(ctx, &accounts, query, pq.Array(emails)); err != nil {
		return nil, fmt.Errorf("failed to list garansi accounts by emails: %w", err)
	}
	return accounts, nil
}

// dayRange expands a date into its [00:00:00, 23:59:59.999999999] window.
func dayRange(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
