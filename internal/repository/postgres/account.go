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
	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
)

type accountRepository struct {
	BaseRepository
}

func NewAccountRepository(base BaseRepository) repository.AccountRepository {
	return &accountRepository{base}
}

func (r *accountRepository) Create(ctx context.Context, account *model.Account) error {
	query := `
		INSERT INTO accounts (
			id, email, password, type, platform, profiles,
			reported, created_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	account.ID = uuid.New()
	account.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		account.ID,
		account.Email,
		account.Password,
		account.Type,
		account.Platform,
		account.Profiles,
		account.Reported,
		account.CreatedAt,
		account.ExpiresAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict(fmt.Sprintf("account with email %s already exists", account.Email))
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *accountRepository) CreateBatch(ctx context.Context, accounts []*model.Account) error {
	query := `
		INSERT INTO accounts (
			id, email, password, type, platform, profiles,
			reported, created_at, expires_at
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
				account.Profiles,
				account.Reported,
				account.CreatedAt,
				account.ExpiresAt,
			); err != nil {
				return fmt.Errorf("failed to insert account %s: %w", account.Email, err)
			}
		}
		return nil
	})
}

func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	query := `SELECT * FROM accounts WHERE id = $1`

	var account model.Account
	if err := r.db.GetContext(ctx, &account, query, id); err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("account")
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := `SELECT * FROM accounts WHERE email = $1`

	var account model.Account
	if err := r.db.GetContext(ctx, &account, query, email); err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("account")
		}
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) List(ctx context.Context, accountType string) ([]*model.Account, error) {
	query := `SELECT * FROM accounts`
	args := []interface{}{}

	if accountType != "" {
		query += ` WHERE type = $1`
		args = append(args, accountType)
	}
	query += ` ORDER BY created_at DESC`

	accounts := []*model.Account{}
	if err := r.db.SelectContext(ctx, &accounts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (r *accountRepository) ListByPlatformAndType(ctx context.Context, platform, accountType string) ([]*model.Account, error) {
	// Oldest first so old stock gets sold before fresh stock.
	query := `
		SELECT * FROM accounts
		WHERE platform = $1 AND type = $2
		ORDER BY created_at ASC
	`

	accounts := []*model.Account{}
	if err := r.db.SelectContext(ctx, &accounts, query, platform, accountType); err != nil {
		return nil, fmt.Errorf("failed to list accounts by platform and type: %w", err)
	}
	return accounts, nil
}

func (r *accountRepository) ListByEmails(ctx context.Context, emails []string) ([]*model.Account, error) {
	query := `
		SELECT * FROM accounts
		WHERE email = ANY($1)
		ORDER BY created_at DESC
	`

	accounts := []*model.Account{}
	if err := r.db.SelectContext(ctx, &accounts, query, pq.Array(emails)); err != nil {
		return nil, fmt.Errorf("failed to list accounts by emails: %w", err)
	}
	return accounts, nil
}

func (r *accountRepository) SearchByEmail(ctx context.Context, query string, limit int) ([]*model.Account, error) {
	stmt := `
		SELECT * FROM accounts
		WHERE email ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2
	`

	accounts := []*model.Account{}
	if err := r.db.SelectContext(ctx, &accounts, stmt, query, limit); err != nil {
		return nil, fmt.Errorf("failed to search accounts: %w", err)
	}
	return accounts, nil
}

func (r *accountRepository) Update(ctx context.Context, account *model.Account) error {
	query := `
		UPDATE accounts SET
			email = $1,
			password = $2,
			platform = $3,
			profiles = $4,
			reported = $5,
			expires_at = $6
		WHERE id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		account.Email,
		account.Password,
		account.Platform,
		account.Profiles,
		account.Reported,
		account.ExpiresAt,
		account.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict(fmt.Sprintf("email '%s' is already in use", account.Email))
		}
		return fmt.Errorf("failed to update account: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("account")
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM customer_assignments WHERE account_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete account assignments: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM reported_accounts WHERE account_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete account reports: %w", err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return apperrors.NotFound("account")
		}
		return nil
	})
}
