package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
)

type backupRepository struct {
	BaseRepository
}

func NewBackupRepository(base BaseRepository) repository.BackupRepository {
	return &backupRepository{base}
}

func (r *backupRepository) Export(ctx context.Context) (*model.BackupData, error) {
	data := &model.BackupData{
		Accounts:            []model.Account{},
		CustomerAssignments: []model.CustomerAssignment{},
		ReportedAccounts:    []model.ReportedAccount{},
		Users:               []model.BackupUser{},
	}

	if err := r.db.SelectContext(ctx, &data.Accounts,
		`SELECT * FROM accounts ORDER BY created_at ASC`); err != nil {
		return nil, fmt.Errorf("failed to export accounts: %w", err)
	}
	if err := r.db.SelectContext(ctx, &data.CustomerAssignments,
		`SELECT * FROM customer_assignments ORDER BY assigned_at ASC`); err != nil {
		return nil, fmt.Errorf("failed to export assignments: %w", err)
	}
	if err := r.db.SelectContext(ctx, &data.ReportedAccounts,
		`SELECT * FROM reported_accounts ORDER BY reported_at ASC`); err != nil {
		return nil, fmt.Errorf("failed to export reports: %w", err)
	}

	var users []model.User
	if err := r.db.SelectContext(ctx, &users,
		`SELECT * FROM users ORDER BY created_at ASC`); err != nil {
		return nil, fmt.Errorf("failed to export users: %w", err)
	}
	for _, u := range users {
		data.Users = append(data.Users, model.BackupUser{
			ID:           u.ID,
			Username:     u.Username,
			PasswordHash: u.PasswordHash,
			Role:         u.Role,
			Name:         u.Name,
			CreatedAt:    u.CreatedAt,
			UpdatedAt:    u.UpdatedAt,
		})
	}
	return data, nil
}

// Restore replaces the entire dataset from a snapshot. Destructive: existing
// rows are deleted first, in dependency order. Everything runs in one
// transaction so a mid-restore failure leaves the previous data intact.
func (r *backupRepository) Restore(ctx context.Context, data *model.BackupData) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, table := range []string{
			"reported_accounts",
			"customer_assignments",
			"accounts",
			"users",
		} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		now := time.Now()

		for _, u := range data.Users {
			if u.ID == uuid.Nil {
				u.ID = uuid.New()
			}
			if u.CreatedAt.IsZero() {
				u.CreatedAt = now
			}
			if u.UpdatedAt.IsZero() {
				u.UpdatedAt = u.CreatedAt
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO users (id, username, password_hash, role, name, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (username) DO NOTHING`,
				u.ID, u.Username, u.PasswordHash, u.Role, u.Name, u.CreatedAt, u.UpdatedAt,
			); err != nil {
				return fmt.Errorf("failed to restore user %s: %w", u.Username, err)
			}
		}

		for _, a := range data.Accounts {
			if a.ID == uuid.Nil {
				a.ID = uuid.New()
			}
			if a.CreatedAt.IsZero() {
				a.CreatedAt = now
			}
			if a.ExpiresAt.IsZero() {
				a.ExpiresAt = now.Add(30 * 24 * time.Hour)
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO accounts (id, email, password, type, platform, profiles, reported, created_at, expires_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
				ON CONFLICT (email) DO NOTHING`,
				a.ID, a.Email, a.Password, a.Type, a.Platform, a.Profiles, a.Reported, a.CreatedAt, a.ExpiresAt,
			); err != nil {
				return fmt.Errorf("failed to restore account %s: %w", a.Email, err)
			}
		}

		for _, ca := range data.CustomerAssignments {
			if ca.ID == uuid.Nil {
				ca.ID = uuid.New()
			}
			if ca.AssignedAt.IsZero() {
				ca.AssignedAt = now
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO customer_assignments (
					id, customer_identifier, account_id, account_email,
					account_type, profile_name, operator_name,
					whatsapp_account_id, assigned_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
				ON CONFLICT (id) DO NOTHING`,
				ca.ID, ca.CustomerIdentifier, ca.AccountID, ca.AccountEmail,
				ca.AccountType, ca.ProfileName, ca.OperatorName,
				ca.WhatsappAccountID, ca.AssignedAt,
			); err != nil {
				return fmt.Errorf("failed to restore assignment for %s: %w", ca.CustomerIdentifier, err)
			}
		}

		for _, ra := range data.ReportedAccounts {
			if ra.ID == uuid.Nil {
				ra.ID = uuid.New()
			}
			if ra.ReportedAt.IsZero() {
				ra.ReportedAt = now
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO reported_accounts (
					id, account_id, report_reason, operator_name,
					resolved, reported_at, resolved_at
				) VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (id) DO NOTHING`,
				ra.ID, ra.AccountID, ra.ReportReason, ra.OperatorName,
				ra.Resolved, ra.ReportedAt, ra.ResolvedAt,
			); err != nil {
				return fmt.Errorf("failed to restore report %s: %w", ra.ID, err)
			}
		}

		return nil
	})
}
