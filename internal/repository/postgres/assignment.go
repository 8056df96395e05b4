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

type assignmentRepository struct {
	BaseRepository
}

func NewAssignmentRepository(base BaseRepository) repository.AssignmentRepository {
	return &assignmentRepository{base}
}

// AssignProfile claims one unused profile slot for a customer. The whole
// operation runs in a single transaction with the account row locked, so
// two concurrent requests can never claim the same slot: the second one
// blocks on the lock and re-reads availability after the first commits.
func (r *assignmentRepository) AssignProfile(ctx context.Context, params *repository.AssignProfileParams, pick repository.ProfilePicker) (*model.AssignmentResult, error) {
	var result *model.AssignmentResult

	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		row := tx.QueryRowxContext(ctx,
			`SELECT id, email, type, profiles FROM accounts WHERE id = $1 FOR UPDATE`,
			params.AccountID,
		)

		var (
			accountID   uuid.UUID
			email       string
			accountType string
			rawProfiles []byte
		)
		if err := row.Scan(&accountID, &email, &accountType, &rawProfiles); err != nil {
			if isNoRows(err) {
				return apperrors.NotFound("account")
			}
			return fmt.Errorf("failed to lock account: %w", err)
		}

		var profiles model.ProfileList
		if err := profiles.Scan(rawProfiles); err != nil {
			return apperrors.Wrap(apperrors.Validation("account profiles data is malformed"), err)
		}

		free := len(profiles.Available())
		if free == 0 {
			return apperrors.Conflict(fmt.Sprintf("no available profiles on account %s", accountID))
		}

		selected, ok := profiles.Claim(pick(free))
		if !ok {
			return apperrors.Conflict(fmt.Sprintf("no available profiles on account %s", accountID))
		}

		assignment := &model.CustomerAssignment{
			ID:                 uuid.New(),
			CustomerIdentifier: params.CustomerIdentifier,
			AccountID:          accountID,
			AccountEmail:       email,
			AccountType:        accountType,
			ProfileName:        selected.Profile,
			OperatorName:       params.OperatorName,
			WhatsappAccountID:  params.WhatsappAccountID,
			AssignedAt:         time.Now(),
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO customer_assignments (
				id, customer_identifier, account_id, account_email,
				account_type, profile_name, operator_name,
				whatsapp_account_id, assigned_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			assignment.ID,
			assignment.CustomerIdentifier,
			assignment.AccountID,
			assignment.AccountEmail,
			assignment.AccountType,
			assignment.ProfileName,
			assignment.OperatorName,
			assignment.WhatsappAccountID,
			assignment.AssignedAt,
		); err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}

		action := fmt.Sprintf("Assign profile %s (%s) to %s",
			selected.Profile, accountType, params.CustomerIdentifier)
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO operator_activities (
				id, operator_name, action, account_email, account_type, created_at
			) VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(),
			params.OperatorName,
			action,
			email,
			accountType,
			assignment.AssignedAt,
		); err != nil {
			return fmt.Errorf("failed to insert operator activity: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE accounts SET profiles = $1 WHERE id = $2`,
			profiles, accountID,
		); err != nil {
			return fmt.Errorf("failed to update account profiles: %w", err)
		}

		result = &model.AssignmentResult{
			Assignment: assignment,
			Profile:    selected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *assignmentRepository) List(ctx context.Context) ([]*model.AssignmentRecord, error) {
	query := `
		SELECT ca.*,
			   a.platform   AS account_platform,
			   a.password   AS account_password,
			   a.expires_at AS account_expires_at,
			   wa.name      AS whatsapp_name,
			   wa.number    AS whatsapp_number
		FROM customer_assignments ca
		LEFT JOIN accounts a ON a.id = ca.account_id
		LEFT JOIN whatsapp_accounts wa ON wa.id = ca.whatsapp_account_id
		ORDER BY ca.assigned_at DESC
	`

	records := []*model.AssignmentRecord{}
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return records, nil
}
