package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
)

type whatsappRepository struct {
	BaseRepository
}

func NewWhatsappRepository(base BaseRepository) repository.WhatsappRepository {
	return &whatsappRepository{base}
}

func (r *whatsappRepository) Create(ctx context.Context, account *model.WhatsappAccount) error {
	query := `
		INSERT INTO whatsapp_accounts (id, name, number, created_at)
		VALUES ($1, $2, $3, $4)
	`

	account.ID = uuid.New()
	account.CreatedAt = time.Now()

	if _, err := r.db.ExecContext(ctx, query,
		account.ID, account.Name, account.Number, account.CreatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict(fmt.Sprintf("whatsapp account name '%s' already exists", account.Name))
		}
		return fmt.Errorf("failed to create whatsapp account: %w", err)
	}
	return nil
}

func (r *whatsappRepository) List(ctx context.Context) ([]*model.WhatsappAccount, error) {
	query := `SELECT * FROM whatsapp_accounts ORDER BY name ASC`

	accounts := []*model.WhatsappAccount{}
	if err := r.db.SelectContext(ctx, &accounts, query); err != nil {
		return nil, fmt.Errorf("failed to list whatsapp accounts: %w", err)
	}
	return accounts, nil
}

func (r *whatsappRepository) Get(ctx context.Context, id uuid.UUID) (*model.WhatsappAccount, error) {
	query := `SELECT * FROM whatsapp_accounts WHERE id = $1`

	var account model.WhatsappAccount
	if err := r.db.GetContext(ctx, &account, query, id); err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("whatsapp account")
		}
		return nil, fmt.Errorf("failed to get whatsapp account: %w", err)
	}
	return &account, nil
}

func (r *whatsappRepository) Update(ctx context.Context, account *model.WhatsappAccount) error {
	query := `
		UPDATE whatsapp_accounts SET name = $1, number = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, account.Name, account.Number, account.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.Conflict(fmt.Sprintf("whatsapp account name '%s' already exists", account.Name))
		}
		return fmt.Errorf("failed to update whatsapp account: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("whatsapp account")
	}
	return nil
}

func (r *whatsappRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM whatsapp_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete whatsapp account: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("whatsapp account")
	}
	return nil
}
