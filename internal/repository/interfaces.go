package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
)

// AccountRepository manages the shared-account stock.
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	CreateBatch(ctx context.Context, accounts []*model.Account) error
	Get(ctx context.Context, id uuid.UUID) (*model.Account, error)
	GetByEmail(ctx context.Context, email string) (*model.Account, error)
	List(ctx context.Context, accountType string) ([]*model.Account, error)
	ListByPlatformAndType(ctx context.Context, platform, accountType string) ([]*model.Account, error)
	ListByEmails(ctx context.Context, emails []string) ([]*model.Account, error)
	SearchByEmail(ctx context.Context, query string, limit int) ([]*model.Account, error)
	Update(ctx context.Context, account *model.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfilePicker selects an index in [0, n) among the available slots.
// Injected so the selection policy stays testable.
type ProfilePicker func(n int) int

// AssignmentRepository owns the profile-assignment transaction and the
// assignment history.
type AssignmentRepository interface {
	AssignProfile(ctx context.Context, req *AssignProfileParams, pick ProfilePicker) (*model.AssignmentResult, error)
	List(ctx context.Context) ([]*model.AssignmentRecord, error)
}

// AssignProfileParams carries everything the assignment transaction needs.
type AssignProfileParams struct {
	CustomerIdentifier string
	AccountID          uuid.UUID
	WhatsappAccountID  *uuid.UUID
	OperatorName       string
}

// GaransiRepository manages warranty replacement stock.
type GaransiRepository interface {
	CreateBatch(ctx context.Context, accounts []*model.GaransiAccount) error
	List(ctx context.Context) ([]*model.GaransiAccount, error)
	ListByWarrantyDate(ctx context.Context, day time.Time) ([]*model.GaransiAccount, error)
	ListByExpiry(ctx context.Context, day time.Time) ([]*model.GaransiAccount, error)
	ListByEmails(ctx context.Context, emails []string) ([]*model.GaransiAccount, error)
}

// ReportRepository manages the problem-report lifecycle.
type ReportRepository interface {
	Create(ctx context.Context, report *model.ReportedAccount) error
	Resolve(ctx context.Context, reportID uuid.UUID, newPassword *string) (alreadyResolved bool, err error)
	List(ctx context.Context) ([]*model.ReportWithAccount, error)
}

// WhatsappRepository is plain CRUD over outbound contact identities.
type WhatsappRepository interface {
	Create(ctx context.Context, account *model.WhatsappAccount) error
	List(ctx context.Context) ([]*model.WhatsappAccount, error)
	Update(ctx context.Context, account *model.WhatsappAccount) error
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*model.WhatsappAccount, error)
}

// ActivityRepository reads the append-only operator activity log.
type ActivityRepository interface {
	List(ctx context.Context) ([]*model.OperatorActivity, error)
	CountByOperatorTypeDay(ctx context.Context) ([]*model.ActivityCount, error)
}

// StatisticsRepository runs the read-side aggregation queries.
type StatisticsRepository interface {
	CustomerStatistics(ctx context.Context) (*model.CustomerStatistics, error)
}

// UserRepository manages panel logins.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	Delete(ctx context.Context, username string) error
}

// BackupRepository exports and restores the whole dataset.
type BackupRepository interface {
	Export(ctx context.Context) (*model.BackupData, error)
	Restore(ctx context.Context, data *model.BackupData) error
}
