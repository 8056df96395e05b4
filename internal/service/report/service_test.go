package report

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
)

type fakeReportRepo struct {
	created         *model.ReportedAccount
	createErr       error
	alreadyResolved bool
	resolveErr      error
	resolveCalls    int
	lastPassword    *string
}

func (f *fakeReportRepo) Create(ctx context.Context, report *model.ReportedAccount) error {
	if f.createErr != nil {
		return f.createErr
	}
	report.ID = uuid.New()
	f.created = report
	return nil
}

func (f *fakeReportRepo) Resolve(ctx context.Context, reportID uuid.UUID, newPassword *string) (bool, error) {
	f.resolveCalls++
	f.lastPassword = newPassword
	return f.alreadyResolved, f.resolveErr
}

func (f *fakeReportRepo) List(ctx context.Context) ([]*model.ReportWithAccount, error) {
	return nil, nil
}

func TestCreateReportSetsOperator(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewService(repo)

	report, err := svc.Create(context.Background(), &model.CreateReportRequest{
		AccountID: uuid.New(),
		Reason:    "password changed by owner",
	}, "Budi")
	require.NoError(t, err)
	assert.Equal(t, "Budi", report.OperatorName)
	assert.Equal(t, "password changed by owner", report.ReportReason)
}

func TestCreateReportDefaultsOperator(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewService(repo)

	report, err := svc.Create(context.Background(), &model.CreateReportRequest{
		AccountID: uuid.New(),
		Reason:    "broken",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "System", report.OperatorName)
}

func TestCreateReportUnknownAccount(t *testing.T) {
	repo := &fakeReportRepo{createErr: apperrors.NotFound("account")}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), &model.CreateReportRequest{
		AccountID: uuid.New(),
		Reason:    "broken",
	}, "op")
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestResolvePassesPassword(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewService(repo)

	password := "newpass"
	require.NoError(t, svc.Resolve(context.Background(), uuid.New(), &password))
	require.NotNil(t, repo.lastPassword)
	assert.Equal(t, "newpass", *repo.lastPassword)
}

func TestResolveAlreadyResolvedIsNoOp(t *testing.T) {
	repo := &fakeReportRepo{alreadyResolved: true}
	svc := NewService(repo)

	// A second resolution must not error so the caller can retry safely.
	assert.NoError(t, svc.Resolve(context.Background(), uuid.New(), nil))
	assert.Equal(t, 1, repo.resolveCalls)
}

func TestResolveUnknownReport(t *testing.T) {
	repo := &fakeReportRepo{resolveErr: apperrors.NotFound("report")}
	svc := NewService(repo)

	err := svc.Resolve(context.Background(), uuid.New(), nil)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}
