package backup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	apperrors "github.com/vladimirahmad90-oss/AccountManagement/pkg/errors"
)

type fakeBackupRepo struct {
	data         *model.BackupData
	restored     *model.BackupData
	restoreCalls int
}

func (f *fakeBackupRepo) Export(ctx context.Context) (*model.BackupData, error) {
	return f.data, nil
}

func (f *fakeBackupRepo) Restore(ctx context.Context, data *model.BackupData) error {
	f.restoreCalls++
	f.restored = data
	return nil
}

func completeBackup() *model.BackupData {
	return &model.BackupData{
		Accounts:            []model.Account{},
		CustomerAssignments: []model.CustomerAssignment{},
		ReportedAccounts:    []model.ReportedAccount{},
		Users:               []model.BackupUser{},
	}
}

func TestRestoreRequiresAllCollections(t *testing.T) {
	repo := &fakeBackupRepo{}
	svc := NewService(repo)

	tests := []struct {
		name   string
		mutate func(*model.BackupData)
	}{
		{"missing accounts", func(d *model.BackupData) { d.Accounts = nil }},
		{"missing assignments", func(d *model.BackupData) { d.CustomerAssignments = nil }},
		{"missing reports", func(d *model.BackupData) { d.ReportedAccounts = nil }},
		{"missing users", func(d *model.BackupData) { d.Users = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := completeBackup()
			tt.mutate(data)
			err := svc.Restore(context.Background(), data)
			assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		})
	}
	assert.Equal(t, 0, repo.restoreCalls)
}

func TestRestoreAcceptsEmptyCollections(t *testing.T) {
	repo := &fakeBackupRepo{}
	svc := NewService(repo)

	require.NoError(t, svc.Restore(context.Background(), completeBackup()))
	assert.Equal(t, 1, repo.restoreCalls)
}

func TestExportPassesThrough(t *testing.T) {
	want := completeBackup()
	svc := NewService(&fakeBackupRepo{data: want})

	got, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
