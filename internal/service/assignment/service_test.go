package assignment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/repository"
)

type fakeAssignmentRepo struct {
	lastParams *repository.AssignProfileParams
	lastPickN  int
	result     *model.AssignmentResult
	err        error
	records    []*model.AssignmentRecord
}

func (f *fakeAssignmentRepo) AssignProfile(ctx context.Context, params *repository.AssignProfileParams, pick repository.ProfilePicker) (*model.AssignmentResult, error) {
	f.lastParams = params
	f.lastPickN = pick(4)
	return f.result, f.err
}

func (f *fakeAssignmentRepo) List(ctx context.Context) ([]*model.AssignmentRecord, error) {
	return f.records, nil
}

func TestAssignPassesOperatorName(t *testing.T) {
	repo := &fakeAssignmentRepo{result: &model.AssignmentResult{}}
	svc := NewService(repo)

	req := &model.CreateAssignmentRequest{
		CustomerIdentifier: "0812000111",
		AccountID:          uuid.New(),
	}
	_, err := svc.Assign(context.Background(), req, "Budi")
	require.NoError(t, err)
	assert.Equal(t, "Budi", repo.lastParams.OperatorName)
	assert.Equal(t, "0812000111", repo.lastParams.CustomerIdentifier)
}

func TestAssignDefaultsOperatorToSystem(t *testing.T) {
	repo := &fakeAssignmentRepo{result: &model.AssignmentResult{}}
	svc := NewService(repo)

	_, err := svc.Assign(context.Background(), &model.CreateAssignmentRequest{
		CustomerIdentifier: "cust",
		AccountID:          uuid.New(),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "System", repo.lastParams.OperatorName)
}

func TestAssignPickerStaysInRange(t *testing.T) {
	repo := &fakeAssignmentRepo{result: &model.AssignmentResult{}}
	svc := NewService(repo)

	for i := 0; i < 100; i++ {
		_, err := svc.Assign(context.Background(), &model.CreateAssignmentRequest{
			CustomerIdentifier: "cust",
			AccountID:          uuid.New(),
		}, "op")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, repo.lastPickN, 0)
		assert.Less(t, repo.lastPickN, 4)
	}
}

func TestAssignDeterministicPick(t *testing.T) {
	repo := &fakeAssignmentRepo{result: &model.AssignmentResult{
		Assignment: &model.CustomerAssignment{ProfileName: "Profile C"},
		Profile:    model.Profile{Profile: "Profile C", Pin: "3333"},
	}}
	svc := NewService(repo)
	svc.pick = func(n int) int { return n - 1 }

	result, err := svc.Assign(context.Background(), &model.CreateAssignmentRequest{
		CustomerIdentifier: "cust",
		AccountID:          uuid.New(),
	}, "op")
	require.NoError(t, err)
	assert.Equal(t, 3, repo.lastPickN)
	assert.Equal(t, "Profile C", result.Profile.Profile)
}
