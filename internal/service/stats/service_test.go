package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/model"
)

type fakeActivityRepo struct {
	counts []*model.ActivityCount
}

func (f *fakeActivityRepo) List(ctx context.Context) ([]*model.OperatorActivity, error) {
	return nil, nil
}

func (f *fakeActivityRepo) CountByOperatorTypeDay(ctx context.Context) ([]*model.ActivityCount, error) {
	return f.counts, nil
}

type fakeStatsRepo struct {
	stats *model.CustomerStatistics
}

func (f *fakeStatsRepo) CustomerStatistics(ctx context.Context) (*model.CustomerStatistics, error) {
	return f.stats, nil
}

func TestOperatorsFoldsCounts(t *testing.T) {
	day1 := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	svc := NewService(&fakeStatsRepo{}, &fakeActivityRepo{counts: []*model.ActivityCount{
		{OperatorName: "Budi", AccountType: model.AccountTypeSharing, Day: day1, Count: 3},
		{OperatorName: "Budi", AccountType: model.AccountTypePrivate, Day: day1, Count: 1},
		{OperatorName: "Budi", AccountType: model.AccountTypeSharing, Day: day2, Count: 2},
		{OperatorName: "Sari", AccountType: model.AccountTypeVIP, Day: day2, Count: 5},
	}})

	result, err := svc.Operators(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)

	budi := result["Budi"]
	require.NotNil(t, budi)
	assert.Equal(t, 6, budi.Total)
	assert.Equal(t, 5, budi.Sharing)
	assert.Equal(t, 1, budi.Private)
	assert.Equal(t, 0, budi.VIP)
	assert.Equal(t, 4, budi.ByDate["2026-08-30"])
	assert.Equal(t, 2, budi.ByDate["2026-08-31"])

	sari := result["Sari"]
	require.NotNil(t, sari)
	assert.Equal(t, 5, sari.Total)
	assert.Equal(t, 5, sari.VIP)
	assert.Equal(t, 5, sari.ByDate["2026-08-31"])
}

func TestOperatorsEmpty(t *testing.T) {
	svc := NewService(&fakeStatsRepo{}, &fakeActivityRepo{})

	result, err := svc.Operators(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestCustomersPassesThrough(t *testing.T) {
	want := &model.CustomerStatistics{TotalCustomers: 7, TotalAssignments: 12}
	svc := NewService(&fakeStatsRepo{stats: want}, &fakeActivityRepo{})

	got, err := svc.Customers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
