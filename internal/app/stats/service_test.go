package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/internal/adapter/logger"
	"bistro/internal/domain"
)

type fakeStatsRepo struct {
	total   int
	pending int
	revenue float64
	popular []domain.PopularItem
}

func (f *fakeStatsRepo) CountOrders(_ context.Context) (int, error) { return f.total, nil }

func (f *fakeStatsRepo) CountOrdersByStatus(_ context.Context, status domain.Status) (int, error) {
	if status == domain.StatusPending {
		return f.pending, nil
	}
	return 0, nil
}

func (f *fakeStatsRepo) TotalRevenue(_ context.Context) (float64, error) { return f.revenue, nil }

func (f *fakeStatsRepo) PopularItems(_ context.Context, limit int) ([]domain.PopularItem, error) {
	if len(f.popular) > limit {
		return f.popular[:limit], nil
	}
	return f.popular, nil
}

func TestSummary(t *testing.T) {
	repo := &fakeStatsRepo{
		total:   12,
		pending: 3,
		revenue: 482.70,
		popular: []domain.PopularItem{
			{Name: "Coffee", TotalOrdered: 40},
			{Name: "Tiramisu", TotalOrdered: 11},
		},
	}
	svc := NewService(repo, logger.New("test"))

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, summary.TotalOrders)
	assert.Equal(t, 3, summary.PendingOrders)
	assert.InDelta(t, 482.70, summary.TotalRevenue, 1e-9)
	require.Len(t, summary.PopularItems, 2)
	assert.Equal(t, "Coffee", summary.PopularItems[0].Name)
}

func TestSummary_Empty(t *testing.T) {
	svc := NewService(&fakeStatsRepo{}, logger.New("test"))

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalOrders)
	assert.Zero(t, summary.PendingOrders)
	assert.Zero(t, summary.TotalRevenue)
	assert.NotNil(t, summary.PopularItems)
	assert.Empty(t, summary.PopularItems)
}
