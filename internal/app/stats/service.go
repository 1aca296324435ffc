package stats

import (
	"context"
	"fmt"

	"bistro/internal/adapter/logger"
	"bistro/internal/domain"
	"bistro/internal/interfaces"
)

// popularLimit caps the popular-items ranking.
const popularLimit = 5

type Service struct {
	stats interfaces.StatsRepository
	lgr   logger.Logger
}

func NewService(stats interfaces.StatsRepository, lgr logger.Logger) *Service {
	return &Service{stats: stats, lgr: lgr}
}

// Summary recomputes the sales statistics from scratch on every call.
func (s *Service) Summary(ctx context.Context) (*interfaces.StatsSummary, error) {
	totalOrders, err := s.stats.CountOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	pendingOrders, err := s.stats.CountOrdersByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending orders: %w", err)
	}

	revenue, err := s.stats.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}

	popular, err := s.stats.PopularItems(ctx, popularLimit)
	if err != nil {
		return nil, fmt.Errorf("popular items: %w", err)
	}
	if popular == nil {
		popular = []domain.PopularItem{}
	}

	return &interfaces.StatsSummary{
		TotalOrders:   totalOrders,
		PendingOrders: pendingOrders,
		TotalRevenue:  revenue,
		PopularItems:  popular,
	}, nil
}
