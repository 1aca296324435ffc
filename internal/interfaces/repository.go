package interfaces

import (
	"context"
	"time"

	"bistro/internal/domain"
)

// Repository interfaces (adapter/postgres)

type MenuRepository interface {
	ListAll(ctx context.Context) ([]domain.MenuItem, error)
	ListAvailable(ctx context.Context) ([]domain.MenuItem, error)
	FindByID(ctx context.Context, id int) (*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) error
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, id int) error
}

type OrderRepository interface {
	// Create persists the order header and every line item in a single
	// transaction and fills in the assigned ids.
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context, offset, limit int, status *domain.Status) ([]*domain.Order, error)
	Count(ctx context.Context, status *domain.Status) (int, error)
	UpdateStatus(ctx context.Context, id int, status domain.Status, updatedAt time.Time) error
}

type StatsRepository interface {
	CountOrders(ctx context.Context) (int, error)
	CountOrdersByStatus(ctx context.Context, status domain.Status) (int, error)
	TotalRevenue(ctx context.Context) (float64, error)
	PopularItems(ctx context.Context, limit int) ([]domain.PopularItem, error)
}
