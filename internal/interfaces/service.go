package interfaces

import (
	"context"

	"bistro/internal/domain"
)

// Service interfaces (business logic)

type CatalogService interface {
	// Menu returns available items grouped by category (customer view).
	Menu(ctx context.Context) (map[string][]domain.MenuItem, error)
	MenuItem(ctx context.Context, id int) (*domain.MenuItem, error)
	// ListAll returns every item including unavailable ones (admin view).
	ListAll(ctx context.Context) ([]domain.MenuItem, error)
	Create(ctx context.Context, cmd CreateMenuItemCommand) (*domain.MenuItem, error)
	Update(ctx context.Context, id int, cmd UpdateMenuItemCommand) (*domain.MenuItem, error)
	Delete(ctx context.Context, id int) error
}

type OrderService interface {
	Submit(ctx context.Context, cmd SubmitOrderCommand) (*domain.Order, error)
	Get(ctx context.Context, id int) (*domain.Order, error)
	List(ctx context.Context, query ListOrdersQuery) (*OrderPage, error)
	SetStatus(ctx context.Context, id int, status string) (*domain.Order, error)
}

type StatsService interface {
	Summary(ctx context.Context) (*StatsSummary, error)
}

// CreateMenuItemCommand carries a new catalog entry. Price is a pointer so
// an absent price can be told apart from a zero one.
type CreateMenuItemCommand struct {
	Name        string
	Description string
	Price       *float64
	Category    string
	Available   *bool
	ImageURL    *string
}

// UpdateMenuItemCommand carries a partial update: nil fields are left
// untouched.
type UpdateMenuItemCommand struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Available   *bool
	ImageURL    *string
}

type SubmitOrderCommand struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
	Items         []SubmitOrderItem
}

type SubmitOrderItem struct {
	MenuItemID int
	Quantity   int
}

type ListOrdersQuery struct {
	Page    int
	PerPage int
	Status  string
}

type OrderPage struct {
	Orders      []*domain.Order
	Total       int
	Pages       int
	CurrentPage int
}

type StatsSummary struct {
	TotalOrders   int
	PendingOrders int
	TotalRevenue  float64
	PopularItems  []domain.PopularItem
}
