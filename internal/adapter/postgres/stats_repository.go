package postgres

import (
	"context"
	"fmt"

	"bistro/internal/domain"
	"bistro/internal/interfaces"
)

type statsRepository struct {
	db DB
}

func NewStatsRepository(db DB) interfaces.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountOrders(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM orders").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

func (r *statsRepository) CountOrdersByStatus(ctx context.Context, status domain.Status) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE status = $1", status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders by status: %w", err)
	}
	return count, nil
}

func (r *statsRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.QueryRow(ctx, "SELECT COALESCE(SUM(total), 0) FROM orders").Scan(&revenue)
	if err != nil {
		return 0, fmt.Errorf("failed to sum revenue: %w", err)
	}
	return revenue, nil
}

// PopularItems ranks menu items by cumulative ordered quantity. Order items
// whose menu item was deleted drop out of the ranking; ties break on item id.
func (r *statsRepository) PopularItems(ctx context.Context, limit int) ([]domain.PopularItem, error) {
	query := `
		SELECT m.name, SUM(oi.quantity)::bigint AS total_ordered
		FROM order_items oi
		JOIN menu_items m ON m.id = oi.menu_item_id
		GROUP BY m.id, m.name
		ORDER BY total_ordered DESC, m.id
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular items: %w", err)
	}
	defer rows.Close()

	var items []domain.PopularItem
	for rows.Next() {
		var item domain.PopularItem
		if err := rows.Scan(&item.Name, &item.TotalOrdered); err != nil {
			return nil, fmt.Errorf("failed to scan popular item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read popular items: %w", err)
	}

	return items, nil
}
