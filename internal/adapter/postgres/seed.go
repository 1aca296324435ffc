package postgres

import (
	"context"
	"fmt"

	"bistro/internal/adapter/logger"
	"bistro/internal/domain"
)

var defaultMenu = []domain.MenuItem{
	{Name: "Coffee", Description: "Fresh brewed coffee", Price: 3.50, Category: "beverages"},
	{Name: "Tea", Description: "Herbal tea selection", Price: 2.50, Category: "beverages"},
	{Name: "Soda", Description: "Assorted soft drinks", Price: 2.00, Category: "beverages"},
	{Name: "Fresh Juice", Description: "Orange, apple, or grape", Price: 4.00, Category: "beverages"},
	{Name: "Margherita Pizza", Description: "Classic tomato and mozzarella", Price: 12.99, Category: "main_course"},
	{Name: "Pepperoni Pizza", Description: "Pepperoni with mozzarella cheese", Price: 15.99, Category: "main_course"},
	{Name: "Pasta Carbonara", Description: "Creamy pasta with bacon", Price: 13.50, Category: "main_course"},
	{Name: "Grilled Chicken", Description: "Herb-seasoned grilled chicken", Price: 16.99, Category: "main_course"},
	{Name: "Caesar Salad", Description: "Fresh romaine with caesar dressing", Price: 9.99, Category: "main_course"},
	{Name: "Chocolate Cake", Description: "Rich chocolate layer cake", Price: 6.99, Category: "desserts"},
	{Name: "Tiramisu", Description: "Classic Italian dessert", Price: 7.50, Category: "desserts"},
	{Name: "Ice Cream", Description: "Vanilla, chocolate, or strawberry", Price: 4.99, Category: "desserts"},
	{Name: "Cheesecake", Description: "New York style cheesecake", Price: 6.50, Category: "desserts"},
}

// Seed inserts the default catalog on first run. It is a no-op whenever
// menu_items already has rows, so restarting the service never duplicates it.
func Seed(ctx context.Context, db DB, log logger.Logger) error {
	var count int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM menu_items").Scan(&count); err != nil {
		return fmt.Errorf("failed to count menu items: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO menu_items (name, description, price, category, available)
		VALUES ($1, $2, $3, $4, TRUE)
	`
	for _, item := range defaultMenu {
		if _, err := tx.Exec(ctx, query, item.Name, item.Description, item.Price, item.Category); err != nil {
			return fmt.Errorf("failed to seed menu item %q: %w", item.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	log.Info("menu_seeded", "Seeded default menu catalog", "startup", map[string]interface{}{
		"items": len(defaultMenu),
	})
	return nil
}
