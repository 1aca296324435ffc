package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bistro/internal/domain"
	"bistro/internal/interfaces"
)

type menuRepository struct {
	db DB
}

func NewMenuRepository(db DB) interfaces.MenuRepository {
	return &menuRepository{db: db}
}

const menuColumns = "id, name, description, price, category, available, image_url, created_at"

func (r *menuRepository) ListAll(ctx context.Context) ([]domain.MenuItem, error) {
	query := fmt.Sprintf("SELECT %s FROM menu_items ORDER BY id", menuColumns)
	return r.list(ctx, query)
}

func (r *menuRepository) ListAvailable(ctx context.Context) ([]domain.MenuItem, error) {
	query := fmt.Sprintf("SELECT %s FROM menu_items WHERE available ORDER BY id", menuColumns)
	return r.list(ctx, query)
}

func (r *menuRepository) list(ctx context.Context, query string) ([]domain.MenuItem, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price,
			&item.Category, &item.Available, &item.ImageURL, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read menu items: %w", err)
	}

	return items, nil
}

func (r *menuRepository) FindByID(ctx context.Context, id int) (*domain.MenuItem, error) {
	query := fmt.Sprintf("SELECT %s FROM menu_items WHERE id = $1", menuColumns)

	var item domain.MenuItem
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Description,
		&item.Price, &item.Category, &item.Available, &item.ImageURL, &item.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find menu item: %w", err)
	}

	return &item, nil
}

func (r *menuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, description, price, category, available, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, item.Name, item.Description, item.Price,
		item.Category, item.Available, item.ImageURL).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

func (r *menuRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category = $4, available = $5, image_url = $6
		WHERE id = $7
	`
	tag, err := r.db.Exec(ctx, query, item.Name, item.Description, item.Price,
		item.Category, item.Available, item.ImageURL, item.ID)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *menuRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
