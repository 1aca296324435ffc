package catalog

import (
	"context"
	"fmt"

	"bistro/internal/adapter/logger"
	"bistro/internal/domain"
	"bistro/internal/interfaces"
)

type Service struct {
	menu interfaces.MenuRepository
	lgr  logger.Logger
}

func NewService(menu interfaces.MenuRepository, lgr logger.Logger) *Service {
	return &Service{menu: menu, lgr: lgr}
}

// Menu returns the customer-facing catalog: available items only, grouped
// by category in storage order.
func (s *Service) Menu(ctx context.Context) (map[string][]domain.MenuItem, error) {
	items, err := s.menu.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available menu items: %w", err)
	}

	grouped := make(map[string][]domain.MenuItem)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return grouped, nil
}

func (s *Service) MenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	return s.menu.FindByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]domain.MenuItem, error) {
	return s.menu.ListAll(ctx)
}

func (s *Service) Create(ctx context.Context, cmd interfaces.CreateMenuItemCommand) (*domain.MenuItem, error) {
	if cmd.Price == nil {
		return nil, domain.ValidationError{Field: "price", Message: "price is required"}
	}

	item := &domain.MenuItem{
		Name:        cmd.Name,
		Description: cmd.Description,
		Price:       *cmd.Price,
		Category:    cmd.Category,
		Available:   true,
		ImageURL:    cmd.ImageURL,
	}
	if cmd.Available != nil {
		item.Available = *cmd.Available
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.menu.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}

	s.lgr.Info("menu_item_created", fmt.Sprintf("Created menu item %q", item.Name), "", map[string]interface{}{
		"item_id":  item.ID,
		"category": item.Category,
	})
	return item, nil
}

// Update applies a partial update: only fields present in the command are
// touched, everything else keeps its stored value.
func (s *Service) Update(ctx context.Context, id int, cmd interfaces.UpdateMenuItemCommand) (*domain.MenuItem, error) {
	item, err := s.menu.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		item.Name = *cmd.Name
	}
	if cmd.Description != nil {
		item.Description = *cmd.Description
	}
	if cmd.Price != nil {
		item.Price = *cmd.Price
	}
	if cmd.Category != nil {
		item.Category = *cmd.Category
	}
	if cmd.Available != nil {
		item.Available = *cmd.Available
	}
	if cmd.ImageURL != nil {
		item.ImageURL = cmd.ImageURL
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.menu.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update menu item: %w", err)
	}

	return item, nil
}

// Delete performs an unconditional hard delete. Historical order items keep
// their price snapshot; their menu item reference is nulled by the schema.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.menu.Delete(ctx, id); err != nil {
		return err
	}
	s.lgr.Info("menu_item_deleted", fmt.Sprintf("Deleted menu item %d", id), "", nil)
	return nil
}
