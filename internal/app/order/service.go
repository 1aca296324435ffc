package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bistro/internal/adapter/logger"
	"bistro/internal/domain"
	"bistro/internal/interfaces"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

type Service struct {
	orders interfaces.OrderRepository
	menu   interfaces.MenuRepository
	lgr    logger.Logger
}

func NewService(orders interfaces.OrderRepository, menu interfaces.MenuRepository, lgr logger.Logger) *Service {
	return &Service{orders: orders, menu: menu, lgr: lgr}
}

// Submit validates a cart against the live catalog, prices it server-side
// and persists the whole aggregate atomically. Client-supplied prices are
// never trusted; each line captures the current catalog price as a snapshot.
func (s *Service) Submit(ctx context.Context, cmd interfaces.SubmitOrderCommand) (*domain.Order, error) {
	if len(cmd.Items) == 0 {
		return nil, domain.ValidationError{Field: "items", Message: "order must contain at least one item"}
	}

	items := make([]domain.OrderItem, 0, len(cmd.Items))
	for _, line := range cmd.Items {
		if line.Quantity < 1 {
			return nil, domain.ValidationError{
				Field:   "items",
				Message: fmt.Sprintf("quantity for item %d must be at least 1", line.MenuItemID),
			}
		}

		menuItem, err := s.menu.FindByID(ctx, line.MenuItemID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("look up menu item %d: %w", line.MenuItemID, err)
		}
		if err != nil || !menuItem.Available {
			// Missing and unavailable look the same to the customer: the
			// item cannot be ordered right now.
			return nil, domain.ValidationError{
				Field:   "items",
				Message: fmt.Sprintf("item %d is not available", line.MenuItemID),
			}
		}

		id := menuItem.ID
		items = append(items, domain.OrderItem{
			MenuItemID: &id,
			Name:       menuItem.Name,
			Quantity:   line.Quantity,
			Price:      menuItem.Price,
		})
	}

	subtotal, tax, total := domain.ComputeTotals(items)

	customerName := strings.TrimSpace(cmd.CustomerName)
	if customerName == "" {
		customerName = domain.DefaultCustomerName
	}

	now := time.Now().UTC()
	order := &domain.Order{
		CustomerName:  customerName,
		CustomerEmail: optional(cmd.CustomerEmail),
		CustomerPhone: optional(cmd.CustomerPhone),
		Notes:         cmd.Notes,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		Status:        domain.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
		Items:         items,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.lgr.Info("order_submitted", fmt.Sprintf("Order %d submitted", order.ID), "", map[string]interface{}{
		"order_id": order.ID,
		"total":    order.Total,
		"items":    len(order.Items),
	})
	return order, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// List returns orders newest-first, paginated and optionally filtered to a
// single status value. A page past the end yields an empty list, not an
// error; an unrecognized status filter simply matches nothing.
func (s *Service) List(ctx context.Context, query interfaces.ListOrdersQuery) (*interfaces.OrderPage, error) {
	page := query.Page
	if page < 1 {
		page = defaultPage
	}
	perPage := query.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}

	var status *domain.Status
	if query.Status != "" {
		st, err := domain.ParseStatus(query.Status)
		if err != nil {
			return &interfaces.OrderPage{Orders: []*domain.Order{}, CurrentPage: page}, nil
		}
		status = &st
	}

	total, err := s.orders.Count(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	orders, err := s.orders.List(ctx, (page-1)*perPage, perPage, status)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if orders == nil {
		orders = []*domain.Order{}
	}

	return &interfaces.OrderPage{
		Orders:      orders,
		Total:       total,
		Pages:       (total + perPage - 1) / perPage,
		CurrentPage: page,
	}, nil
}

// SetStatus moves an order to any of the six recognized statuses. There is
// no transition graph on purpose; see domain.Status.
func (s *Service) SetStatus(ctx context.Context, id int, status string) (*domain.Order, error) {
	st, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.orders.UpdateStatus(ctx, id, st, now); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	order.Status = st
	order.UpdatedAt = now

	s.lgr.Info("order_status_changed", fmt.Sprintf("Order %d is now %s", id, st), "", map[string]interface{}{
		"order_id": id,
		"status":   string(st),
	})
	return order, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
