package http

import (
	"strconv"
	"strings"
	"time"

	"bistro/internal/domain"
)

// Money accepts a price as either a JSON number or a numeric string, so
// admin clients that send "12.99" keep working.
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return domain.ValidationError{Field: "price", Message: "price must be a number"}
	}
	*m = Money(v)
	return nil
}

type menuItemResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
	ImageURL    *string `json:"image_url"`
}

func toMenuItemResponse(item domain.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Available:   item.Available,
		ImageURL:    item.ImageURL,
	}
}

type orderItemResponse struct {
	ID         int     `json:"id"`
	MenuItemID *int    `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	Total      float64 `json:"total"`
}

type orderResponse struct {
	ID            int                 `json:"id"`
	CustomerName  string              `json:"customer_name"`
	CustomerEmail *string             `json:"customer_email"`
	CustomerPhone *string             `json:"customer_phone"`
	Notes         string              `json:"notes"`
	Subtotal      float64             `json:"subtotal"`
	Tax           float64             `json:"tax"`
	Total         float64             `json:"total"`
	Status        string              `json:"status"`
	CreatedAt     string              `json:"created_at"`
	UpdatedAt     string              `json:"updated_at"`
	Items         []orderItemResponse `json:"items"`
}

func toOrderResponse(order *domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, orderItemResponse{
			ID:         it.ID,
			MenuItemID: it.MenuItemID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Price:      it.Price,
			Total:      it.LineTotal(),
		})
	}

	return orderResponse{
		ID:            order.ID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Notes:         order.Notes,
		Subtotal:      order.Subtotal,
		Tax:           order.Tax,
		Total:         order.Total,
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     order.UpdatedAt.Format(time.RFC3339),
		Items:         items,
	}
}

type popularItemResponse struct {
	Name         string `json:"name"`
	TotalOrdered int    `json:"total_ordered"`
}

func toPopularItems(items []domain.PopularItem) []popularItemResponse {
	out := make([]popularItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, popularItemResponse{Name: it.Name, TotalOrdered: it.TotalOrdered})
	}
	return out
}

func toOrderResponses(orders []*domain.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}
