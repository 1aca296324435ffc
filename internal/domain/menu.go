package domain

import "time"

// MenuItem is a catalog entry customers can order from.
type MenuItem struct {
	ID          int
	Name        string
	Description string
	Price       float64
	Category    string
	Available   bool
	ImageURL    *string
	CreatedAt   time.Time
}

// Validate applies the catalog business rules.
func (m *MenuItem) Validate() error {
	if m.Name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(m.Name) > 100 {
		return ValidationError{Field: "name", Message: "name must not exceed 100 characters"}
	}
	if m.Category == "" {
		return ValidationError{Field: "category", Message: "category is required"}
	}
	if len(m.Category) > 50 {
		return ValidationError{Field: "category", Message: "category must not exceed 50 characters"}
	}
	if m.Price < 0 {
		return ValidationError{Field: "price", Message: "price must not be negative"}
	}
	return nil
}

// PopularItem is a row of the popular-items ranking: a menu item name
// with the cumulative quantity ordered across all historical orders.
type PopularItem struct {
	Name         string
	TotalOrdered int
}
