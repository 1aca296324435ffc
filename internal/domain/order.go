package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxRate is the fixed sales tax applied to every order.
const TaxRate = 0.08

// DefaultCustomerName is used when a customer submits without a name.
const DefaultCustomerName = "Guest"

// Order is an order header together with its line items. The aggregate is
// created atomically and the line items never change afterwards.
type Order struct {
	ID            int
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	Notes         string
	Subtotal      float64
	Tax           float64
	Total         float64
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []OrderItem
}

// OrderItem is one line of an order. Price is the unit price captured at
// submission time and stays fixed even if the catalog price changes later.
// MenuItemID becomes nil when the referenced menu item is hard-deleted.
type OrderItem struct {
	ID         int
	OrderID    int
	MenuItemID *int
	Name       string
	Quantity   int
	Price      float64
}

// LineTotal is the derived quantity × snapshot price value.
func (i OrderItem) LineTotal() float64 {
	return decimal.NewFromFloat(i.Price).
		Mul(decimal.NewFromInt(int64(i.Quantity))).
		InexactFloat64()
}

var taxRate = decimal.New(8, -2)

// ComputeTotals sums the line items and applies the fixed tax rate.
// Subtotal, tax and total are each rounded to 2 decimal places
// independently, matching what gets persisted.
func ComputeTotals(items []OrderItem) (subtotal, tax, total float64) {
	sum := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum = sum.Add(line)
	}

	subtotal = sum.Round(2).InexactFloat64()
	tax = sum.Mul(taxRate).Round(2).InexactFloat64()
	total = sum.Add(sum.Mul(taxRate)).Round(2).InexactFloat64()
	return subtotal, tax, total
}
