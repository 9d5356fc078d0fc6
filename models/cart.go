package models

import "github.com/shopspring/decimal"

// LineItem is one distinct menu item and its quantity in the active cart.
// Quantity is at least 1 while the item exists; dropping to zero removes
// the line instead.
type LineItem struct {
	ID           string
	Name         string
	PriceDisplay string          // as printed on the menu, e.g. "$9.99"
	UnitPrice    decimal.Decimal // parsed from PriceDisplay
	Quantity     int
	StoreName    string
}
