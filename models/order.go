package models

import "github.com/shopspring/decimal"

const (
	ModeDelivery = "delivery"
	ModePickup   = "pickup"
)

// OrderSnapshot is the immutable record captured when an order is placed.
// Items is a copy of the cart at that instant; later cart activity never
// touches it.
type OrderSnapshot struct {
	Items          []LineItem
	Subtotal       decimal.Decimal
	DeliveryFee    decimal.Decimal
	Taxes          decimal.Decimal
	BalanceApplied decimal.Decimal
	FinalTotal     decimal.Decimal
	StoreName      string
	OrderID        string
	OrderDate      string
	Mode           string
}

// HistoricalOrder is a past order as shown on the history screen and the
// receipt screen. Static mock data; there is no order store behind it.
type HistoricalOrder struct {
	ID          string
	Store       string
	Date        string
	Total       decimal.Decimal
	Items       []HistoricalItem
	Subtotal    decimal.Decimal
	Taxes       decimal.Decimal
	DeliveryFee decimal.Decimal
}

type HistoricalItem struct {
	ID       string
	Name     string
	Quantity int
	Price    decimal.Decimal
}
