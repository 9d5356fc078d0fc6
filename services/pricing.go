package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"dashfood-telegram/models"
)

// Process-wide pricing constants (fixed inputs, not runtime-configurable).
var (
	deliveryFee = decimal.RequireFromString("2.50")
	taxRate     = decimal.RequireFromString("0.08")
)

// Totals is the derived monetary summary of a cart. Values are kept
// unrounded; round only at display time.
type Totals struct {
	Subtotal       decimal.Decimal
	DeliveryFee    decimal.Decimal
	Taxes          decimal.Decimal
	OrderTotal     decimal.Decimal
	BalanceApplied decimal.Decimal
	FinalTotal     decimal.Decimal
}

// ParsePrice extracts the numeric amount from a display price like "$9.99".
// Everything except digits and the decimal point is stripped; empty or
// unparseable input yields zero.
func ParsePrice(display string) decimal.Decimal {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ComputeTotals derives the monetary summary for the given line items.
// Pure: nothing is mutated. Pickup orders never carry a delivery fee, and
// the applied balance can exceed neither the available balance nor the
// order total, no matter what was requested.
func ComputeTotals(items []models.LineItem, mode string, balance, requestedBalance decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	fee := decimal.Zero
	if len(items) > 0 && mode == models.ModeDelivery {
		fee = deliveryFee
	}
	taxes := subtotal.Mul(taxRate)
	orderTotal := subtotal.Add(fee).Add(taxes)

	applied := requestedBalance
	if limit := decimal.Min(balance, orderTotal); applied.GreaterThan(limit) {
		applied = limit
	}
	if applied.IsNegative() {
		applied = decimal.Zero
	}

	return Totals{
		Subtotal:       subtotal,
		DeliveryFee:    fee,
		Taxes:          taxes,
		OrderTotal:     orderTotal,
		BalanceApplied: applied,
		FinalTotal:     orderTotal.Sub(applied),
	}
}

// FormatMoney renders an amount for display, e.g. "$13.29".
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
