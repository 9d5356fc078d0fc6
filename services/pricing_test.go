package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"dashfood-telegram/models"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$9.99", "9.99"},
		{"$3.49", "3.49"},
		{"9.99", "9.99"},
		{"USD 12.30", "12.30"},
		{"$1,234.56", "1234.56"},
		{"", "0"},
		{"free", "0"},
		{"$", "0"},
	}
	for _, tt := range tests {
		got := ParsePrice(tt.in)
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("ParsePrice(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func lineItem(id, price string, qty int) models.LineItem {
	return models.LineItem{
		ID:           id,
		Name:         id,
		PriceDisplay: price,
		UnitPrice:    ParsePrice(price),
		Quantity:     qty,
		StoreName:    "Burger Barn",
	}
}

func TestComputeTotalsDeliveryScenario(t *testing.T) {
	items := []models.LineItem{lineItem("m1", "$9.99", 1)}
	balance := decimal.RequireFromString("24.50")
	requested := decimal.NewFromInt(100) // way over both caps

	got := ComputeTotals(items, models.ModeDelivery, balance, requested)

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"subtotal", got.Subtotal, "9.99"},
		{"delivery fee", got.DeliveryFee, "2.50"},
		{"taxes", got.Taxes, "0.80"},
		{"order total", got.OrderTotal, "13.29"},
		{"balance applied", got.BalanceApplied, "13.29"},
		{"final total", got.FinalTotal, "0.00"},
	}
	for _, c := range checks {
		if c.got.StringFixed(2) != c.want {
			t.Errorf("%s = %s, want %s", c.name, c.got.StringFixed(2), c.want)
		}
	}
}

func TestComputeTotalsPickupHasNoDeliveryFee(t *testing.T) {
	items := []models.LineItem{lineItem("m1", "$9.99", 2)}
	got := ComputeTotals(items, models.ModePickup, decimal.Zero, decimal.Zero)
	if !got.DeliveryFee.IsZero() {
		t.Errorf("pickup delivery fee = %s, want 0", got.DeliveryFee)
	}
	if got.OrderTotal.StringFixed(2) != "21.58" { // 19.98 + 8% tax
		t.Errorf("pickup order total = %s, want 21.58", got.OrderTotal.StringFixed(2))
	}
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	got := ComputeTotals(nil, models.ModeDelivery, decimal.NewFromInt(50), decimal.NewFromInt(50))
	if !got.Subtotal.IsZero() || !got.DeliveryFee.IsZero() || !got.Taxes.IsZero() || !got.OrderTotal.IsZero() {
		t.Errorf("empty cart totals = %+v, want all zero", got)
	}
	if !got.BalanceApplied.IsZero() || !got.FinalTotal.IsZero() {
		t.Errorf("empty cart redemption = %s applied, %s final, want 0/0", got.BalanceApplied, got.FinalTotal)
	}
}

func TestComputeTotalsBalanceClamp(t *testing.T) {
	items := []models.LineItem{lineItem("m1", "$10.00", 1)} // order total 13.30 on delivery
	tests := []struct {
		name      string
		balance   string
		requested string
		want      string
	}{
		{"negative request clamps to zero", "24.50", "-5", "0.00"},
		{"request within both caps", "24.50", "5", "5.00"},
		{"request over balance", "5.00", "100", "5.00"},
		{"request over order total", "24.50", "100", "13.30"},
		{"zero request", "24.50", "0", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(items, models.ModeDelivery,
				decimal.RequireFromString(tt.balance), decimal.RequireFromString(tt.requested))
			if got.BalanceApplied.StringFixed(2) != tt.want {
				t.Errorf("balance applied = %s, want %s", got.BalanceApplied.StringFixed(2), tt.want)
			}
			if got.BalanceApplied.IsNegative() {
				t.Error("balance applied must never be negative")
			}
			if got.BalanceApplied.GreaterThan(got.OrderTotal) {
				t.Error("balance applied must never exceed order total")
			}
		})
	}
}

func TestComputeTotalsIsPure(t *testing.T) {
	items := []models.LineItem{lineItem("m1", "$9.99", 1), lineItem("m2", "$3.49", 2)}
	balance := decimal.RequireFromString("24.50")
	requested := decimal.NewFromInt(10)

	first := ComputeTotals(items, models.ModeDelivery, balance, requested)
	second := ComputeTotals(items, models.ModeDelivery, balance, requested)

	if first.FinalTotal.Cmp(second.FinalTotal) != 0 || first.Subtotal.Cmp(second.Subtotal) != 0 {
		t.Errorf("repeated call differs: %+v vs %+v", first, second)
	}
	if items[0].Quantity != 1 || items[1].Quantity != 2 {
		t.Error("ComputeTotals mutated its input items")
	}
}
