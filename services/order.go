package services

import (
	"strconv"
	"time"

	"dashfood-telegram/models"
)

// All operations run on the single update loop, so a plain package var is
// enough to keep ids unique within the process.
var lastOrderStamp int64

// newOrderID returns an id like "DD1743724800000". Two checkouts landing
// in the same millisecond still get distinct ids.
func newOrderID() string {
	now := time.Now().UnixMilli()
	if now <= lastOrderStamp {
		now = lastOrderStamp + 1
	}
	lastOrderStamp = now
	return "DD" + strconv.FormatInt(now, 10)
}

// PlaceOrder captures an immutable snapshot of the cart and clears it.
// The snapshot is the only artifact that survives the clear. An empty
// cart is a no-op and returns nil.
func PlaceOrder(cart *Cart, totals Totals, storeName, mode string) *models.OrderSnapshot {
	if cart.Len() == 0 {
		return nil
	}
	snap := &models.OrderSnapshot{
		Items:          cart.Items(),
		Subtotal:       totals.Subtotal,
		DeliveryFee:    totals.DeliveryFee,
		Taxes:          totals.Taxes,
		BalanceApplied: totals.BalanceApplied,
		FinalTotal:     totals.FinalTotal,
		StoreName:      storeName,
		OrderID:        newOrderID(),
		OrderDate:      time.Now().Format("Jan 2, 2006"),
		Mode:           mode,
	}
	cart.Clear()
	return snap
}
