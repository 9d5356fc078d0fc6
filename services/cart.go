package services

import (
	"github.com/sirupsen/logrus"

	"dashfood-telegram/models"
)

// Cart holds the single order-in-progress. A non-empty cart only ever
// contains items from one store; adding from another store replaces the
// whole cart with the new item.
type Cart struct {
	items []models.LineItem
	log   logrus.FieldLogger
}

func NewCart(log logrus.FieldLogger) *Cart {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Cart{log: log}
}

// AddItem puts quantity units of the menu item into the cart. A duplicate
// id merges additively into the existing line. An item without a store
// name only arises from a programming mistake upstream, so it is logged
// and ignored rather than surfaced.
func (c *Cart) AddItem(item models.MenuItem, quantity int) {
	if item.StoreName == "" {
		c.log.WithField("item_id", item.ID).Warn("cart: item without store name, ignoring")
		return
	}
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	line := models.LineItem{
		ID:           item.ID,
		Name:         item.Name,
		PriceDisplay: item.Price,
		UnitPrice:    ParsePrice(item.Price),
		Quantity:     quantity,
		StoreName:    item.StoreName,
	}
	if len(c.items) > 0 && c.items[0].StoreName != item.StoreName {
		c.log.WithFields(logrus.Fields{
			"from": c.items[0].StoreName,
			"to":   item.StoreName,
		}).Warn("cart: item from another store, replacing cart")
		c.items = []models.LineItem{line}
		return
	}
	c.items = append(c.items, line)
}

// UpdateQuantity sets the line's quantity to exactly quantity. Zero or
// less removes the line. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem drops the matching line; no-op when absent.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []models.LineItem {
	out := make([]models.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

// ItemCount is the total unit count across all lines (the cart badge).
func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// StoreName is the store the cart belongs to; empty for an empty cart.
func (c *Cart) StoreName() string {
	if len(c.items) == 0 {
		return ""
	}
	return c.items[0].StoreName
}
