package services

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"dashfood-telegram/models"
)

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func menuItem(id, name, price, store string) models.MenuItem {
	return models.MenuItem{ID: id, Name: name, Price: price, StoreName: store}
}

func TestCartAddItemAggregatesByID(t *testing.T) {
	c := NewCart(testLogger())
	c.AddItem(menuItem("m1", "Classic Burger", "$9.99", "Burger Barn"), 1)
	c.AddItem(menuItem("m2", "Crispy Fries", "$3.49", "Burger Barn"), 1)
	c.AddItem(menuItem("m1", "Classic Burger", "$9.99", "Burger Barn"), 2)

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].ID != "m1" || items[1].ID != "m2" {
		t.Errorf("insertion order = [%s %s], want [m1 m2]", items[0].ID, items[1].ID)
	}
	if items[0].Quantity != 3 {
		t.Errorf("m1 quantity = %d, want 3 (additive merge)", items[0].Quantity)
	}
	if items[0].UnitPrice.StringFixed(2) != "9.99" {
		t.Errorf("m1 unit price = %s, want 9.99", items[0].UnitPrice.StringFixed(2))
	}
	if c.ItemCount() != 4 {
		t.Errorf("ItemCount() = %d, want 4", c.ItemCount())
	}
}

func TestCartAddItemFromAnotherStoreReplacesCart(t *testing.T) {
	c := NewCart(testLogger())
	c.AddItem(menuItem("m1", "Classic Burger", "$9.99", "Burger Barn"), 2)
	c.AddItem(menuItem("m2", "Crispy Fries", "$3.49", "Burger Barn"), 1)
	c.AddItem(menuItem("s1", "California Roll", "$8.25", "Sushi Go"), 1)

	items := c.Items()
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1 (singleton after store switch)", len(items))
	}
	if items[0].ID != "s1" || items[0].Quantity != 1 {
		t.Errorf("surviving item = %s x%d, want s1 x1", items[0].ID, items[0].Quantity)
	}
	if c.StoreName() != "Sushi Go" {
		t.Errorf("StoreName() = %q, want %q", c.StoreName(), "Sushi Go")
	}
}

func TestCartAddItemWithoutStoreNameIsNoop(t *testing.T) {
	c := NewCart(testLogger())
	c.AddItem(menuItem("m1", "Classic Burger", "$9.99", ""), 1)
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0 (missing store name)", c.Len())
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		qty     int
		wantLen int
		wantQty int
	}{
		{"absolute set, not additive", "m1", 5, 1, 5},
		{"set to one", "m1", 1, 1, 1},
		{"zero removes", "m1", 0, 0, 0},
		{"negative removes", "m1", -3, 0, 0},
		{"unknown id is a no-op", "nope", 7, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCart(testLogger())
			c.AddItem(menuItem("m1", "Classic Burger", "$9.99", "Burger Barn"), 2)
			c.UpdateQuantity(tt.id, tt.qty)
			if c.Len() != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", c.Len(), tt.wantLen)
			}
			if tt.wantLen > 0 {
				if got := c.Items()[0].Quantity; got != tt.wantQty {
					t.Errorf("quantity = %d, want %d", got, tt.wantQty)
				}
			}
		})
	}
}

func TestCartRemoveItem(t *testing.T) {
	c := NewCart(testLogger())
	c.AddItem(menuItem("m1", "Classic Burger", "$9.99", "Burger Barn"), 1)
	c.AddItem(menuItem("m2", "Crispy Fries", "$3.49", "Burger Barn"), 1)

	c.RemoveItem("m1")
	if c.Len() != 1 || c.Items()[0].ID != "m2" {
		t.Errorf("after remove: %d items, first %q, want 1 item m2", c.Len(), c.Items()[0].ID)
	}
	c.RemoveItem("m1") // already gone
	if c.Len() != 1 {
		t.Errorf("removing absent id changed the cart: Len() = %d", c.Len())
	}
}

func TestCartClear(t *testing.T) {
	c := NewCart(testLogger())
	c.AddItem(menuItem("m1", "Classic Burger", "$9.99", "Burger Barn"), 3)
	c.Clear()
	if c.Len() != 0 || c.ItemCount() != 0 || c.StoreName() != "" {
		t.Errorf("after clear: Len=%d ItemCount=%d StoreName=%q, want empty", c.Len(), c.ItemCount(), c.StoreName())
	}
}

func TestCartItemsReturnsCopy(t *testing.T) {
	c := NewCart(testLogger())
	c.AddItem(menuItem("m1", "Classic Burger", "$9.99", "Burger Barn"), 1)
	items := c.Items()
	items[0].Quantity = 99
	if c.Items()[0].Quantity != 1 {
		t.Error("mutating the returned slice leaked into the cart")
	}
}
