package services

import "testing"

func TestMenuForTagsEveryItemWithStore(t *testing.T) {
	items := MenuFor("Panda Express")
	if len(items) == 0 {
		t.Fatal("MenuFor returned no items")
	}
	for _, it := range items {
		if it.StoreName != "Panda Express" {
			t.Errorf("item %s store = %q, want Panda Express", it.ID, it.StoreName)
		}
		if ParsePrice(it.Price).IsZero() {
			t.Errorf("item %s price %q parses to zero", it.ID, it.Price)
		}
	}
}

func TestMenuItemByID(t *testing.T) {
	it, ok := MenuItemByID("Taco Town", "m1")
	if !ok || it.Name != "Classic Burger" || it.StoreName != "Taco Town" {
		t.Errorf("MenuItemByID = (%+v, %v)", it, ok)
	}
	if _, ok := MenuItemByID("Taco Town", "nope"); ok {
		t.Error("unknown item id should not resolve")
	}
}

func TestPastOrderByID(t *testing.T) {
	o, ok := PastOrderByID("ord1")
	if !ok || o.Store != "Taco Town" || len(o.Items) != 3 {
		t.Errorf("PastOrderByID(ord1) = (%+v, %v)", o, ok)
	}
	if _, ok := PastOrderByID("ord999"); ok {
		t.Error("unknown order id should not resolve")
	}
}
