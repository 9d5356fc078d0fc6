package models

import "net/url"

// StoreRef is the handle the store screen receives: just the shop name,
// possibly URI-encoded because it doubles as a routing token.
type StoreRef struct {
	ShopName string
}

// DisplayName decodes the shop name for rendering and menu lookups.
func (s StoreRef) DisplayName() string {
	if dec, err := url.PathUnescape(s.ShopName); err == nil {
		return dec
	}
	return s.ShopName
}

type Store struct {
	Name      string
	Cuisine   string
	PriceBand string // "$", "$$", "$$$"
	Distance  string
}

type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       string // display price, e.g. "$9.99"
	StoreName   string
}
