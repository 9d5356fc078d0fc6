package services

import (
	"github.com/shopspring/decimal"

	"dashfood-telegram/models"
)

// Static mock catalog. There is no backing service: every lookup is fixed
// data that resets with the process.

var orderCategories = []string{
	"Alcohol", "Convenience", "Grocery", "Flower", "Bakery",
	"Pharmacy", "Pet Supplies", "Snacks", "Ice Cream", "Water",
}

var cuisineCategories = []string{
	"Sushi", "Pizza", "Thai", "Ramen", "Chinese", "Bubble Tea",
	"Mexican", "Indian", "Korean", "Burgers", "BBQ", "Salads",
}

var promotionalAds = []string{
	"Enjoy 20% Off Your First Three Orders!",
	"Free Delivery for Orders Over $25 This Week!",
	"Get $10 Credit for Referring a Friend!",
	"Limited Time: BOGO on Select Restaurants!",
	"Order Now and Win a $100 Gift Card!",
}

var popularStores = []models.Store{
	{Name: "Panda Express", Cuisine: "Chinese", PriceBand: "$$", Distance: "1.2 mi"},
	{Name: "Starbucks", Cuisine: "Coffee", PriceBand: "$", Distance: "0.5 mi"},
	{Name: "Domino's Pizza", Cuisine: "Pizza", PriceBand: "$$", Distance: "1.8 mi"},
	{Name: "Subway", Cuisine: "Sandwiches", PriceBand: "$", Distance: "1.0 mi"},
}

var guessYouLike = []models.Store{
	{Name: "Grill House", Cuisine: "BBQ", PriceBand: "$$$", Distance: "2.3 mi"},
	{Name: "Curry Express", Cuisine: "Indian", PriceBand: "$$", Distance: "1.6 mi"},
	{Name: "Smoothie Stop", Cuisine: "Juice Bar", PriceBand: "$", Distance: "0.9 mi"},
	{Name: "Noodle Bowl", Cuisine: "Asian Fusion", PriceBand: "$$", Distance: "1.4 mi"},
}

var favoriteStores = []models.Store{
	{Name: "Pasta Prime", Cuisine: "Italian", PriceBand: "$$$", Distance: "2.0 mi"},
	{Name: "Café Bloom", Cuisine: "Coffee", PriceBand: "$$", Distance: "1.3 mi"},
	{Name: "Fiesta Grill", Cuisine: "Mexican", PriceBand: "$$", Distance: "1.5 mi"},
}

func OrderCategories() []string   { return orderCategories }
func CuisineCategories() []string { return cuisineCategories }
func PromotionalAds() []string    { return promotionalAds }

func PopularStores() []models.Store {
	return append([]models.Store(nil), popularStores...)
}

func GuessYouLike() []models.Store {
	return append([]models.Store(nil), guessYouLike...)
}

func FavoriteStores() []models.Store {
	return append([]models.Store(nil), favoriteStores...)
}

// MenuFor returns the menu for a store. Every store serves the same five
// mock items, tagged with the store's name so cart items stay traceable
// to their store.
func MenuFor(storeName string) []models.MenuItem {
	return []models.MenuItem{
		{ID: "m1", Name: "Classic Burger", Description: "Beef patty, lettuce, tomato, cheese", Price: "$9.99", StoreName: storeName},
		{ID: "m2", Name: "Crispy Fries", Description: "Golden fried potato sticks", Price: "$3.49", StoreName: storeName},
		{ID: "m3", Name: "House Salad", Description: "Mixed greens, vinaigrette", Price: "$5.95", StoreName: storeName},
		{ID: "m4", Name: "Iced Lemon Tea", Description: "Chilled black tea with lemon", Price: "$2.99", StoreName: storeName},
		{ID: "m5", Name: "Chocolate Cake", Description: "Rich moist chocolate dessert", Price: "$4.50", StoreName: storeName},
	}
}

// MenuItemByID looks an item up on a store's menu.
func MenuItemByID(storeName, itemID string) (models.MenuItem, bool) {
	for _, it := range MenuFor(storeName) {
		if it.ID == itemID {
			return it, true
		}
	}
	return models.MenuItem{}, false
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var pastOrders = []models.HistoricalOrder{
	{
		ID:    "ord1",
		Store: "Taco Town",
		Date:  "Apr 3, 2025",
		Total: money("14.99"),
		Items: []models.HistoricalItem{
			{ID: "taco", Name: "Taco", Quantity: 2, Price: money("3.50")},
			{ID: "burrito", Name: "Burrito", Quantity: 1, Price: money("6.99")},
			{ID: "soda", Name: "Soda", Quantity: 1, Price: money("1.00")},
		},
		Subtotal:    money("13.99"),
		Taxes:       money("1.00"),
		DeliveryFee: money("2.50"),
	},
	{
		ID:    "ord2",
		Store: "Pizza Palace",
		Date:  "Mar 30, 2025",
		Total: money("22.50"),
		Items: []models.HistoricalItem{
			{ID: "pizza", Name: "Large Pepperoni Pizza", Quantity: 1, Price: money("18.00")},
			{ID: "knots", Name: "Garlic Knots", Quantity: 1, Price: money("4.50")},
		},
		Subtotal:    money("22.50"),
		Taxes:       money("1.80"),
		DeliveryFee: money("2.50"),
	},
}

func PastOrders() []models.HistoricalOrder {
	return append([]models.HistoricalOrder(nil), pastOrders...)
}

func PastOrderByID(id string) (*models.HistoricalOrder, bool) {
	for i := range pastOrders {
		if pastOrders[i].ID == id {
			o := pastOrders[i]
			return &o, true
		}
	}
	return nil, false
}
