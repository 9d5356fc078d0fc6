package bot

import (
	"fmt"
	"net/url"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"

	"dashfood-telegram/models"
	"dashfood-telegram/services"
)

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// renderScreen produces the text and keyboard for the active screen.
// Pure reads: nothing here mutates the app state.
func renderScreen(app *services.App) (string, tgbotapi.InlineKeyboardMarkup) {
	switch app.Nav.Active() {
	case models.ScreenLogin:
		return renderLogin()
	case models.ScreenSignup:
		return renderSignup()
	case models.ScreenHome:
		return renderHome(app)
	case models.ScreenRecommend:
		return renderRecommend(app)
	case models.ScreenHistory:
		return renderHistory(app)
	case models.ScreenFavorites:
		return renderFavorites(app)
	case models.ScreenSettings:
		return renderSettings(app)
	case models.ScreenCart:
		return renderCart(app)
	case models.ScreenStore:
		return renderStore(app)
	case models.ScreenPopular:
		return renderPopular(app)
	case models.ScreenSummary:
		return renderSummary(app)
	case models.ScreenReceipt:
		return renderReceipt(app)
	}
	return renderLogin()
}

func navButton(label string, screen models.Screen) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(label, "nav:"+string(screen))
}

func storeButton(s models.Store) tgbotapi.InlineKeyboardButton {
	label := fmt.Sprintf("%s — %s · %s · %s", s.Name, s.Cuisine, s.PriceBand, s.Distance)
	return tgbotapi.NewInlineKeyboardButtonData(label, "store:"+url.PathEscape(s.Name))
}

func storeRows(stores []models.Store) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, s := range stores {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(storeButton(s)))
	}
	return rows
}

func bottomNav(app *services.App) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		navButton("🏠 Home", models.ScreenHome),
		navButton(fmt.Sprintf("🛒 Cart (%d)", app.Cart.ItemCount()), models.ScreenCart),
		navButton("🕘 History", models.ScreenHistory),
		navButton("⚙ Settings", models.ScreenSettings),
	)
}

// header is the logged-in top bar: mode, balance and cart badge.
func header(app *services.App) string {
	icon := "🚗"
	if app.Mode() == models.ModePickup {
		icon = "🏃"
	}
	return fmt.Sprintf("%s %s · balance %s · 🛒 %d\n\n",
		icon, app.Mode(), services.FormatMoney(app.Balance()), app.Cart.ItemCount())
}

func renderLogin() (string, tgbotapi.InlineKeyboardMarkup) {
	text := "*Welcome back*\n\nLog in to keep ordering. Any credentials work — this is a prototype, nothing is checked or stored."
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Log In", "login")),
		tgbotapi.NewInlineKeyboardRow(navButton("Create an account", models.ScreenSignup)),
	)
	return text, kb
}

func renderSignup() (string, tgbotapi.InlineKeyboardMarkup) {
	text := "*Create your account*\n\nNo real signup happens here; the button below always succeeds."
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("Sign Up", "signup")),
		tgbotapi.NewInlineKeyboardRow(navButton("Back to log in", models.ScreenLogin)),
	)
	return text, kb
}

func renderHome(app *services.App) (string, tgbotapi.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString(header(app))
	sb.WriteString("*What are you craving?*\n\n")
	sb.WriteString("📣 " + services.PromotionalAds()[0] + "\n\n")
	sb.WriteString("Order: " + strings.Join(services.OrderCategories(), " · ") + "\n\n")
	sb.WriteString("Cuisines: " + strings.Join(services.CuisineCategories(), " · ") + "\n\n")
	sb.WriteString("*Popular near you:*")

	rows := storeRows(services.PopularStores())
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		navButton("👍 Recommended", models.ScreenRecommend),
		navButton("🔥 Popular Nearby", models.ScreenPopular),
	))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		navButton("❤️ Favorites", models.ScreenFavorites),
	))
	rows = append(rows, bottomNav(app))
	return sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func renderRecommend(app *services.App) (string, tgbotapi.InlineKeyboardMarkup) {
	text := header(app) + "*Guess you'll like these:*"
	rows := storeRows(services.GuessYouLike())
	rows = append(rows, bottomNav(app))
	return text, tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func renderPopular(app *services.App) (string, tgbotapi.InlineKeyboardMarkup) {
	text := header(app) + "*Popular nearby:*"
	rows := storeRows(services.PopularStores())
	rows = append(rows, bottomNav(app))
	return text, tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func renderFavorites(app *services.App) (string, tgbotapi.InlineKeyboardMarkup) {
	text := header(app) + "*Your favorites:*"
	rows := storeRows(services.FavoriteStores())
	rows = append(rows, bottomNav(app))
	return text, tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func renderHistory(app *services.App) (string, tgbotapi.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString(header(app))
	sb.WriteString("*Order History*\n")

	orders := services.PastOrders()
	if len(orders) == 0 {
		sb.WriteString("\nYou haven't placed any orders yet.")
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, o := range orders {
		var names []string
		for _, it := range o.Items {
			names = append(names, fmt.Sprintf("%dx %s", it.Quantity, it.Name))
		}
		sb.WriteString(fmt.Sprintf("\n*%s* — %s — %s\n_%s_\n",
			o.Store, o.Date, services.FormatMoney(o.Total), strings.Join(names, ", ")))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📄 Receipt: "+o.Store, "receipt:"+o.ID),
			tgbotapi.NewInlineKeyboardButtonData("View Store", "store:"+url.PathEscape(o.Store)),
		))
	}
	rows = append(rows, bottomNav(app))
	return sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func renderSettings(app *services.App) (string, tgbotapi.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString(header(app))
	sb.WriteString("*Settings*\n\n")
	sb.WriteString("Name: John Doe\nEmail: john.doe@example.com\nPhone: (555) 123-4567\n")
	if id := app.AccountID(); id != "" {
		sb.WriteString("Session: " + id + "\n")
	}
	sb.WriteString("\nNotifications: promotions ✔ · order updates ✔ · news ✘")
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🚪 Log Out", "logout")),
		bottomNav(app),
	)
	return sb.String(), kb
}

func renderStore(app *services.App) (string, tgbotapi.InlineKeyboardMarkup) {
	ref, _ := app.Nav.StoreContext()
	name := ref.DisplayName()

	var sb strings.Builder
	sb.WriteString(header(app))
	sb.WriteString(fmt.Sprintf("*%s*\n\nMenu:\n", name))

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, it := range services.MenuFor(name) {
		sb.WriteString(fmt.Sprintf("• *%s* %s\n  _%s_\n", it.Name, it.Price, it.Description))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("Add %s — %s", it.Name, it.Price), "add:"+it.ID),
		))
	}
	if app.Cart.Len() > 0 {
		sb.WriteString(fmt.Sprintf("\n🛒 %d item(s) from %s in your cart.", app.Cart.ItemCount(), app.Cart.StoreName()))
	}
	rows = append(rows, bottomNav(app))
	return sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func renderCart(app *services.App) (string, tgbotapi.InlineKeyboardMarkup) {
	var sb strings.Builder
	sb.WriteString(header(app))
	sb.WriteString("*Your Cart*\n")

	items := app.Cart.Items()
	if len(items) == 0 {
		sb.WriteString("\nYour cart is empty.")
		kb := tgbotapi.NewInlineKeyboardMarkup(bottomNav(app))
		return sb.String(), kb
	}

	sb.WriteString(fmt.Sprintf("From: *%s*\n\n", app.Cart.StoreName()))
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, it := range items {
		lineTotal := it.UnitPrice.Mul(decimalFromInt(it.Quantity))
		sb.WriteString(fmt.Sprintf("%d × %s — %s (%s each)\n",
			it.Quantity, it.Name, services.FormatMoney(lineTotal), services.FormatMoney(it.UnitPrice)))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➖ "+it.Name, "dec:"+it.ID),
			tgbotapi.NewInlineKeyboardButtonData("➕", "inc:"+it.ID),
			tgbotapi.NewInlineKeyboardButtonData("🗑", "del:"+it.ID),
		))
	}

	t := app.Totals()
	sb.WriteString("\nSubtotal: " + services.FormatMoney(t.Subtotal))
	sb.WriteString("\nDelivery Fee: " + services.FormatMoney(t.DeliveryFee))
	sb.WriteString("\nTaxes: " + services.FormatMoney(t.Taxes))
	sb.WriteString("\nOrder Total: " + services.FormatMoney(t.OrderTotal))
	if t.BalanceApplied.IsPositive() {
		sb.WriteString("\nBalance Applied: -" + services.FormatMoney(t.BalanceApplied))
	}
	sb.WriteString("\n*Pay: " + services.FormatMoney(t.FinalTotal) + "*")

	modeLabel := "Switch to pickup"
	if app.Mode() == models.ModePickup {
		modeLabel = "Switch to delivery"
	}
	balLabel := fmt.Sprintf("Use balance (%s)", services.FormatMoney(app.Balance()))
	if app.UseBalance() {
		balLabel = "Don't use balance"
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(modeLabel, "mode"),
			tgbotapi.NewInlineKeyboardButtonData(balLabel, "usebal"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Place Order — "+services.FormatMoney(t.FinalTotal), "checkout"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Clear cart", "clearcart"),
		),
		bottomNav(app),
	)
	return sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func renderSummary(app *services.App) (string, tgbotapi.InlineKeyboardMarkup) {
	snap, _ := app.Nav.OrderContext()

	var sb strings.Builder
	sb.WriteString("✅ *Order Placed!*\n\n")
	sb.WriteString(fmt.Sprintf("Thank you for your order from *%s*.\n", snap.StoreName))
	sb.WriteString("Order ID: " + snap.OrderID + "\n")
	sb.WriteString("Estimated Delivery: 30-45 minutes\n\n")
	sb.WriteString(fmt.Sprintf("*Order Summary (%s)*\n", snap.OrderDate))
	for _, it := range snap.Items {
		lineTotal := it.UnitPrice.Mul(decimalFromInt(it.Quantity))
		sb.WriteString(fmt.Sprintf("%d × %s — %s\n", it.Quantity, it.Name, services.FormatMoney(lineTotal)))
	}
	sb.WriteString("\nSubtotal: " + services.FormatMoney(snap.Subtotal))
	sb.WriteString("\nDelivery Fee: " + services.FormatMoney(snap.DeliveryFee))
	sb.WriteString("\nTaxes: " + services.FormatMoney(snap.Taxes))
	if snap.BalanceApplied.IsPositive() {
		sb.WriteString("\nBalance Applied: -" + services.FormatMoney(snap.BalanceApplied))
	}
	sb.WriteString("\n*Total Paid: " + services.FormatMoney(snap.FinalTotal) + "*")

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(navButton("View History", models.ScreenHistory)),
		tgbotapi.NewInlineKeyboardRow(navButton("Back to Home", models.ScreenHome)),
	)
	return sb.String(), kb
}

func renderReceipt(app *services.App) (string, tgbotapi.InlineKeyboardMarkup) {
	order, _ := app.Nav.ReceiptContext()

	var sb strings.Builder
	sb.WriteString(header(app))
	sb.WriteString("*Receipt*\n\n")
	sb.WriteString(fmt.Sprintf("*%s*\nOrder ID: %s\nDate: %s\n\nItems:\n", order.Store, order.ID, order.Date))
	for _, it := range order.Items {
		lineTotal := it.Price.Mul(decimalFromInt(it.Quantity))
		sb.WriteString(fmt.Sprintf("%d × %s — %s\n", it.Quantity, it.Name, services.FormatMoney(lineTotal)))
	}
	sb.WriteString("\nSubtotal: " + services.FormatMoney(order.Subtotal))
	sb.WriteString("\nDelivery Fee: " + services.FormatMoney(order.DeliveryFee))
	sb.WriteString("\nTaxes: " + services.FormatMoney(order.Taxes))
	sb.WriteString("\n*Total Paid: " + services.FormatMoney(order.Total) + "*")

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(navButton("Back to History", models.ScreenHistory)),
		bottomNav(app),
	)
	return sb.String(), kb
}
