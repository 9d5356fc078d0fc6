package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"dashfood-telegram/models"
)

// App ties one user's navigator, cart, mode and balance together and
// sequences the flows that touch more than one of them. Presentation code
// goes through these operations and never mutates the state directly.
type App struct {
	Nav  *Navigator
	Cart *Cart

	mode       string
	balance    decimal.Decimal
	useBalance bool
	accountID  string

	log logrus.FieldLogger
}

func NewApp(entry models.Screen, balance decimal.Decimal, log logrus.FieldLogger) *App {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &App{
		Nav:     NewNavigator(entry, log),
		Cart:    NewCart(log),
		mode:    models.ModeDelivery,
		balance: balance,
		log:     log,
	}
}

// Navigate routes a screen change through the navigator. Leaving settings
// for the login screen is a logout, so the cart is cleared before the
// switch; the coupling lives here, not inside the navigator.
func (a *App) Navigate(target string, payload models.Payload) {
	screen, ok := models.ParseScreen(target)
	if !ok {
		screen = a.Nav.entry
	}
	if screen == models.ScreenLogin && a.Nav.Active() == models.ScreenSettings {
		a.log.Info("logout: clearing cart")
		a.Cart.Clear()
		a.useBalance = false
		a.accountID = ""
	}
	a.Nav.Navigate(target, payload)
}

// Logout is the settings screen's explicit sign-out: clear the cart, then
// return to login.
func (a *App) Logout() {
	a.Cart.Clear()
	a.useBalance = false
	a.accountID = ""
	a.Nav.Navigate(string(models.ScreenLogin), nil)
}

// SignIn always succeeds: there is no account backend. A fresh token
// stands in for the authenticated account for the life of the session.
func (a *App) SignIn() {
	a.accountID = uuid.NewString()
	a.Nav.Navigate(string(models.ScreenHome), nil)
}

// SignUp behaves exactly like SignIn; the form is a mock.
func (a *App) SignUp() {
	a.SignIn()
}

func (a *App) AccountID() string {
	return a.accountID
}

func (a *App) Mode() string {
	return a.mode
}

func (a *App) ToggleMode() {
	if a.mode == models.ModePickup {
		a.mode = models.ModeDelivery
	} else {
		a.mode = models.ModePickup
	}
}

func (a *App) Balance() decimal.Decimal {
	return a.balance
}

func (a *App) UseBalance() bool {
	return a.useBalance
}

func (a *App) SetUseBalance(v bool) {
	a.useBalance = v
}

// Totals derives the live cart's monetary summary under the session's
// current mode and balance election.
func (a *App) Totals() Totals {
	requested := decimal.Zero
	if a.useBalance {
		requested = a.balance
	}
	return ComputeTotals(a.Cart.Items(), a.mode, a.balance, requested)
}

// Checkout places the order and moves to the summary screen carrying the
// snapshot. With an empty cart nothing happens: no snapshot, no
// navigation.
func (a *App) Checkout() *models.OrderSnapshot {
	snap := PlaceOrder(a.Cart, a.Totals(), a.Cart.StoreName(), a.mode)
	if snap == nil {
		return nil
	}
	a.useBalance = false
	a.Nav.Navigate(string(models.ScreenSummary), snap)
	return snap
}
