package bot

import (
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"dashfood-telegram/config"
	"dashfood-telegram/models"
	"dashfood-telegram/services"
)

type Bot struct {
	api *tgbotapi.BotAPI
	cfg *config.Config
	log logrus.FieldLogger

	sessions   map[int64]*services.App
	sessionsMu sync.RWMutex
}

func New(cfg *config.Config, log logrus.FieldLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Bot{
		api:      api,
		cfg:      cfg,
		log:      log,
		sessions: make(map[int64]*services.App),
	}, nil
}

// session returns the chat's app state, creating a fresh one on first
// contact. Each chat is its own user with its own navigator and cart.
func (b *Bot) session(chatID int64) *services.App {
	b.sessionsMu.RLock()
	app, ok := b.sessions[chatID]
	b.sessionsMu.RUnlock()
	if ok {
		return app
	}
	app = services.NewApp(
		models.Screen(b.cfg.App.EntryScreen),
		b.cfg.App.StartBalance,
		b.log.WithField("chat_id", chatID),
	)
	b.sessionsMu.Lock()
	b.sessions[chatID] = app
	b.sessionsMu.Unlock()
	return app
}

// resetSession drops the chat's state entirely. /reset is the bot's
// equivalent of reloading the page: everything is ephemeral.
func (b *Bot) resetSession(chatID int64) {
	b.sessionsMu.Lock()
	delete(b.sessions, chatID)
	b.sessionsMu.Unlock()
}

func (b *Bot) setBotCommands() error {
	cfg := tgbotapi.SetMyCommandsConfig{
		Commands: []tgbotapi.BotCommand{
			{Command: "start", Description: "Open the app"},
			{Command: "reset", Description: "Start over (clears everything)"},
		},
	}
	_, err := b.api.Request(cfg)
	return err
}

func (b *Bot) Start() {
	_ = b.setBotCommands()
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}
		msg := update.Message
		switch strings.TrimSpace(msg.Text) {
		case "/start":
			b.render(msg.Chat.ID, b.session(msg.Chat.ID))
		case "/reset":
			b.resetSession(msg.Chat.ID)
			b.render(msg.Chat.ID, b.session(msg.Chat.ID))
		}
	}
}

func (b *Bot) handleCallback(cq *tgbotapi.CallbackQuery) {
	if cq.Message == nil {
		return
	}
	chatID := cq.Message.Chat.ID
	app := b.session(chatID)
	data := cq.Data

	b.api.Request(tgbotapi.NewCallback(cq.ID, ""))

	switch {
	case data == "login":
		app.SignIn()
	case data == "signup":
		app.SignUp()
	case data == "logout":
		app.Logout()
	case data == "mode":
		app.ToggleMode()
	case data == "usebal":
		app.SetUseBalance(!app.UseBalance())
	case data == "clearcart":
		app.Cart.Clear()
	case data == "checkout":
		app.Checkout()
	case strings.HasPrefix(data, "nav:"):
		app.Navigate(strings.TrimPrefix(data, "nav:"), nil)
	case strings.HasPrefix(data, "store:"):
		app.Navigate(string(models.ScreenStore), models.StoreRef{ShopName: strings.TrimPrefix(data, "store:")})
	case strings.HasPrefix(data, "add:"):
		b.addToCart(app, strings.TrimPrefix(data, "add:"))
	case strings.HasPrefix(data, "inc:"):
		b.bumpQuantity(app, strings.TrimPrefix(data, "inc:"), +1)
	case strings.HasPrefix(data, "dec:"):
		b.bumpQuantity(app, strings.TrimPrefix(data, "dec:"), -1)
	case strings.HasPrefix(data, "del:"):
		app.Cart.RemoveItem(strings.TrimPrefix(data, "del:"))
	case strings.HasPrefix(data, "receipt:"):
		b.openReceipt(app, strings.TrimPrefix(data, "receipt:"))
	default:
		b.log.WithField("data", data).Warn("callback: unknown action")
	}

	b.render(chatID, app)
}

func (b *Bot) addToCart(app *services.App, itemID string) {
	ref, ok := app.Nav.StoreContext()
	if !ok {
		return
	}
	item, ok := services.MenuItemByID(ref.DisplayName(), itemID)
	if !ok {
		return
	}
	app.Cart.AddItem(item, 1)
}

func (b *Bot) bumpQuantity(app *services.App, itemID string, delta int) {
	for _, it := range app.Cart.Items() {
		if it.ID == itemID {
			app.Cart.UpdateQuantity(itemID, it.Quantity+delta)
			return
		}
	}
}

func (b *Bot) openReceipt(app *services.App, orderID string) {
	if past, ok := services.PastOrderByID(orderID); ok {
		app.Navigate(string(models.ScreenReceipt), past)
		return
	}
	app.Navigate(string(models.ScreenHistory), nil)
}

// render draws the active screen. Screens that need a context they don't
// have redirect to their safe fallback first instead of failing.
func (b *Bot) render(chatID int64, app *services.App) {
	switch app.Nav.Active() {
	case models.ScreenStore:
		if _, ok := app.Nav.StoreContext(); !ok {
			b.log.Warn("store screen without store context, falling back to login")
			app.Navigate(string(models.ScreenLogin), nil)
		}
	case models.ScreenSummary:
		if _, ok := app.Nav.OrderContext(); !ok {
			b.log.Warn("summary screen without order context, falling back to home")
			app.Navigate(string(models.ScreenHome), nil)
		}
	case models.ScreenReceipt:
		if _, ok := app.Nav.ReceiptContext(); !ok {
			b.log.Warn("receipt screen without order context, falling back to history")
			app.Navigate(string(models.ScreenHistory), nil)
		}
	}

	text, kb := renderScreen(app)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if len(kb.InlineKeyboard) > 0 {
		msg.ReplyMarkup = kb
	}
	if _, err := b.api.Send(msg); err != nil {
		b.log.WithError(err).Error("send")
	}
}
