package services

import (
	"github.com/sirupsen/logrus"

	"dashfood-telegram/models"
)

// Navigator is the single source of truth for which screen is active and
// the contextual payload that screen needs. It never rejects a request:
// unknown targets fall back to the entry screen with a warning.
type Navigator struct {
	entry   models.Screen
	active  models.Screen
	store   *models.StoreRef
	order   *models.OrderSnapshot
	receipt *models.HistoricalOrder
	log     logrus.FieldLogger
}

func NewNavigator(entry models.Screen, log logrus.FieldLogger) *Navigator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if _, ok := models.ParseScreen(string(entry)); !ok {
		entry = models.ScreenLogin
	}
	return &Navigator{entry: entry, active: entry, log: log}
}

// Navigate switches the active screen. Only the store, summary and receipt
// screens keep a payload (and only one of the matching shape); every other
// target clears all context. A payload of the wrong shape is dropped
// silently: the consuming screen detects the absent context and falls back
// to a safe screen itself.
func (n *Navigator) Navigate(target string, payload models.Payload) {
	screen, ok := models.ParseScreen(target)
	if !ok {
		n.log.WithField("target", target).Warn("navigate: unknown screen, falling back to entry")
		screen = n.entry
	}

	n.store, n.order, n.receipt = nil, nil, nil
	switch screen {
	case models.ScreenStore:
		if ref, ok := payload.(models.StoreRef); ok {
			n.store = &ref
		}
	case models.ScreenSummary:
		if snap, ok := payload.(*models.OrderSnapshot); ok {
			n.order = snap
		}
	case models.ScreenReceipt:
		if past, ok := payload.(*models.HistoricalOrder); ok {
			n.receipt = past
		}
	}
	n.active = screen
}

func (n *Navigator) Active() models.Screen {
	return n.active
}

// StoreContext returns the store the store screen should render.
func (n *Navigator) StoreContext() (models.StoreRef, bool) {
	if n.store == nil {
		return models.StoreRef{}, false
	}
	return *n.store, true
}

// OrderContext returns the snapshot the summary screen should render.
func (n *Navigator) OrderContext() (*models.OrderSnapshot, bool) {
	return n.order, n.order != nil
}

// ReceiptContext returns the past order the receipt screen should render.
func (n *Navigator) ReceiptContext() (*models.HistoricalOrder, bool) {
	return n.receipt, n.receipt != nil
}
