package models

// Screen identifies one logical page of the app.
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenSignup    Screen = "signup"
	ScreenHome      Screen = "home"
	ScreenRecommend Screen = "recommend"
	ScreenHistory   Screen = "history"
	ScreenFavorites Screen = "favorites"
	ScreenSettings  Screen = "settings"
	ScreenCart      Screen = "cart"
	ScreenStore     Screen = "store"
	ScreenPopular   Screen = "popular"
	ScreenSummary   Screen = "summary"
	ScreenReceipt   Screen = "receipt"
)

var knownScreens = map[Screen]bool{
	ScreenLogin:     true,
	ScreenSignup:    true,
	ScreenHome:      true,
	ScreenRecommend: true,
	ScreenHistory:   true,
	ScreenFavorites: true,
	ScreenSettings:  true,
	ScreenCart:      true,
	ScreenStore:     true,
	ScreenPopular:   true,
	ScreenSummary:   true,
	ScreenReceipt:   true,
}

// ParseScreen maps an arbitrary token to a Screen. ok is false for tokens
// outside the set; the caller decides the fallback.
func ParseScreen(s string) (Screen, bool) {
	screen := Screen(s)
	return screen, knownScreens[screen]
}

// Payload is the contextual data a screen change can carry: a store
// reference for the store screen, an order snapshot for the summary
// screen, or a past order for the receipt screen. Every other screen
// travels without context.
type Payload interface {
	navPayload()
}

func (StoreRef) navPayload()         {}
func (*OrderSnapshot) navPayload()   {}
func (*HistoricalOrder) navPayload() {}
