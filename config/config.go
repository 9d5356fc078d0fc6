package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Telegram TelegramConfig
	App      AppConfig
}

type TelegramConfig struct {
	Token string
}

type AppConfig struct {
	EntryScreen  string          // screen a fresh session starts on: "login" or "home"
	StartBalance decimal.Decimal // mock redeemable credit every account starts with
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	balance, err := decimal.NewFromString(getEnv("START_BALANCE", "24.50"))
	if err != nil {
		return nil, fmt.Errorf("START_BALANCE: %w", err)
	}

	return &Config{
		Telegram: TelegramConfig{
			Token: getEnv("TOKEN", ""),
		},
		App: AppConfig{
			EntryScreen:  getEnv("ENTRY_SCREEN", "login"),
			StartBalance: balance,
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
