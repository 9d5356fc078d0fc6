package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"dashfood-telegram/bot"
	"dashfood-telegram/config"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Error("config")
		os.Exit(1)
	}
	if cfg.Telegram.Token == "" {
		log.Error("TOKEN not set")
		os.Exit(1)
	}

	b, err := bot.New(cfg, log)
	if err != nil {
		log.WithError(err).Error("bot")
		os.Exit(1)
	}

	log.Info("Bot started.")
	b.Start()
}
