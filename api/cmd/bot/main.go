package main

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/JohnvenTom/animeFace/api/internal/config"
	"github.com/JohnvenTom/animeFace/api/internal/recognize"
	"github.com/JohnvenTom/animeFace/api/internal/telegram"
)

func main() {
	cfg := config.MustTelegram()

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap: %v", err)
	}
	defer zl.Sync()
	sugar := zl.Sugar()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		sugar.Fatalw("telegram auth", "err", err)
	}
	bot.Debug = false
	sugar.Infow("bot authorized", "account", bot.Self.UserName)

	r := &telegram.Router{
		Bot:    bot,
		Client: recognize.NewClient(cfg.UpstreamURL, cfg.UpstreamTimeout),
		Log:    sugar,
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	for upd := range bot.GetUpdatesChan(u) {
		go r.HandleUpdate(upd)
	}
}
