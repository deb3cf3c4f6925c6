// Package telegram is the bot surface of the relay: send the bot an anime
// picture, get the recognized characters back.
package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/JohnvenTom/animeFace/api/internal/recognize"
)

type Router struct {
	Bot    *tgbotapi.BotAPI
	Client *recognize.Client
	Log    *zap.SugaredLogger
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		r.handleCommand(upd)
		return
	}

	if len(upd.Message.Photo) > 0 {
		r.acceptPhoto(*upd.Message)
		return
	}
	if doc := upd.Message.Document; doc != nil {
		r.acceptDocument(*upd.Message, *doc)
		return
	}

	r.send(cid, "Send me an anime picture and I will tell you who is on it.")
}

func (r *Router) handleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start":
		r.send(cid, "Send an anime screenshot or fanart — I will reply with the recognized characters.\nCommands: /health")
	case "health":
		r.send(cid, "ok")
	default:
		r.send(cid, "Unknown command")
	}
}

func (r *Router) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := r.Bot.Send(msg); err != nil {
		r.Log.Warnw("telegram send", "chat", chatID, "err", err)
	}
}
