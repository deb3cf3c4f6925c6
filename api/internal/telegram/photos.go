package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/JohnvenTom/animeFace/api/internal/recognize"
	"github.com/JohnvenTom/animeFace/api/internal/util"
)

var fileClient = &http.Client{Timeout: 30 * time.Second}

func (r *Router) acceptPhoto(msg tgbotapi.Message) {
	// Telegram sends renditions smallest first; take the largest.
	ph := msg.Photo[len(msg.Photo)-1]
	r.recognizeFile(msg.Chat.ID, ph.FileID, "photo.jpg")
}

func (r *Router) acceptDocument(msg tgbotapi.Message, doc tgbotapi.Document) {
	if !strings.HasPrefix(doc.MimeType, "image/") {
		r.send(msg.Chat.ID, "Only image files are supported.")
		return
	}
	name := doc.FileName
	if name == "" {
		name = "image"
	}
	r.recognizeFile(msg.Chat.ID, doc.FileID, name)
}

func (r *Router) recognizeFile(cid int64, fileID, filename string) {
	file, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		r.Log.Warnw("telegram getfile", "chat", cid, "err", err)
		r.send(cid, "Could not fetch that file from Telegram, try again.")
		return
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", r.Bot.Token, file.FilePath)

	data, err := download(url)
	if err != nil {
		r.Log.Warnw("telegram download", "chat", cid, "err", err)
		r.send(cid, "Could not download that file from Telegram, try again.")
		return
	}

	in := &recognize.Input{
		File:     data,
		Filename: filename,
		MIME:     util.PickMIME("", data),
		Options:  map[string]string{},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	out := r.Client.Search(ctx, in)
	if out.Kind != recognize.KindSuccess {
		_, msg, _ := recognize.MapFailure(out)
		r.Log.Warnw("recognize failed", "chat", cid, "kind", out.Kind, "err", out.Err)
		r.send(cid, msg)
		return
	}
	r.send(cid, FormatMatches(out.Body))
}

func download(url string) ([]byte, error) {
	resp, err := fileClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
