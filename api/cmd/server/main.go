package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/JohnvenTom/animeFace/api/internal/config"
	"github.com/JohnvenTom/animeFace/api/internal/handle"
	"github.com/JohnvenTom/animeFace/api/internal/httpserver"
	"github.com/JohnvenTom/animeFace/api/internal/recognize"
)

func main() {
	cfg := config.Load()

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Port = p
	} else if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8000"
	}

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap: %v", err)
	}
	defer zl.Sync()
	sugar := zl.Sugar()

	client := recognize.NewClient(cfg.UpstreamURL, cfg.UpstreamTimeout)
	h := handle.New(client, cfg.MaxUploadBytes, sugar)
	app := httpserver.New(cfg, h)

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint
		sugar.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			sugar.Warnw("shutdown", "err", err)
		}
	}()

	addr := ":" + cfg.Port
	sugar.Infow("animeface relay listening",
		"addr", addr, "upstream", cfg.UpstreamURL, "timeout", cfg.UpstreamTimeout)
	if err := app.Listen(addr); err != nil {
		sugar.Fatalw("listen", "err", err)
	}
}
