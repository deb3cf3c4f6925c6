package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

const (
	defaultUpstreamURL     = "https://api.animetrace.com/v1/search"
	defaultUpstreamTimeout = 30 * time.Second
	defaultMaxUploadBytes  = 5 << 20 // 5 MiB
)

type Config struct {
	Port string

	UpstreamURL     string
	UpstreamTimeout time.Duration
	MaxUploadBytes  int64

	StaticDir  string
	EnableCORS bool

	TelegramBotToken string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Fatalf("bad bool in env %s: %q", k, v)
	}
	return b
}

func getEnvBytes(k string, def int64) int64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		log.Fatalf("bad byte size in env %s: %q", k, v)
	}
	return n
}

func getEnvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Fatalf("bad duration in env %s: %q", k, v)
	}
	return d
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		UpstreamURL:     getEnv("UPSTREAM_URL", defaultUpstreamURL),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", defaultUpstreamTimeout),
		MaxUploadBytes:  getEnvBytes("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),

		StaticDir:  getEnv("STATIC_DIR", "./web"),
		EnableCORS: getEnvBool("ENABLE_CORS", true),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}
}

// MustTelegram is Load for the bot entrypoint, where the token is not optional.
func MustTelegram() *Config {
	cfg := Load()
	cfg.TelegramBotToken = mustEnv("TELEGRAM_BOT_TOKEN")
	return cfg
}
