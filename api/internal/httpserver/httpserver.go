// Package httpserver assembles the fiber application: middleware, the
// recognize endpoint and the static front-end.
package httpserver

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/static"

	"github.com/JohnvenTom/animeFace/api/internal/config"
	"github.com/JohnvenTom/animeFace/api/internal/handle"
)

func New(cfg *config.Config, h *handle.Handle) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "animeFace",
		ServerHeader: "animeFace",
		// Headroom over the upload limit for the multipart framing; intake
		// enforces the real per-file limit.
		BodyLimit: int(cfg.MaxUploadBytes) + 1<<20,
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}
			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(recover.New())
	if cfg.EnableCORS {
		app.Use(cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "HEAD", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		}))
	}
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	api := app.Group("/api")
	api.Post("/recognize", h.Recognize)
	api.Get("/health", h.Health)

	// Front-end entry page and assets.
	app.Use("/", static.New(cfg.StaticDir))

	return app
}
