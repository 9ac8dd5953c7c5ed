package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
)

// Pinger is anything that can report backend liveness (the pgx pool and the
// Redis wrapper both qualify).
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.Map{"status": "ok"}
	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			status["database"] = "down"
			return c.Status(fiber.StatusServiceUnavailable).JSON(status)
		}
		status["database"] = "up"
	}
	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			// cache is optional; degraded, not down
			status["cache"] = "down"
		} else {
			status["cache"] = "up"
		}
	}

	return c.Status(fiber.StatusOK).JSON(status)
}
