package handler

import (
	"career-compass/internal/database"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, cache *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	dbStatus := "up"
	status := fiber.StatusOK
	if h.db == nil || h.db.Ping(c.Context()) != nil {
		dbStatus = "down"
		status = fiber.StatusServiceUnavailable
	}

	cacheStatus := "disabled"
	if h.cache != nil && h.cache.Available() {
		cacheStatus = "up"
	}

	msg := response.MessageOK
	if status != fiber.StatusOK {
		msg = "degraded"
	}
	return response.Success(c, status, msg, map[string]any{
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
