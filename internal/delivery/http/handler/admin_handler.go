package handler

import (
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	uc usecase.AdminUsecase
}

func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/overview", h.Overview)
	r.Post("/reset", h.Reset)
}

func (h *AdminHandler) Overview(c fiber.Ctx) error {
	overview, err := h.uc.Overview(c.Context(), middleware.CallerEmail(c))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, overview)
}

func (h *AdminHandler) Reset(c fiber.Ctx) error {
	if err := h.uc.Reset(c.Context(), middleware.CallerEmail(c)); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Database reset", nil)
}
