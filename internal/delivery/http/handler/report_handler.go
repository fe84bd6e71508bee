package handler

import (
	"strconv"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/report"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ReportHandler struct {
	uc usecase.ReportUsecase
}

func NewReportHandler(uc usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:id", h.Get)
}

func (h *ReportHandler) Get(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return mapUsecaseError(report.ErrNotFound)
	}

	rep, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}

	// Reports are private to their owner.
	if rep.UserEmail != middleware.CallerEmail(c) {
		return mapUsecaseError(report.ErrNotFound)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, rep)
}
