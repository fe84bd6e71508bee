package handler

import (
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	dashboardReportLimit   = 3
	dashboardSavedJobLimit = 5
)

type DashboardHandler struct {
	reports usecase.ReportUsecase
	saved   usecase.SavedJobUsecase
}

func NewDashboardHandler(reports usecase.ReportUsecase, saved usecase.SavedJobUsecase) *DashboardHandler {
	return &DashboardHandler{reports: reports, saved: saved}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Overview)
}

func (h *DashboardHandler) Overview(c fiber.Ctx) error {
	email := middleware.CallerEmail(c)

	reports, err := h.reports.Recent(c.Context(), email, dashboardReportLimit)
	if err != nil {
		return mapUsecaseError(err)
	}
	jobs, err := h.saved.Recent(c.Context(), email, dashboardSavedJobLimit)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"recent_reports": reports,
		"saved_jobs":     jobs,
	})
}
