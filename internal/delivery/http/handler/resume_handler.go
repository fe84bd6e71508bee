package handler

import (
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc usecase.ResumeAnalysisUsecase
}

func NewResumeHandler(uc usecase.ResumeAnalysisUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/analyze", h.Analyze)
}

func (h *ResumeHandler) Analyze(c fiber.Ctx) error {
	filename, data, err := readUpload(c, "resume")
	if err != nil {
		return err
	}

	email := middleware.CallerEmail(c)
	rep, err := h.uc.Analyze(c.Context(), email, usecase.AnalyzeResumeInput{
		TargetRole: c.FormValue("job_role"),
		Filename:   filename,
		FileData:   data,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, rep)
}
