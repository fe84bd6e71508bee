package handler

import (
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CoursesHandler struct {
	uc usecase.CourseUsecase
}

func NewCoursesHandler(uc usecase.CourseUsecase) *CoursesHandler {
	return &CoursesHandler{uc: uc}
}

func (h *CoursesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/gap-analysis", h.GapAnalysis)
}

func (h *CoursesHandler) GapAnalysis(c fiber.Ctx) error {
	filename, data, err := readUpload(c, "resume")
	if err != nil {
		return err
	}

	result, err := h.uc.GapAnalysis(c.Context(), usecase.CourseGapInput{
		Role:     c.FormValue("job_role"),
		Filename: filename,
		FileData: data,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"analysis": result,
	})
}
