package handler

import (
	"strconv"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type InterviewHandler struct {
	uc usecase.InterviewUsecase
}

type savePrepRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func NewInterviewHandler(uc usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/generate", h.Generate)
	r.Post("/save", h.Save)
}

func (h *InterviewHandler) Generate(c fiber.Ctx) error {
	filename, data, err := readUpload(c, "resume")
	if err != nil {
		return err
	}

	count, _ := strconv.Atoi(c.FormValue("count"))
	questions, err := h.uc.Generate(c.Context(), usecase.GenerateInterviewInput{
		Role:     c.FormValue("role"),
		Company:  c.FormValue("company"),
		QType:    c.FormValue("q_type"),
		Count:    count,
		Filename: filename,
		FileData: data,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"questions": questions,
	})
}

func (h *InterviewHandler) Save(c fiber.Ctx) error {
	var req savePrepRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	email := middleware.CallerEmail(c)
	if err := h.uc.SavePrep(c.Context(), email, req.Role, req.Content); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Saved", nil)
}
