package handler

import (
	"errors"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	search usecase.JobSearchUsecase
	saved  usecase.SavedJobUsecase
}

type searchJobsRequest struct {
	Role     string `json:"role"`
	Location string `json:"location"`
}

type saveJobRequest struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	URL      string `json:"url"`
}

func NewJobsHandler(search usecase.JobSearchUsecase, saved usecase.SavedJobUsecase) *JobsHandler {
	return &JobsHandler{search: search, saved: saved}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/search", h.Search)
	r.Post("/save", h.Save)
	r.Get("/saved", h.Saved)
}

func (h *JobsHandler) Search(c fiber.Ctx) error {
	var req searchJobsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	postings, err := h.search.Resolve(c.Context(), req.Role, req.Location)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{
		"jobs":  postings,
		"count": len(postings),
	})
}

func (h *JobsHandler) Save(c fiber.Ctx) error {
	var req saveJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	email := middleware.CallerEmail(c)
	err := h.saved.Save(c.Context(), email, usecase.SaveJobInput{
		Title:    req.Title,
		Company:  req.Company,
		Location: req.Location,
		URL:      req.URL,
	})
	if errors.Is(err, usecase.ErrAlreadySaved) {
		return response.Success(c, fiber.StatusOK, "Already saved", nil)
	}
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Saved", nil)
}

func (h *JobsHandler) Saved(c fiber.Ctx) error {
	email := middleware.CallerEmail(c)
	jobs, err := h.saved.Recent(c.Context(), email, 50)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobs)
}
