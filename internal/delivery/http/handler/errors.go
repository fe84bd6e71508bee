package handler

import (
	"errors"

	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/domain/report"
	"career-compass/internal/infrastructure/ai"
	"career-compass/internal/infrastructure/jobapi"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError converts domain sentinels into transport errors. Upstream
// failures become 502/504 so callers can render an API-error message instead
// of an empty-state one.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrResumeUnreadable):
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume is too short or unreadable", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, report.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Report not found", nil, err)
	case errors.Is(err, ai.ErrTimeout):
		return middleware.NewAppError(fiber.StatusGatewayTimeout, "AI service timed out", nil, err)
	case errors.Is(err, ai.ErrUnavailable):
		return middleware.NewAppError(fiber.StatusBadGateway, "AI service error", nil, err)
	case errors.Is(err, jobapi.ErrTimeout):
		return middleware.NewAppError(fiber.StatusGatewayTimeout, "Job search timed out", nil, err)
	case errors.Is(err, jobapi.ErrUnavailable):
		return middleware.NewAppError(fiber.StatusBadGateway, "Job search unavailable", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
