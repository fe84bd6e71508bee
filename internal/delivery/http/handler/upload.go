package handler

import (
	"io"

	"career-compass/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

const maxUploadBytes = 10 << 20

// readUpload pulls one multipart file field into memory. Oversized or absent
// files are client errors.
func readUpload(c fiber.Ctx, field string) (string, []byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil, middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded", nil, err)
	}
	if fh.Size > maxUploadBytes {
		return "", nil, middleware.NewAppError(fiber.StatusBadRequest, "File too large", nil, nil)
	}

	f, err := fh.Open()
	if err != nil {
		return "", nil, middleware.NewAppError(fiber.StatusBadRequest, "Unreadable upload", nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return "", nil, middleware.NewAppError(fiber.StatusBadRequest, "Unreadable upload", nil, err)
	}
	if len(data) > maxUploadBytes {
		return "", nil, middleware.NewAppError(fiber.StatusBadRequest, "File too large", nil, nil)
	}
	return fh.Filename, data, nil
}
