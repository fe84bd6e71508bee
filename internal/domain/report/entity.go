package report

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("report not found")

// Report is a stored analysis: a resume audit or saved interview prep. The
// content is the completion text as returned by the model, fences stripped,
// otherwise unvalidated.
type Report struct {
	ID        int64     `json:"id"`
	UserEmail string    `json:"user_email"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
