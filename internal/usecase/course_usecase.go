package usecase

import (
	"context"
	"strings"

	"career-compass/internal/infrastructure/ai"
	"career-compass/internal/pkg/extract"
)

type CourseGapInput struct {
	Role     string
	Filename string
	FileData []byte
}

type CourseUsecase interface {
	GapAnalysis(ctx context.Context, in CourseGapInput) (string, error)
}

// Courses recommends one free course per missing skill. Pure
// request/response; nothing is stored.
type Courses struct {
	ai       ai.Completer
	textFrom func(filename string, data []byte) (string, error)
}

func NewCourseUsecase(completer ai.Completer) *Courses {
	return &Courses{ai: completer, textFrom: extract.Text}
}

func (u *Courses) GapAnalysis(ctx context.Context, in CourseGapInput) (string, error) {
	role := strings.TrimSpace(in.Role)
	if role == "" {
		return "", ErrInvalidInput
	}

	text, err := u.textFrom(in.Filename, in.FileData)
	if err != nil {
		return "", ErrResumeUnreadable
	}
	text = strings.TrimSpace(text)
	if len(text) < minResumeChars {
		return "", ErrResumeUnreadable
	}

	prompt := buildCourseGapPrompt(role, clipText(text, resumePromptChars))
	return u.ai.Complete(ctx, prompt)
}
