package usecase

import (
	"context"
	"strings"
	"time"

	"career-compass/internal/domain/report"
	"career-compass/internal/infrastructure/ai"
	"career-compass/internal/pkg/extract"
	"career-compass/internal/repository"
)

const interviewPromptChars = 2000

type GenerateInterviewInput struct {
	Role     string
	Company  string
	QType    string
	Count    int
	Filename string
	FileData []byte
}

type InterviewUsecase interface {
	Generate(ctx context.Context, in GenerateInterviewInput) (string, error)
	SavePrep(ctx context.Context, email, role, content string) error
}

// Interview generates question sets on demand; nothing is persisted unless
// the user explicitly saves the prep, which lands in reports with a prefixed
// role.
type Interview struct {
	reports  repository.ReportRepository
	ai       ai.Completer
	textFrom func(filename string, data []byte) (string, error)

	now func() time.Time
}

func NewInterviewUsecase(reports repository.ReportRepository, completer ai.Completer) *Interview {
	return &Interview{
		reports:  reports,
		ai:       completer,
		textFrom: extract.Text,
		now:      time.Now,
	}
}

func (u *Interview) Generate(ctx context.Context, in GenerateInterviewInput) (string, error) {
	role := strings.TrimSpace(in.Role)
	company := strings.TrimSpace(in.Company)
	if role == "" || company == "" {
		return "", ErrInvalidInput
	}
	count := in.Count
	if count <= 0 || count > 20 {
		count = 5
	}
	qType := strings.TrimSpace(in.QType)
	if qType == "" {
		qType = "technical"
	}

	text, err := u.textFrom(in.Filename, in.FileData)
	if err != nil {
		return "", ErrResumeUnreadable
	}
	text = strings.TrimSpace(text)
	if len(text) < minResumeChars {
		return "", ErrResumeUnreadable
	}

	prompt := buildInterviewPrompt(role, company, qType, count, clipText(text, interviewPromptChars))
	return u.ai.Complete(ctx, prompt)
}

func (u *Interview) SavePrep(ctx context.Context, email, role, content string) error {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(content) == "" {
		return ErrInvalidInput
	}
	role = strings.TrimSpace(role)
	if role == "" {
		role = "General"
	}

	rep := report.Report{
		UserEmail: email,
		Role:      "Interview Prep: " + role,
		Content:   content,
		CreatedAt: u.now(),
	}
	if err := u.reports.Insert(ctx, rep); err != nil {
		return ErrInternal
	}
	return nil
}
