package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"career-compass/internal/domain/report"
	"career-compass/internal/infrastructure/ai"
	"career-compass/internal/pkg/extract"
	"career-compass/internal/repository"
)

// ErrResumeUnreadable rejects uploads that yield too little text to analyze.
// Checked before any upstream call is made.
var ErrResumeUnreadable = errors.New("resume too short or unreadable")

const (
	minResumeChars    = 50
	resumePromptChars = 3000
)

type AnalyzeResumeInput struct {
	TargetRole string
	Filename   string
	FileData   []byte
}

type ResumeAnalysisUsecase interface {
	Analyze(ctx context.Context, email string, in AnalyzeResumeInput) (report.Report, error)
}

type ResumeAnalysis struct {
	reports  repository.ReportRepository
	ai       ai.Completer
	logger   *log.Logger
	textFrom func(filename string, data []byte) (string, error)

	now func() time.Time
}

func NewResumeAnalysisUsecase(reports repository.ReportRepository, completer ai.Completer, logger *log.Logger) *ResumeAnalysis {
	return &ResumeAnalysis{
		reports:  reports,
		ai:       completer,
		logger:   logger,
		textFrom: extract.Text,
		now:      time.Now,
	}
}

func (u *ResumeAnalysis) Analyze(ctx context.Context, email string, in AnalyzeResumeInput) (report.Report, error) {
	role := strings.TrimSpace(in.TargetRole)
	if role == "" {
		return report.Report{}, ErrInvalidInput
	}

	text, err := u.textFrom(in.Filename, in.FileData)
	if err != nil {
		return report.Report{}, ErrResumeUnreadable
	}
	text = strings.TrimSpace(text)
	if len(text) < minResumeChars {
		return report.Report{}, ErrResumeUnreadable
	}

	prompt := buildResumeAuditPrompt(role, clipText(text, resumePromptChars))
	content, err := u.ai.Complete(ctx, prompt)
	if err != nil {
		return report.Report{}, err
	}

	rep := report.Report{
		UserEmail: email,
		Role:      role,
		Content:   content,
		CreatedAt: u.now(),
	}
	if err := u.reports.Insert(ctx, rep); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Resume] report insert failed email=%s err=%v", email, err)
		}
		return report.Report{}, ErrInternal
	}
	return rep, nil
}
