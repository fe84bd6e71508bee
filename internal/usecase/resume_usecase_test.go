package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"career-compass/internal/domain/report"
)

type memReportRepo struct {
	rows []report.Report
}

func (m *memReportRepo) Insert(_ context.Context, rep report.Report) error {
	rep.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, rep)
	return nil
}

func (m *memReportRepo) GetByID(_ context.Context, id int64) (report.Report, error) {
	for _, r := range m.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return report.Report{}, report.ErrNotFound
}

func (m *memReportRepo) ListRecentByUser(_ context.Context, email string, limit int) ([]report.Report, error) {
	out := make([]report.Report, 0)
	for i := len(m.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if m.rows[i].UserEmail == email {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

func (m *memReportRepo) Count(_ context.Context) (int, error) { return len(m.rows), nil }

type fakeCompleter struct {
	calls  int
	output string
	err    error
}

func (f *fakeCompleter) Complete(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func TestResumeAnalysis_TooShortRejectedBeforeUpstream(t *testing.T) {
	completer := &fakeCompleter{output: "<div>ok</div>"}
	uc := NewResumeAnalysisUsecase(&memReportRepo{}, completer, nil)
	uc.textFrom = func(_ string, _ []byte) (string, error) { return "tiny", nil }

	_, err := uc.Analyze(context.Background(), "a@b.com", AnalyzeResumeInput{
		TargetRole: "Backend Engineer",
		Filename:   "resume.pdf",
	})
	if !errors.Is(err, ErrResumeUnreadable) {
		t.Fatalf("expected ErrResumeUnreadable, got %v", err)
	}
	if completer.calls != 0 {
		t.Fatalf("unreadable resume must not reach the model, calls=%d", completer.calls)
	}
}

func TestResumeAnalysis_SavesReport(t *testing.T) {
	repo := &memReportRepo{}
	completer := &fakeCompleter{output: "<div>analysis</div>"}
	uc := NewResumeAnalysisUsecase(repo, completer, nil)
	uc.textFrom = func(_ string, _ []byte) (string, error) {
		return strings.Repeat("experienced golang developer ", 10), nil
	}

	rep, err := uc.Analyze(context.Background(), "a@b.com", AnalyzeResumeInput{
		TargetRole: "Backend Engineer",
		Filename:   "resume.pdf",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rep.Content != "<div>analysis</div>" {
		t.Fatalf("content = %q", rep.Content)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected 1 stored report, got %d", len(repo.rows))
	}
	if repo.rows[0].Role != "Backend Engineer" {
		t.Fatalf("stored role = %q", repo.rows[0].Role)
	}
}

func TestResumeAnalysis_MissingRoleRejected(t *testing.T) {
	uc := NewResumeAnalysisUsecase(&memReportRepo{}, &fakeCompleter{}, nil)
	_, err := uc.Analyze(context.Background(), "a@b.com", AnalyzeResumeInput{Filename: "resume.pdf"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestInterview_SavePrepPrefixesRole(t *testing.T) {
	repo := &memReportRepo{}
	uc := NewInterviewUsecase(repo, &fakeCompleter{})

	if err := uc.SavePrep(context.Background(), "a@b.com", "SRE", "<div>prep</div>"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(repo.rows))
	}
	if repo.rows[0].Role != "Interview Prep: SRE" {
		t.Fatalf("role = %q", repo.rows[0].Role)
	}
}
