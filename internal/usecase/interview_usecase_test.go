package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func interviewResume(_ string, _ []byte) (string, error) {
	return strings.Repeat("golang kubernetes postgres ", 5), nil
}

func TestInterview_GenerateRequiresRoleAndCompany(t *testing.T) {
	uc := NewInterviewUsecase(&memReportRepo{}, &fakeCompleter{output: "q"})
	uc.textFrom = interviewResume

	if _, err := uc.Generate(context.Background(), GenerateInterviewInput{Company: "Acme"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing role: got %v", err)
	}
	if _, err := uc.Generate(context.Background(), GenerateInterviewInput{Role: "SRE"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("missing company: got %v", err)
	}
}

func TestInterview_GenerateDefaultsCountAndType(t *testing.T) {
	completer := &fakeCompleter{output: "1. question"}
	uc := NewInterviewUsecase(&memReportRepo{}, completer)

	var prompt string
	uc.textFrom = interviewResume
	uc.ai = completerFunc(func(_ context.Context, p string) (string, error) {
		prompt = p
		return "1. question", nil
	})

	out, err := uc.Generate(context.Background(), GenerateInterviewInput{
		Role: "SRE", Company: "Acme", Count: 0, QType: "",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out != "1. question" {
		t.Fatalf("out = %q", out)
	}
	if !strings.Contains(prompt, "5") || !strings.Contains(prompt, "technical") {
		t.Fatalf("defaults missing from prompt: %q", prompt)
	}
}

func TestInterview_GenerateCapsCount(t *testing.T) {
	uc := NewInterviewUsecase(&memReportRepo{}, nil)
	uc.textFrom = interviewResume

	var prompt string
	uc.ai = completerFunc(func(_ context.Context, p string) (string, error) {
		prompt = p
		return "ok", nil
	})

	if _, err := uc.Generate(context.Background(), GenerateInterviewInput{Role: "SRE", Company: "Acme", Count: 50}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if strings.Contains(prompt, "50") {
		t.Fatalf("oversized count leaked into prompt: %q", prompt)
	}
}

func TestInterview_ShortResumeNeverReachesModel(t *testing.T) {
	completer := &fakeCompleter{output: "q"}
	uc := NewInterviewUsecase(&memReportRepo{}, completer)
	uc.textFrom = func(_ string, _ []byte) (string, error) { return "too short", nil }

	if _, err := uc.Generate(context.Background(), GenerateInterviewInput{Role: "SRE", Company: "Acme"}); !errors.Is(err, ErrResumeUnreadable) {
		t.Fatalf("expected ErrResumeUnreadable, got %v", err)
	}
	if completer.calls != 0 {
		t.Fatalf("model called %d times", completer.calls)
	}
}

func TestInterview_SavePrepDefaultsRole(t *testing.T) {
	repo := &memReportRepo{}
	uc := NewInterviewUsecase(repo, nil)

	if err := uc.SavePrep(context.Background(), "a@b.com", "   ", "<div>prep</div>"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if repo.rows[0].Role != "Interview Prep: General" {
		t.Fatalf("role = %q", repo.rows[0].Role)
	}

	if err := uc.SavePrep(context.Background(), "a@b.com", "SRE", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty content: got %v", err)
	}
}

type completerFunc func(ctx context.Context, prompt string) (string, error)

func (f completerFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
