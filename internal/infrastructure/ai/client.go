package ai

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"career-compass/internal/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var (
	// ErrUnavailable is any completion failure other than a timeout.
	ErrUnavailable = errors.New("ai service unavailable")
	ErrTimeout     = errors.New("ai service timed out")
)

// Completer is the single-shot prompt-in, text-out contract the usecases
// consume. The returned text is fence-stripped but otherwise unvalidated.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type llmClient struct {
	model   llms.Model
	timeout time.Duration
	logger  *log.Logger
}

// NewClient builds a completion client against an OpenAI-compatible endpoint
// (the hosted deployment points it at Groq).
func NewClient(cfg config.AIConfig, logger *log.Logger) (Completer, error) {
	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		opts = append(opts, openai.WithBaseURL(base))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &llmClient{model: model, timeout: timeout, logger: logger}, nil
}

func (c *llmClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.model == nil {
		return "", ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return "", ErrTimeout
		}
		if c.logger != nil {
			c.logger.Printf("[AI] completion failed: %v", err)
		}
		return "", ErrUnavailable
	}

	return StripFences(out), nil
}

// StripFences removes markdown code-fence markers the model sometimes wraps
// its output in. Everything else passes through unchanged.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"```html", "```json", "```"} {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimPrefix(s, prefix)
			break
		}
	}
	s = strings.TrimLeft(s, "\r\n")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

var _ Completer = (*llmClient)(nil)
