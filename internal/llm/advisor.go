package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rezonia/efactura/internal/logger"
	"github.com/rezonia/efactura/internal/model"
	"github.com/rezonia/efactura/internal/validation"
)

// ErrNoViolations is returned when advice is requested for a valid invoice
var ErrNoViolations = errors.New("no violations to explain")

// Fix is the suggested remediation of one violation
type Fix struct {
	Code       string `json:"code"`
	Scope      string `json:"scope,omitempty"`
	Element    string `json:"element,omitempty"`
	Suggestion string `json:"suggestion"`
}

// Advice is the model's remediation plan for a rejected invoice.
// It is informational only; validity is decided by the rule engine.
type Advice struct {
	Summary string `json:"summary"`
	Fixes   []Fix  `json:"fixes"`
	Model   string `json:"model"`
}

// Chatter is the chat capability the advisor needs
type Chatter interface {
	ChatText(ctx context.Context, model, systemPrompt, userPrompt string) (string, error)
}

// Advisor asks a language model how to fix reported violations
type Advisor struct {
	client Chatter
	model  string
	logger *slog.Logger
}

// AdvisorOption configures the advisor
type AdvisorOption func(*Advisor)

// WithModel sets the model used for advice
func WithModel(model string) AdvisorOption {
	return func(a *Advisor) {
		a.model = model
	}
}

// WithAdvisorLogger sets the logger
func WithAdvisorLogger(l *slog.Logger) AdvisorOption {
	return func(a *Advisor) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAdvisor creates an advisor on top of client
func NewAdvisor(client Chatter, opts ...AdvisorOption) *Advisor {
	a := &Advisor{
		client: client,
		logger: logger.Discard(),
	}
	if c, ok := client.(*Client); ok {
		a.model = c.DefaultModel()
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Advise explains the violations of res and proposes fixes
func (a *Advisor) Advise(ctx context.Context, summary model.Summary, res *validation.Result) (*Advice, error) {
	if res == nil || len(res.Violations) == 0 {
		return nil, ErrNoViolations
	}

	summaryJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode summary: %w", err)
	}

	prompt := fmt.Sprintf(UserPromptRemediation, summaryJSON, formatViolations(res.Violations))

	response, err := a.client.ChatText(ctx, a.model, SystemPromptRemediation, prompt)
	if err != nil {
		return nil, err
	}

	var advice Advice
	if err := json.Unmarshal([]byte(ExtractJSON(response)), &advice); err != nil {
		a.logger.Warn("unparsable advice", slog.String("response", truncate(response, 200)))
		return nil, fmt.Errorf("failed to parse advice: %w", err)
	}
	advice.Model = a.model

	a.logger.Debug("advice received",
		slog.String("invoice", summary.Number),
		slog.Int("violations", len(res.Violations)),
		slog.Int("fixes", len(advice.Fixes)),
	)
	return &advice, nil
}

func formatViolations(violations []validation.Violation) string {
	var b strings.Builder
	for i, v := range violations {
		fmt.Fprintf(&b, "%d. [%s] (%s) %s\n", i+1, v.Code, v.Scope, v.Message)
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
