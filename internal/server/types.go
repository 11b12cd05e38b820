package server

import (
	"github.com/rezonia/efactura/internal/llm"
	"github.com/rezonia/efactura/internal/model"
	"github.com/rezonia/efactura/internal/validation"
)

// ValidationResponse is the response for validate endpoint
type ValidationResponse struct {
	Valid       bool                   `json:"valid"`
	Format      model.Format           `json:"format"`
	Summary     *model.Summary         `json:"summary,omitempty"`
	Violations  []validation.Violation `json:"violations"`
	Advice      *llm.Advice            `json:"advice,omitempty"`
	AdviceError string                 `json:"advice_error,omitempty"`
	DurationMS  float64                `json:"duration_ms"`
}

// RulesResponse is the response for rules endpoint
type RulesResponse struct {
	Count int                   `json:"count"`
	Rules []validation.RuleInfo `json:"rules"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error     string       `json:"error"`
	Details   string       `json:"details,omitempty"`
	Format    model.Format `json:"format,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
}
