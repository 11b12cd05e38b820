// Package processor turns raw documents into validation results: it detects
// the wire format, decodes the document, runs the rule engine and records
// metrics for every document it sees.
package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rezonia/efactura/internal/logger"
	"github.com/rezonia/efactura/internal/metrics"
	"github.com/rezonia/efactura/internal/model"
	"github.com/rezonia/efactura/internal/parser/ubl"
	"github.com/rezonia/efactura/internal/validation"
)

// DefaultConcurrency bounds batch validation when no limit is configured
const DefaultConcurrency = 4

// Result is the outcome of processing one document. Error is set when the
// document could not be decoded; Validation is nil in that case.
type Result struct {
	Source     string             `json:"source,omitempty"`
	Format     model.Format       `json:"format"`
	Summary    *model.Summary     `json:"summary,omitempty"`
	Validation *validation.Result `json:"validation,omitempty"`
	Duration   time.Duration      `json:"-"`
	Error      error              `json:"-"`
}

// Valid reports whether the document decoded and passed every rule
func (r *Result) Valid() bool {
	return r.Error == nil && r.Validation != nil && r.Validation.Valid
}

// Input is one named document of a batch
type Input struct {
	Name string
	Data []byte
}

// Pipeline decodes and validates documents
type Pipeline struct {
	registry    *ubl.Registry
	validator   *validation.Validator
	metrics     *metrics.Metrics
	logger      *slog.Logger
	concurrency int
}

// PipelineOption configures pipeline
type PipelineOption func(*Pipeline)

// WithValidator sets the rule engine
func WithValidator(v *validation.Validator) PipelineOption {
	return func(p *Pipeline) {
		if v != nil {
			p.validator = v
		}
	}
}

// WithRegistry sets the UBL adapter registry
func WithRegistry(r *ubl.Registry) PipelineOption {
	return func(p *Pipeline) {
		if r != nil {
			p.registry = r
		}
	}
}

// WithMetrics sets the metrics sink
func WithMetrics(m *metrics.Metrics) PipelineOption {
	return func(p *Pipeline) {
		p.metrics = m
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithConcurrency bounds the number of documents validated at once by ValidateBatch
func WithConcurrency(n int) PipelineOption {
	return func(p *Pipeline) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// NewPipeline creates a new processing pipeline
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		registry:    ubl.NewRegistry(),
		validator:   validation.New(),
		logger:      logger.Discard(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultRegistry = ubl.NewRegistry()

// DetectFormat identifies the document format from content
func DetectFormat(data []byte) model.Format {
	return detectFormat(defaultRegistry, data)
}

func detectFormat(registry *ubl.Registry, data []byte) model.Format {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		return model.FormatUnknown
	case trimmed[0] == '{':
		return model.FormatJSON
	case ubl.IsXML(trimmed):
		if a, err := registry.Detect(trimmed); err == nil {
			return a.Format()
		}
	}
	return model.FormatUnknown
}

// Process decodes and validates one document
func (p *Pipeline) Process(ctx context.Context, data []byte) *Result {
	return p.process(ctx, "", data)
}

func (p *Pipeline) process(ctx context.Context, source string, data []byte) *Result {
	start := time.Now()
	result := &Result{Source: source, Format: detectFormat(p.registry, data)}

	inv, err := p.decode(ctx, result.Format, data)
	if err != nil {
		result.Error = err
		result.Duration = time.Since(start)
		p.record(result)
		return result
	}

	p.validate(inv, result)
	result.Duration = time.Since(start)
	p.record(result)
	return result
}

// ProcessReader reads r fully and processes it
func (p *Pipeline) ProcessReader(ctx context.Context, r io.Reader) *Result {
	data, err := io.ReadAll(r)
	if err != nil {
		result := &Result{
			Format: model.FormatUnknown,
			Error:  model.NewParseError(model.FormatUnknown, "content", "failed to read input", err),
		}
		p.record(result)
		return result
	}
	return p.Process(ctx, data)
}

// ProcessInvoice validates an already decoded invoice
func (p *Pipeline) ProcessInvoice(ctx context.Context, inv *model.Invoice) *Result {
	start := time.Now()
	result := &Result{Format: model.FormatJSON}
	if err := ctx.Err(); err != nil {
		result.Error = err
	} else {
		p.validate(inv, result)
	}
	result.Duration = time.Since(start)
	p.record(result)
	return result
}

// ValidateBatch processes inputs concurrently. Results keep input order;
// per-document failures are reported in each Result. The returned error is
// only set when ctx is cancelled.
func (p *Pipeline) ValidateBatch(ctx context.Context, inputs []Input) ([]*Result, error) {
	results := make([]*Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.process(gctx, in.Name, in.Data)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (p *Pipeline) decode(ctx context.Context, format model.Format, data []byte) (*model.Invoice, error) {
	switch format {
	case model.FormatUBLInvoice, model.FormatUBLCreditNote:
		adapter := p.registry.GetAdapter(format)
		if adapter == nil {
			return nil, model.NewParseError(format, "root", "no adapter registered", nil)
		}
		return adapter.Parse(ctx, bytes.NewReader(data))
	case model.FormatJSON:
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var inv model.Invoice
		if err := json.Unmarshal(data, &inv); err != nil {
			return nil, model.NewParseError(model.FormatJSON, "json", "failed to parse JSON", err)
		}
		return &inv, nil
	default:
		return nil, model.NewParseError(model.FormatUnknown, "content", "unsupported document format, expected UBL XML or JSON", nil)
	}
}

func (p *Pipeline) validate(inv *model.Invoice, result *Result) {
	res, err := p.validator.Validate(inv)
	if err != nil {
		result.Error = err
		return
	}
	summary := inv.Summary()
	result.Summary = &summary
	result.Validation = res
}

func (p *Pipeline) record(result *Result) {
	outcome := metrics.OutcomeError
	switch {
	case result.Error != nil:
	case result.Validation.Valid:
		outcome = metrics.OutcomeValid
	default:
		outcome = metrics.OutcomeInvalid
	}

	p.metrics.ObserveDocument(string(result.Format), outcome, result.Duration)

	if result.Error != nil {
		p.logger.Warn("document rejected",
			slog.String("source", result.Source),
			slog.String("format", string(result.Format)),
			slog.String("error", result.Error.Error()),
		)
		return
	}

	for _, v := range result.Validation.Violations {
		p.metrics.IncrementViolation(v.Code)
	}
	p.logger.Info("document validated",
		slog.String("source", result.Source),
		slog.String("format", string(result.Format)),
		slog.String("number", result.Summary.Number),
		slog.Bool("romanian", result.Summary.Romanian),
		slog.Bool("valid", result.Validation.Valid),
		slog.Int("violations", len(result.Validation.Violations)),
		slog.Int("lines", result.Summary.LineCount),
		slog.Duration("duration", result.Duration),
	)
}
