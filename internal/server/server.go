package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rezonia/efactura/internal/llm"
	"github.com/rezonia/efactura/internal/logger"
	"github.com/rezonia/efactura/internal/metrics"
	"github.com/rezonia/efactura/internal/model"
	"github.com/rezonia/efactura/internal/processor"
	"github.com/rezonia/efactura/internal/validation"
)

// DefaultMaxBodyBytes bounds the size of a submitted document
const DefaultMaxBodyBytes = 10 << 20

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxBodyBytes int64
	Debug        bool
}

// Advisor explains violations; satisfied by *llm.Advisor
type Advisor interface {
	Advise(ctx context.Context, summary model.Summary, res *validation.Result) (*llm.Advice, error)
}

// Server represents the HTTP API server
type Server struct {
	config    *Config
	router    *gin.Engine
	pipeline  *processor.Pipeline
	validator *validation.Validator
	advisor   Advisor
	metrics   *metrics.Metrics
	registry  *prometheus.Registry
	logger    *slog.Logger
}

// Option configures the server
type Option func(*Server)

// WithAdvisor enables ?explain=true on the validate endpoint
func WithAdvisor(a Advisor) Option {
	return func(s *Server) {
		s.advisor = a
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithValidator sets the rule engine used by the pipeline
func WithValidator(v *validation.Validator) Option {
	return func(s *Server) {
		s.validator = v
	}
}

// NewServer creates a new API server. Metrics are registered on a registry
// owned by the server and exposed on /metrics.
func NewServer(config *Config, opts ...Option) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = DefaultMaxBodyBytes
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Server{
		config:   config,
		router:   gin.New(),
		registry: registry,
		metrics:  metrics.New(registry),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.pipeline = processor.NewPipeline(
		processor.WithValidator(s.validator),
		processor.WithMetrics(s.metrics),
		processor.WithLogger(s.logger),
	)

	s.router.Use(gin.Recovery(), requestID(), requestLogger(s.logger, s.metrics))
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// Prometheus scrape endpoint
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/validate", s.handleValidate)
		v1.GET("/rules", s.handleRules)
	}
}

// Run starts the HTTP server and shuts it down gracefully when ctx is done
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("address", s.config.Address))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"time":    time.Now().UTC().Format(time.RFC3339),
		"advisor": s.advisor != nil,
	})
}

func (s *Server) handleValidate(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.config.MaxBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(c, http.StatusRequestEntityTooLarge, "request body too large", "limit is "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes", "")
			return
		}
		s.fail(c, http.StatusBadRequest, "failed to read request body", err.Error(), "")
		return
	}

	if len(body) == 0 {
		s.fail(c, http.StatusBadRequest, "empty request body", "", "")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	result := s.pipeline.Process(ctx, body)
	if result.Error != nil {
		var parseErr *model.ParseError
		if errors.As(result.Error, &parseErr) {
			s.fail(c, http.StatusUnprocessableEntity, "failed to decode document", result.Error.Error(), result.Format)
			return
		}
		s.fail(c, http.StatusInternalServerError, "validation failed", result.Error.Error(), result.Format)
		return
	}

	response := ValidationResponse{
		Valid:      result.Valid(),
		Format:     result.Format,
		Summary:    result.Summary,
		Violations: result.Validation.Violations,
		DurationMS: float64(result.Duration.Microseconds()) / 1000,
	}

	if explain, _ := strconv.ParseBool(c.Query("explain")); explain && !response.Valid {
		s.explain(ctx, c.GetString(requestIDKey), result, &response)
	}

	c.JSON(http.StatusOK, response)
}

// explain attaches remediation advice; failures never change the verdict
func (s *Server) explain(ctx context.Context, id string, result *processor.Result, response *ValidationResponse) {
	if s.advisor == nil {
		response.AdviceError = "advisor not configured"
		return
	}
	advice, err := s.advisor.Advise(ctx, *result.Summary, result.Validation)
	if err != nil {
		s.logger.Warn("advice failed", slog.String("request_id", id), slog.String("error", err.Error()))
		response.AdviceError = err.Error()
		return
	}
	response.Advice = advice
}

func (s *Server) handleRules(c *gin.Context) {
	rules := validation.Catalog()
	c.JSON(http.StatusOK, RulesResponse{
		Count: len(rules),
		Rules: rules,
	})
}

func (s *Server) fail(c *gin.Context, status int, message, details string, format model.Format) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Details:   details,
		Format:    format,
		RequestID: c.GetString(requestIDKey),
	})
}
