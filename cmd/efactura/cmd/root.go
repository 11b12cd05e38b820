package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rezonia/efactura/internal/config"
	"github.com/rezonia/efactura/internal/llm"
	"github.com/rezonia/efactura/internal/logger"
)

var version = "1.0.0"

// ErrInvalidDocuments is returned when at least one document failed validation
var ErrInvalidDocuments = errors.New("one or more documents are not compliant")

// v collects flags, EFACTURA_* environment variables and defaults
var v = config.New()

var rootCmd = &cobra.Command{
	Use:   "efactura",
	Short: "Validate Romanian e-Factura invoices (RO_CIUS / EN 16931)",
	Long: `efactura checks UBL 2.1 invoices and credit notes against the EN 16931
business rules and the Romanian RO_CIUS national profile.

Supports:
  - UBL 2.1 Invoice and CreditNote XML
  - JSON documents in the internal invoice model
  - Optional remediation advice from an OpenAI-compatible model

Examples:
  # Validate a single invoice
  efactura validate invoice.xml

  # Validate a directory, printing a table
  efactura validate invoices/ -f table

  # Ask for fixes when a document is rejected
  efactura validate invoice.xml --explain --api-key <openrouter-key>

  # List every rule the validator enforces
  efactura rules -f yaml

  # Serve the HTTP API
  efactura serve`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command; SIGINT and SIGTERM cancel its context
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "info", "Log level (debug, info, warn, error) (env: EFACTURA_LOG_LEVEL)")
	flags.String("log-format", "json", "Log format (json, text) (env: EFACTURA_LOG_FORMAT)")
	flags.String("api-key", "", "API key for the advice model (env: EFACTURA_ADVISOR_API_KEY)")
	flags.String("llm-base-url", "", "Advice model API base URL (env: EFACTURA_ADVISOR_BASE_URL)")
	flags.String("llm-model", "", "Advice model (env: EFACTURA_ADVISOR_MODEL)")

	// explicitly set flags override the environment
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = v.BindPFlag("advisor.api_key", flags.Lookup("api-key"))
	_ = v.BindPFlag("advisor.base_url", flags.Lookup("llm-base-url"))
	_ = v.BindPFlag("advisor.model", flags.Lookup("llm-model"))
}

// setup resolves configuration and builds the logger
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	format, err := logger.ParseFormat(cfg.Log.Format)
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(slog.String("version", version)),
	)
	return cfg, log, nil
}

// newAdvisor returns nil when no API key is configured
func newAdvisor(cfg config.AdvisorConfig, log *slog.Logger) *llm.Advisor {
	if !cfg.Enabled() {
		return nil
	}
	return llm.NewAdvisor(newLLMClient(cfg), llm.WithAdvisorLogger(log))
}

func newLLMClient(cfg config.AdvisorConfig) *llm.Client {
	return llm.NewClient(cfg.APIKey,
		llm.WithBaseURL(cfg.BaseURL),
		llm.WithDefaultModel(cfg.Model),
		llm.WithTimeout(cfg.Timeout),
	)
}
