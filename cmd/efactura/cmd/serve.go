package cmd

import (
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rezonia/efactura/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for validating invoices.

The API provides endpoints for:
  - POST /api/v1/validate       - Validate a UBL or JSON invoice (?explain=true for advice)
  - GET  /api/v1/rules          - Rule catalog
  - GET  /metrics               - Prometheus metrics
  - GET  /health                - Health check

Examples:
  # Start server on default port
  efactura serve

  # Start on custom port with advice enabled
  efactura serve --port 9090 --api-key <key>

  # Start in debug mode
  efactura serve --debug`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	flags := serveCmd.Flags()
	flags.String("host", "0.0.0.0", "Listen host (env: EFACTURA_SERVER_HOST)")
	flags.Int("port", 8080, "Listen port (env: EFACTURA_SERVER_PORT)")
	flags.Bool("debug", false, "Enable debug mode (env: EFACTURA_SERVER_DEBUG)")
	flags.Duration("read-timeout", 0, "HTTP read timeout (env: EFACTURA_SERVER_READ_TIMEOUT)")
	flags.Duration("write-timeout", 0, "HTTP write timeout (env: EFACTURA_SERVER_WRITE_TIMEOUT)")

	_ = v.BindPFlag("server.host", flags.Lookup("host"))
	_ = v.BindPFlag("server.port", flags.Lookup("port"))
	_ = v.BindPFlag("server.debug", flags.Lookup("debug"))
	_ = v.BindPFlag("server.read_timeout", flags.Lookup("read-timeout"))
	_ = v.BindPFlag("server.write_timeout", flags.Lookup("write-timeout"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	config := &server.Config{
		Address:      net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		Debug:        cfg.Server.Debug,
	}

	opts := []server.Option{server.WithLogger(log)}
	if advisor := newAdvisor(cfg.Advisor, log); advisor != nil {
		opts = append(opts, server.WithAdvisor(advisor))
		log.Info("remediation advice enabled", "model", cfg.Advisor.Model)
	} else {
		log.Info("remediation advice disabled (no API key)")
	}

	return server.NewServer(config, opts...).Run(cmd.Context())
}
