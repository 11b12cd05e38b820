package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models offered by the advice endpoint",
	Long: `Fetch and list the models available at the configured OpenAI-compatible
endpoint. Requires EFACTURA_ADVISOR_API_KEY (or --api-key).

To pick a model for remediation advice, set:
  EFACTURA_ADVISOR_MODEL=<model-id>
or use --llm-model <model-id>.`,
	Args: cobra.NoArgs,
	RunE: runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Current Configuration:")
	fmt.Fprintln(out, "----------------------")
	fmt.Fprintf(out, "  Base URL: %s\n", cfg.Advisor.BaseURL)
	fmt.Fprintf(out, "  Model:    %s\n", cfg.Advisor.Model)
	fmt.Fprintf(out, "  API key:  %s\n", maskKey(cfg.Advisor.APIKey))
	fmt.Fprintln(out)

	if !cfg.Advisor.Enabled() {
		return fmt.Errorf("no API key configured: set EFACTURA_ADVISOR_API_KEY or --api-key")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	models, err := newLLMClient(cfg.Advisor).ListModels(ctx)
	if err != nil {
		return fmt.Errorf("could not fetch models: %w", err)
	}

	if len(models) == 0 {
		fmt.Fprintln(out, "No models returned from API.")
		return nil
	}

	sort.Slice(models, func(i, j int) bool {
		return models[i].ID < models[j].ID
	})

	fmt.Fprintf(out, "Available Models (%d):\n\n", len(models))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL ID\tOWNER\tCREATED")
	for _, m := range models {
		created := ""
		if m.Created > 0 {
			created = time.Unix(m.Created, 0).UTC().Format("2006-01-02")
		}
		owner := m.OwnedBy
		if owner == "" {
			owner = inferProvider(m.ID)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, owner, created)
	}
	return w.Flush()
}

func maskKey(key string) string {
	switch {
	case key == "":
		return "(not set)"
	case len(key) > 8:
		return key[:8] + "..."
	default:
		return "set"
	}
}

// inferProvider takes the provider from "provider/model" ids
func inferProvider(id string) string {
	if provider, _, ok := strings.Cut(id, "/"); ok {
		return provider
	}
	return "unknown"
}
