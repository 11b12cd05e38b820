package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/efactura/internal/llm"
	"github.com/rezonia/efactura/internal/processor"
	"github.com/rezonia/efactura/internal/validation"
)

var (
	validateFormat string
	explain        bool
	runTimeout     time.Duration
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate invoice files",
	Long: `Validate one or more UBL or JSON invoices against EN 16931 and RO_CIUS.

Every violated rule is reported with its code, scope and message.
The exit status is 2 when any document is not compliant.

Examples:
  efactura validate invoice.xml
  efactura validate invoices/ --concurrency 8 -f table
  efactura validate invoice.xml --explain`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFormat, "format", "f", "json", "Output format (json, table)")
	validateCmd.Flags().BoolVar(&explain, "explain", false, "Ask the advice model how to fix rejected documents")
	validateCmd.Flags().Int("concurrency", 0, "Documents validated at once (env: EFACTURA_VALIDATION_CONCURRENCY)")
	validateCmd.Flags().DurationVar(&runTimeout, "timeout", 2*time.Minute, "Timeout for the whole run")

	_ = v.BindPFlag("validation.concurrency", validateCmd.Flags().Lookup("concurrency"))
}

// FileReport is the outcome for one file
type FileReport struct {
	File       string                 `json:"file"`
	Format     string                 `json:"format"`
	Valid      bool                   `json:"valid"`
	Error      string                 `json:"error,omitempty"`
	Number     string                 `json:"number,omitempty"`
	Romanian   bool                   `json:"romanian"`
	Violations []validation.Violation `json:"violations,omitempty"`
	Advice     *llm.Advice            `json:"advice,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to validate")
	}

	inputs := make([]processor.Input, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		inputs = append(inputs, processor.Input{Name: file, Data: data})
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), runTimeout)
	defer cancel()

	pipeline := processor.NewPipeline(
		processor.WithLogger(log),
		processor.WithConcurrency(cfg.Validation.Concurrency),
	)
	results, err := pipeline.ValidateBatch(ctx, inputs)
	if err != nil {
		return err
	}

	var advisor *llm.Advisor
	if explain {
		advisor = newAdvisor(cfg.Advisor, log)
		if advisor == nil {
			log.Warn("--explain ignored: no advisor API key configured")
		}
	}

	reports := make([]FileReport, 0, len(results))
	allValid := true
	for _, r := range results {
		report := buildReport(r)
		if !report.Valid {
			allValid = false
			if advisor != nil && r.Error == nil {
				advice, err := advisor.Advise(ctx, *r.Summary, r.Validation)
				if err != nil {
					log.Warn("advice failed", slog.String("file", r.Source), slog.String("error", err.Error()))
				}
				report.Advice = advice
			}
		}
		reports = append(reports, report)
	}

	if err := writeReports(cmd.OutOrStdout(), reports); err != nil {
		return err
	}

	if !allValid {
		return ErrInvalidDocuments
	}
	return nil
}

func buildReport(r *processor.Result) FileReport {
	report := FileReport{
		File:   r.Source,
		Format: string(r.Format),
		Valid:  r.Valid(),
	}
	if r.Error != nil {
		report.Error = r.Error.Error()
		return report
	}
	report.Number = r.Summary.Number
	report.Romanian = r.Summary.Romanian
	report.Violations = r.Validation.Violations
	return report
}

func writeReports(w io.Writer, reports []FileReport) error {
	switch validateFormat {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(reports)
	case "table":
		return writeReportTable(w, reports)
	default:
		return fmt.Errorf("unknown output format %q", validateFormat)
	}
}

func writeReportTable(w io.Writer, reports []FileReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tNUMBER\tFORMAT\tSTATUS\tCODE\tSCOPE\tMESSAGE")

	for _, r := range reports {
		switch {
		case r.Error != "":
			fmt.Fprintf(tw, "%s\t%s\t%s\tERROR\t\t\t%s\n", r.File, r.Number, r.Format, r.Error)
		case r.Valid:
			fmt.Fprintf(tw, "%s\t%s\t%s\tVALID\t\t\t\n", r.File, r.Number, r.Format)
		default:
			for _, v := range r.Violations {
				fmt.Fprintf(tw, "%s\t%s\t%s\tINVALID\t%s\t%s\t%s\n", r.File, r.Number, r.Format, v.Code, v.Scope, v.Message)
			}
		}
		if r.Advice != nil {
			for _, fix := range r.Advice.Fixes {
				fmt.Fprintf(tw, "%s\t%s\t%s\tADVICE\t%s\t%s\t%s\n", r.File, r.Number, r.Format, fix.Code, fix.Scope, fix.Suggestion)
			}
		}
	}
	return tw.Flush()
}
