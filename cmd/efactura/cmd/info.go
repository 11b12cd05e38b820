package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/efactura/internal/model"
	"github.com/rezonia/efactura/internal/parser/ubl"
	"github.com/rezonia/efactura/internal/processor"
)

var infoCmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Show information about invoice files",
	Long: `Display information about invoice files without validating them.

Shows:
  - Detected document format (UBL Invoice, UBL CreditNote, JSON)
  - Whether the Romanian profile applies
  - Number, type code, currency, payable amount, line and VAT breakdown counts

Examples:
  efactura info invoice.xml
  efactura info invoices/`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no files found")
	}

	out := cmd.OutOrStdout()
	registry := ubl.NewRegistry()
	for _, file := range files {
		printFileInfo(cmd, out, registry, file)
		fmt.Fprintln(out)
	}

	return nil
}

func printFileInfo(cmd *cobra.Command, out io.Writer, registry *ubl.Registry, filePath string) {
	fmt.Fprintf(out, "File: %s\n", filePath)

	info, err := os.Stat(filePath)
	if err != nil {
		fmt.Fprintf(out, "  Error: %v\n", err)
		return
	}

	fmt.Fprintf(out, "  Size: %d bytes\n", info.Size())
	fmt.Fprintf(out, "  Modified: %s\n", info.ModTime().Format("2006-01-02 15:04:05"))

	data, err := os.ReadFile(filePath)
	if err != nil {
		fmt.Fprintf(out, "  Error reading file: %v\n", err)
		return
	}

	format := processor.DetectFormat(data)
	fmt.Fprintf(out, "  Format: %s\n", formatName(format))

	if format != model.FormatUBLInvoice && format != model.FormatUBLCreditNote {
		return
	}

	inv, _, err := registry.Parse(cmd.Context(), data)
	if err != nil {
		fmt.Fprintf(out, "  Error decoding: %v\n", err)
		return
	}

	s := inv.Summary()
	fmt.Fprintf(out, "  Number: %s\n", s.Number)
	fmt.Fprintf(out, "  Type code: %s\n", s.TypeCode)
	fmt.Fprintf(out, "  Currency: %s\n", s.Currency)
	fmt.Fprintf(out, "  Payable: %s\n", s.PayableAmount.StringFixed(2))
	fmt.Fprintf(out, "  Romanian profile: %t\n", s.Romanian)
	fmt.Fprintf(out, "  Lines: %d, VAT breakdowns: %d\n", s.LineCount, s.BreakdownCount)
}

func formatName(f model.Format) string {
	switch f {
	case model.FormatUBLInvoice:
		return "UBL 2.1 Invoice"
	case model.FormatUBLCreditNote:
		return "UBL 2.1 CreditNote"
	case model.FormatJSON:
		return "JSON"
	default:
		return "Unknown"
	}
}
