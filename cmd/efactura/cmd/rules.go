package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rezonia/efactura/internal/validation"
)

var rulesFormat string

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the business rules enforced by the validator",
	Long: `Print the rule catalog: every code the validator can report, the scope it
is attached to and its message.

Examples:
  efactura rules
  efactura rules -f yaml > rules.yaml
  efactura rules -f table`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)

	rulesCmd.Flags().StringVarP(&rulesFormat, "format", "f", "table", "Output format (json, yaml, table)")
}

func runRules(cmd *cobra.Command, args []string) error {
	return writeRules(cmd.OutOrStdout(), rulesFormat, validation.Catalog())
}

func writeRules(w io.Writer, format string, rules []validation.RuleInfo) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rules)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(rules); err != nil {
			return err
		}
		return encoder.Close()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tSCOPE\tMESSAGE")
		for _, r := range rules {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Code, r.Scope, r.Message)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
