package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/rgen/internal/version"
	"github.com/abdul-hamid-achik/rgen/pkg/scanner"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the extracted route model",
	Long: `Print the groups, cases, parameters, path templates and binding slots
extracted from a Swift source file. Nothing is written to disk.

Examples:
  rgen inspect -i Router.swift
  rgen inspect -i Router.swift --format yaml
  rgen inspect -i Router.swift --format table`,
	Run: runInspect,
}

var inspectFormat string

func init() {
	addInputFlags(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "table", "Output format (table|json|yaml)")
}

func runInspect(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("invalid configuration", err)
	}

	groups, err := scanner.NewScanner(nil).ScanFile(cfg.Input)
	if err != nil {
		fail("scan failed", err)
	}

	model := newInspectOutput(cfg.Input, groups)
	if jsonOutput {
		printSuccess(model)
		return
	}
	if err := writeModel(os.Stdout, model, inspectFormat); err != nil {
		fail("inspect failed", err)
	}
}

func newInspectOutput(input string, groups []scanner.Group) InspectOutput {
	total := 0
	for _, g := range groups {
		total += len(g.Cases)
	}
	return InspectOutput{
		Schema:    version.ModelSchemaVersion,
		Input:     input,
		Groups:    groups,
		Total:     total,
		Conflicts: scanner.DetectConflicts(groups),
	}
}

// writeModel renders model in the given format.
func writeModel(w io.Writer, model InspectOutput, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(model)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(model); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		writeTable(w, model)
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (use table, json or yaml)", format)
	}
}

func writeTable(w io.Writer, model InspectOutput) {
	cyan := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	for _, g := range model.Groups {
		fmt.Fprintf(w, "\n  %s %s\n\n", cyan(g.Name), dim(fmt.Sprintf("(%d cases)", len(g.Cases))))
		for _, c := range g.Cases {
			fmt.Fprintf(w, "    %-20s %-30s %s\n", c.Identifier, c.Pattern, dim(c.PathTemplate))
			if len(c.Params) > 0 {
				fmt.Fprintf(w, "    %-20s %s\n", "", dim("params: "+c.ParamNames()))
			}
			if c.HasParametersInPath() {
				fmt.Fprintf(w, "    %-20s %s\n", "", dim("binds:  "+c.BindingList()))
			}
		}
	}
	for _, c := range model.Conflicts {
		fmt.Fprintf(w, "\n  %s %s\n", yellow("Warning:"), c.Message)
	}
	fmt.Fprintf(w, "\n  Total: %d cases\n\n", model.Total)
}
