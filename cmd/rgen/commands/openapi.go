package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/rgen/pkg/openapi"
	"github.com/abdul-hamid-achik/rgen/pkg/scanner"
)

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Export routes as an OpenAPI specification",
	Long: `Export the extracted routes as an OpenAPI 3.0 document.

Every case becomes a GET operation on its match pattern. Parameters named
by a path placeholder are path parameters; the rest are query parameters,
required unless their type is optional.

Examples:
  rgen openapi -i Router.swift
  rgen openapi -i Router.swift --output api.yaml --format yaml
  rgen openapi -i Router.swift --title "My API" --version 2.0.0`,
	Run: runOpenAPI,
}

// Flags
var (
	openapiOutput    string
	openapiFormat    string
	openapiTitle     string
	openapiVersion   string
	openapiDesc      string
	openapiServerURL string
)

func init() {
	addInputFlags(openapiCmd)
	openapiCmd.Flags().StringVarP(&openapiOutput, "output", "o", "openapi.json", "Output file path")
	openapiCmd.Flags().StringVarP(&openapiFormat, "format", "f", "", "Output format (json|yaml, default: from the output extension)")
	openapiCmd.Flags().StringVar(&openapiTitle, "title", "", "API title (defaults to the input file name)")
	openapiCmd.Flags().StringVar(&openapiVersion, "version", "1.0.0", "API version")
	openapiCmd.Flags().StringVar(&openapiDesc, "description", "", "API description")
	openapiCmd.Flags().StringVar(&openapiServerURL, "server", "", "Server URL (e.g., https://api.example.com)")
}

func runOpenAPI(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("invalid configuration", err)
	}

	if !jsonOutput {
		fmt.Printf("\n  %s OpenAPI\n\n", cyan("rgen"))
		fmt.Printf("  → Scanning %s...\n", cfg.Input)
	}

	groups, err := scanner.NewScanner(nil).ScanFile(cfg.Input)
	if err != nil {
		fail("scan failed", err)
	}

	title := openapiTitle
	if title == "" {
		title = titleFromInput(cfg.Input)
	}
	oc := openapi.Config{
		Title:       title,
		Version:     openapiVersion,
		Description: openapiDesc,
	}
	if openapiServerURL != "" {
		oc.Servers = []string{openapiServerURL}
	}

	doc, skipped := openapi.NewGenerator(oc).Generate(groups)
	format := formatForOutput(openapiOutput, openapiFormat)
	if err := openapi.WriteToFile(doc, openapiOutput, format); err != nil {
		fail("failed to write spec", err)
	}

	var size string
	if info, err := os.Stat(openapiOutput); err == nil {
		size = formatBytes(info.Size())
	}

	if jsonOutput {
		out := OpenAPIOutput{
			File:    openapiOutput,
			Format:  format,
			Version: doc.OpenAPI,
			Paths:   doc.Paths.Len(),
			Size:    size,
		}
		for _, s := range skipped {
			out.Skipped = append(out.Skipped, openapiSkipInfo{Case: s.Group + "." + s.Case, Path: s.Path, ClaimedBy: s.ClaimBy})
		}
		printSuccess(out)
		return
	}

	for _, s := range skipped {
		fmt.Printf("  %s %s.%s skipped: %s already used by %s\n", yellow("Warning:"), s.Group, s.Case, s.Path, s.ClaimBy)
	}
	fmt.Printf("  %s Spec generated\n\n", green("✓"))
	fmt.Printf("  Output:  %s\n", green(openapiOutput))
	fmt.Printf("  Format:  OpenAPI %s (%s)\n", doc.OpenAPI, format)
	fmt.Printf("  Paths:   %d\n", doc.Paths.Len())
	fmt.Printf("  Size:    %s\n\n", dim(size))
}

// titleFromInput derives an API title from the input file name.
func titleFromInput(input string) string {
	name := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	if name == "" || name == "." {
		return "API"
	}
	return name + " API"
}

// formatForOutput returns the explicit format, or one derived from the
// output extension.
func formatForOutput(output, format string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
