package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/rgen/pkg/config"
	"github.com/abdul-hamid-achik/rgen/pkg/generator"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate Swift route accessors",
	Long: `Scan a Swift source file for annotated route enums and write the
pattern, path and parameters accessors for every case.

The output defaults to Router.Generate.swift next to the input. A named
template is searched in ./tmpl and ./Pods/RGenerator/tmpl, with or without
a .tmpl suffix.

Examples:
  rgen generate -i Sources/App/Router.swift
  rgen gen -i Router.swift -o Generated/Router.swift
  rgen generate -i Router.swift -t custom --template-dir templates
  rgen generate -i Router.swift --emitter builder`,
	Run: runGenerate,
}

func init() {
	addInputFlags(generateCmd)
	generateCmd.Flags().StringP("output", "o", "", "Output file (default: Router.Generate.swift next to the input)")
	generateCmd.Flags().StringP("template", "t", "", "Template name (default: built-in Swift accessors)")
	generateCmd.Flags().StringSlice("template-dir", nil, "Template search directories (default: tmpl, Pods/RGenerator/tmpl)")
	generateCmd.Flags().String("emitter", "", "Emitter: template or builder")
}

func runGenerate(cmd *cobra.Command, args []string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	cfg, err := loadConfig(cmd)
	if err != nil {
		if errors.Is(err, config.ErrMissingInput) && !jsonOutput {
			_ = cmd.Usage()
		}
		fail("invalid configuration", err)
	}

	if !jsonOutput {
		fmt.Printf("\n  %s Generate\n\n", cyan("rgen"))
		fmt.Printf("  → Scanning %s...\n", cfg.Input)
	}

	result, err := generator.Generate(cfg.GeneratorConfig())
	if err != nil {
		fail("generation failed", err)
	}

	if jsonOutput {
		printSuccess(newGenerateOutput(result, cfg.Emitter))
		return
	}

	fmt.Printf("  %s Found %d groups, %d cases\n", green("✓"), len(result.Groups), result.Cases())
	for _, c := range result.Conflicts {
		fmt.Printf("  %s %s\n", yellow("Warning:"), c.Message)
	}
	fmt.Printf("  %s Generated %s %s\n\n", green("✓"), green(filepath.Clean(result.Output)), dim(formatBytes(int64(result.Bytes))))
}
