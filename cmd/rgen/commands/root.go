// Package commands provides the CLI commands for rgen.
package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/rgen/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rgen",
	Short: "rgen - Swift route accessor generator",
	Long: `rgen extracts annotated route enums from Swift source and generates
pattern, path and parameters accessors for every case.

Annotate cases with a match pattern:
  enum Router {
      /// @pattern /users/:id
      case user(id: Int)
      case settings
  }

Quick Start:
  rgen init                   Create rgen.yaml
  rgen generate -i Router.swift
  rgen inspect -i Router.swift --format yaml
  rgen openapi -i Router.swift -o openapi.json
  rgen watch                  Regenerate on change
  rgen mcp                    Serve tools for LLM agents over stdio`,
	Version: version.GetInfo().String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if jsonOutput || !isatty.IsTerminal(os.Stdout.Fd()) {
			color.NoColor = true
		}
	},
}

// configFile is the global --config flag
var configFile string

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for automation and LLM agents)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ./rgen.yaml)")

	rootCmd.SetVersionTemplate("rgen {{.Version}}\n")

	// Commands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(openapiCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(mcpCmd)
}
