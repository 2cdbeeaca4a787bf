package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/rgen/pkg/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve rgen tools over the Model Context Protocol",
	Long: `Start an MCP server on stdin/stdout exposing:

  rgen_extract    Extract the route model from a file or source text
  rgen_generate   Render (and optionally write) Swift accessors
  rgen_openapi    Export the routes as an OpenAPI document

Relative paths resolve against --workdir.

Examples:
  rgen mcp
  rgen mcp --workdir ./ios`,
	Run: runMCP,
}

var mcpWorkdir string

func init() {
	mcpCmd.Flags().StringVarP(&mcpWorkdir, "workdir", "w", ".", "Working directory for relative paths")
}

func runMCP(cmd *cobra.Command, args []string) {
	workdir := mcpWorkdir
	if workdir == "" {
		workdir, _ = os.Getwd()
	}

	server := mcp.NewServer(workdir).WithLogger(newLogger())
	if err := server.ServeStdio(); err != nil {
		fail("mcp server stopped", err)
	}
}
