// Package mcp exposes route extraction and code generation as MCP tools.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdul-hamid-achik/rgen/internal/version"
)

// Server is an MCP server rooted at a working directory.
type Server struct {
	workdir   string
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// NewServer creates a Server with all tools registered. Relative paths in
// tool arguments resolve against workdir.
func NewServer(workdir string) *Server {
	s := &Server{
		workdir: workdir,
		mcpServer: server.NewMCPServer(
			"rgen",
			version.GetVersion(),
			server.WithToolCapabilities(false),
		),
		logger: slog.Default(),
	}
	s.registerTools()
	return s
}

// WithLogger sets the logger used for tool diagnostics.
func (s *Server) WithLogger(logger *slog.Logger) *Server {
	if logger != nil {
		s.logger = logger
	}
	return s
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("rgen_extract",
		mcp.WithDescription("Extract annotated route enums from Swift source into groups, cases, parameters and path templates"),
		mcp.WithString("path", mcp.Description("Swift source file, relative to the working directory")),
		mcp.WithString("source", mcp.Description("Swift source text; used when path is empty")),
	), s.handleExtract)

	s.mcpServer.AddTool(mcp.NewTool("rgen_generate",
		mcp.WithDescription("Render Swift route accessors for a source file"),
		mcp.WithString("input", mcp.Required(), mcp.Description("Swift source file, relative to the working directory")),
		mcp.WithString("output", mcp.Description("Output file (default: Router.Generate.swift next to the input)")),
		mcp.WithString("emitter", mcp.Description("Emitter kind: template or builder"), mcp.Enum("template", "builder")),
		mcp.WithString("template", mcp.Description("Template name searched in the template directories")),
		mcp.WithBoolean("write", mcp.Description("Write the output file instead of returning the rendered code")),
	), s.handleGenerate)

	s.mcpServer.AddTool(mcp.NewTool("rgen_openapi",
		mcp.WithDescription("Export the extracted routes as an OpenAPI document, listing cases skipped because an earlier case claimed their path"),
		mcp.WithString("input", mcp.Required(), mcp.Description("Swift source file, relative to the working directory")),
		mcp.WithString("title", mcp.Description("API title")),
		mcp.WithString("format", mcp.Description("json or yaml"), mcp.Enum("json", "yaml")),
	), s.handleOpenAPI)
}

// ServeStdio serves the MCP protocol on stdin/stdout until EOF.
func (s *Server) ServeStdio() error {
	s.logger.Info("mcp server listening on stdio", "workdir", s.workdir)
	return server.ServeStdio(s.mcpServer)
}
