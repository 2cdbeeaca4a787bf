package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abdul-hamid-achik/rgen/pkg/generator"
	"github.com/abdul-hamid-achik/rgen/pkg/openapi"
	"github.com/abdul-hamid-achik/rgen/pkg/scanner"
)

func (s *Server) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.workdir, path)
}

func (s *Server) handleExtract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := req.GetString("path", "")
	source := req.GetString("source", "")

	var (
		groups []scanner.Group
		err    error
	)
	switch {
	case path != "":
		groups, err = scanner.NewScanner(nil).ScanFile(s.resolve(path))
	case source != "":
		groups, err = scanner.Scan(source)
	default:
		return mcp.NewToolResultError("either path or source is required"), nil
	}
	if err != nil {
		s.logger.Warn("extract failed", "path", path, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	cases := 0
	for _, g := range groups {
		cases += len(g.Cases)
	}

	return jsonResult(map[string]any{
		"groups":    groups,
		"total":     cases,
		"conflicts": scanner.DetectConflicts(groups),
	})
}

func (s *Server) handleGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := req.RequireString("input")
	if err != nil || input == "" {
		return mcp.NewToolResultError("input is required"), nil
	}

	cfg := generator.Config{
		Input:    s.resolve(input),
		Output:   s.resolve(req.GetString("output", "")),
		Emitter:  req.GetString("emitter", generator.EmitterTemplate),
		Template: req.GetString("template", ""),
	}
	if cfg.Template != "" {
		for _, dir := range generator.DefaultTemplateDirs {
			cfg.TemplateDirs = append(cfg.TemplateDirs, s.resolve(dir))
		}
	}

	if !req.GetBool("write", false) {
		result, out, err := generator.Preview(cfg)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return jsonResult(map[string]any{
			"success": true,
			"written": false,
			"output":  result.Output,
			"cases":   result.Cases(),
			"code":    string(out),
		})
	}

	result, err := generator.Generate(cfg)
	if err != nil {
		s.logger.Warn("generate failed", "input", cfg.Input, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.logger.Info("generated", "input", result.Input, "output", result.Output, "cases", result.Cases())

	return jsonResult(map[string]any{
		"success":   true,
		"written":   true,
		"output":    result.Output,
		"cases":     result.Cases(),
		"bytes":     result.Bytes,
		"conflicts": result.Conflicts,
	})
}

func (s *Server) handleOpenAPI(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := req.RequireString("input")
	if err != nil || input == "" {
		return mcp.NewToolResultError("input is required"), nil
	}

	groups, err := scanner.NewScanner(nil).ScanFile(s.resolve(input))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	format := req.GetString("format", "json")
	doc, skipped := openapi.NewGenerator(openapi.Config{Title: req.GetString("title", "")}).Generate(groups)
	data, err := openapi.Marshal(doc, format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	for _, sk := range skipped {
		s.logger.Warn("path already claimed", "group", sk.Group, "case", sk.Case, "path", sk.Path, "claimed_by", sk.ClaimBy)
	}
	if skipped == nil {
		skipped = []openapi.Skipped{}
	}

	var document any = json.RawMessage(data)
	if f := strings.ToLower(format); f == "yaml" || f == "yml" {
		document = string(data)
	}
	return jsonResult(map[string]any{
		"format":   format,
		"document": document,
		"skipped":  skipped,
	})
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
