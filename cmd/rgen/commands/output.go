package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/abdul-hamid-achik/rgen/pkg/generator"
	"github.com/abdul-hamid-achik/rgen/pkg/scanner"
)

// jsonOutput is the global flag for JSON output mode
var jsonOutput bool

// JSONResponse is the standard response wrapper for JSON output
type JSONResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// GenerateOutput represents the JSON output for the generate command
type GenerateOutput struct {
	Input     string             `json:"input"`
	Output    string             `json:"output"`
	Emitter   string             `json:"emitter"`
	Groups    int                `json:"groups"`
	Cases     int                `json:"cases"`
	Bytes     int                `json:"bytes"`
	Conflicts []scanner.Conflict `json:"conflicts,omitempty"`
}

// InspectOutput represents the JSON/YAML output for the inspect command
type InspectOutput struct {
	Schema    int                `json:"schema" yaml:"schema"`
	Input     string             `json:"input" yaml:"input"`
	Groups    []scanner.Group    `json:"groups" yaml:"groups"`
	Total     int                `json:"total" yaml:"total"`
	Conflicts []scanner.Conflict `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
}

// OpenAPIOutput represents the JSON output for the openapi command
type OpenAPIOutput struct {
	File    string            `json:"file"`
	Format  string            `json:"format"`
	Version string            `json:"version"`
	Paths   int               `json:"paths"`
	Size    string            `json:"size"`
	Skipped []openapiSkipInfo `json:"skipped,omitempty"`
}

type openapiSkipInfo struct {
	Case      string `json:"case"`
	Path      string `json:"path"`
	ClaimedBy string `json:"claimed_by"`
}

// WatchEvent represents one regeneration in JSON output for the watch command
type WatchEvent struct {
	Time   string `json:"time"`
	Status string `json:"status"`
	Output string `json:"output,omitempty"`
	Cases  int    `json:"cases,omitempty"`
	Error  string `json:"error,omitempty"`
}

// InitOutput represents the JSON output for the init command
type InitOutput struct {
	File      string   `json:"file"`
	Input     string   `json:"input"`
	Output    string   `json:"output"`
	Emitter   string   `json:"emitter"`
	NextSteps []string `json:"next_steps"`
}

func newGenerateOutput(result *generator.Result, emitter string) GenerateOutput {
	if emitter == "" {
		emitter = generator.EmitterTemplate
	}
	return GenerateOutput{
		Input:     result.Input,
		Output:    result.Output,
		Emitter:   emitter,
		Groups:    len(result.Groups),
		Cases:     result.Cases(),
		Bytes:     result.Bytes,
		Conflicts: result.Conflicts,
	}
}

// printJSON outputs data as formatted JSON to stdout
func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
	}
}

// printSuccess outputs a successful JSON response
func printSuccess(data any) {
	printJSON(JSONResponse{Success: true, Data: data})
}

// printJSONError outputs an error as JSON
func printJSONError(err error) {
	printJSON(JSONResponse{Success: false, Error: err.Error()})
}

// fail reports err in the active output mode and exits with status 1.
func fail(msg string, err error) {
	if jsonOutput {
		printJSONError(err)
	} else {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(os.Stderr, "  %s %s: %v\n\n", red("Error:"), msg, err)
	}
	os.Exit(1)
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
