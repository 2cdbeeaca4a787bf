// Package generator renders extracted route groups into Swift accessor code.
package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/abdul-hamid-achik/rgen/pkg/scanner"
)

// Emitter kinds
const (
	EmitterTemplate = "template"
	EmitterBuilder  = "builder"
)

// DefaultOutputName is the generated file name used when no output path is given.
const DefaultOutputName = "Router.Generate.swift"

var (
	// ErrUnknownEmitter is returned for an emitter kind other than template or builder.
	ErrUnknownEmitter = errors.New("unknown emitter")
	// ErrTemplateNotFound is returned when a named template is not in any search directory.
	ErrTemplateNotFound = errors.New("template not found")
)

// DefaultTemplateDirs are searched for named templates, in order.
var DefaultTemplateDirs = []string{"tmpl", "Pods/RGenerator/tmpl"}

// Emitter renders route groups to w. Group and case order is preserved.
type Emitter interface {
	Emit(w io.Writer, groups []scanner.Group) error
}

// Options configures an Emitter.
type Options struct {
	// Template is the template name; empty selects the built-in Swift template
	Template string
	// TemplateDirs are searched for Template (default: DefaultTemplateDirs)
	TemplateDirs []string
	// Source is recorded in the generated header
	Source string
}

// New returns the Emitter for kind. An empty kind selects the template emitter.
func New(kind string, opts Options) (Emitter, error) {
	switch kind {
	case "", EmitterTemplate:
		return NewTemplateEmitter(opts)
	case EmitterBuilder:
		if opts.Template != "" {
			return nil, fmt.Errorf("builder emitter does not take a template (got %q)", opts.Template)
		}
		return &BuilderEmitter{Source: opts.Source}, nil
	default:
		return nil, fmt.Errorf("%w: %s (use %s or %s)", ErrUnknownEmitter, kind, EmitterTemplate, EmitterBuilder)
	}
}

// TemplateEmitter renders groups through a text/template.
type TemplateEmitter struct {
	tmpl   *template.Template
	source string
	// Path is the template file used, empty for the built-in template
	Path string
}

// NewTemplateEmitter loads and parses the template selected by opts.
func NewTemplateEmitter(opts Options) (*TemplateEmitter, error) {
	content, path, err := LoadTemplate(opts.Template, opts.TemplateDirs)
	if err != nil {
		return nil, err
	}

	name := "accessors"
	if path != "" {
		name = filepath.Base(path)
	}
	tmpl, err := template.New(name).Funcs(templateFuncs).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return &TemplateEmitter{tmpl: tmpl, source: opts.Source, Path: path}, nil
}

// Emit executes the template with the groups as .Models.
func (e *TemplateEmitter) Emit(w io.Writer, groups []scanner.Group) error {
	if err := e.tmpl.Execute(w, templateData{Models: groups, Source: e.source}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}

// LoadTemplate returns the content and path of the named template.
// An empty name returns the built-in template with an empty path.
// Each directory is tried with the bare name and with a ".tmpl" suffix.
func LoadTemplate(name string, dirs []string) (string, string, error) {
	if name == "" {
		return accessorTemplate, "", nil
	}
	if len(dirs) == 0 {
		dirs = DefaultTemplateDirs
	}

	for _, dir := range dirs {
		for _, candidate := range []string{name, name + ".tmpl"} {
			path := filepath.Join(dir, candidate)
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return "", "", fmt.Errorf("failed to read template: %w", err)
			}
			return string(content), path, nil
		}
	}

	return "", "", fmt.Errorf("%w: %s (searched %v)", ErrTemplateNotFound, name, dirs)
}

// Render emits groups into memory.
func Render(e Emitter, groups []scanner.Group) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Emit(&buf, groups); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Config holds configuration for a generate run.
type Config struct {
	// Input is the Swift source file to scan
	Input string
	// Output is the generated file (default: DefaultOutputPath(Input))
	Output string
	// Emitter is the emitter kind (template or builder)
	Emitter string
	// Template is the template name for the template emitter
	Template string
	// TemplateDirs are the template search directories
	TemplateDirs []string
}

// Result holds the result of a generate run.
type Result struct {
	Input     string             `json:"input"`
	Output    string             `json:"output"`
	Groups    []scanner.Group    `json:"groups"`
	Conflicts []scanner.Conflict `json:"conflicts,omitempty"`
	Bytes     int                `json:"bytes"`
}

// Cases returns the total number of cases across all groups.
func (r *Result) Cases() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Cases)
	}
	return n
}

// DefaultOutputPath returns the generated file path next to input.
func DefaultOutputPath(input string) string {
	return filepath.Join(filepath.Dir(input), DefaultOutputName)
}

// Preview scans cfg.Input and renders the accessors without writing them.
// The returned Result carries the resolved output path.
func Preview(cfg Config) (*Result, []byte, error) {
	if cfg.Input == "" {
		return nil, nil, errors.New("input file is required")
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutputPath(cfg.Input)
	}

	groups, err := scanner.NewScanner(nil).ScanFile(cfg.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("scan failed: %w", err)
	}

	emitter, err := New(cfg.Emitter, Options{
		Template:     cfg.Template,
		TemplateDirs: cfg.TemplateDirs,
		Source:       filepath.Base(cfg.Input),
	})
	if err != nil {
		return nil, nil, err
	}

	out, err := Render(emitter, groups)
	if err != nil {
		return nil, nil, err
	}

	return &Result{
		Input:     cfg.Input,
		Output:    cfg.Output,
		Groups:    groups,
		Conflicts: scanner.DetectConflicts(groups),
		Bytes:     len(out),
	}, out, nil
}

// Generate scans cfg.Input and writes the rendered accessors to cfg.Output.
// Nothing is written unless scanning and rendering both succeed.
func Generate(cfg Config) (*Result, error) {
	result, out, err := Preview(cfg)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(result.Output), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	if err := os.WriteFile(result.Output, out, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", result.Output, err)
	}

	return result, nil
}
