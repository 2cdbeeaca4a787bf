package generator

import (
	"fmt"
	"io"
	"strings"

	"github.com/abdul-hamid-achik/rgen/pkg/scanner"
)

// BuilderEmitter renders the Swift accessor extension with a strings.Builder.
// Its output matches the built-in template byte for byte.
type BuilderEmitter struct {
	Source string
}

// Emit writes one extension per group.
func (e *BuilderEmitter) Emit(w io.Writer, groups []scanner.Group) error {
	var b strings.Builder

	b.WriteString("// Code generated by rgen. DO NOT EDIT.")
	if e.Source != "" {
		b.WriteString("\n// Source: " + e.Source)
	}
	b.WriteString("\n")

	for _, g := range groups {
		fmt.Fprintf(&b, "\nextension %s {\n", g.Name)
		writePatternAccessor(&b, g)
		b.WriteString("\n\n")
		writePathAccessor(&b, g)
		b.WriteString("\n\n")
		writeParametersAccessor(&b, g)
		b.WriteString("\n}\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writePatternAccessor(b *strings.Builder, g scanner.Group) {
	b.WriteString("    var pattern: String {\n        switch self {")
	for _, c := range g.Cases {
		fmt.Fprintf(b, "\n        case .%s: return \"%s\"", c.Identifier, c.Pattern)
	}
	b.WriteString("\n        }\n    }")
}

func writePathAccessor(b *strings.Builder, g scanner.Group) {
	b.WriteString("    var path: String {\n        switch self {")
	for _, c := range g.Cases {
		if c.HasParametersInPath() {
			fmt.Fprintf(b, "\n        case let .%s(%s): return \"%s\"", c.Identifier, c.BindingList(), c.PathTemplate)
			continue
		}
		fmt.Fprintf(b, "\n        case .%s: return \"%s\"", c.Identifier, c.PathTemplate)
	}
	b.WriteString("\n        }\n    }")
}

// writeParametersAccessor binds the full declared parameter list, independent
// of which parameters appear in the path.
func writeParametersAccessor(b *strings.Builder, g scanner.Group) {
	b.WriteString("    var parameters: [String: Any]? {\n        switch self {")
	for _, c := range g.Cases {
		if len(c.Params) == 0 {
			continue
		}
		fmt.Fprintf(b, "\n        case let .%s(%s):", c.Identifier, bindParams(c.Params))
		b.WriteString("\n            var parameters: [String: Any] = [:]")
		for _, p := range c.Params {
			name := scanner.ToHeader(p.Name)
			if p.Optional() {
				fmt.Fprintf(b, "\n            if let %s = %s { parameters[\"%s\"] = %s }", name, name, p.Name, name)
				continue
			}
			fmt.Fprintf(b, "\n            parameters[\"%s\"] = %s", p.Name, name)
		}
		b.WriteString("\n            return parameters")
	}
	if g.HasNoParameterCase {
		b.WriteString("\n        default:\n            return nil")
	}
	b.WriteString("\n        }\n    }")
}
