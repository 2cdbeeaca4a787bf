// Package scanner extracts route enumerations from Swift source text.
// It locates annotated enum blocks, parses each case declaration and derives
// the match pattern, path template and parameter bindings used by the
// generator.
package scanner

import "strings"

// OptionalMarker is the trailing type character that marks a parameter optional.
const OptionalMarker = "?"

// Wildcard is the binder used for a declared parameter that is not bound by
// the path match.
const Wildcard = "_"

// Group is one annotated enum declaration.
type Group struct {
	// Name is the enum type the group corresponds to
	Name string `json:"name" yaml:"name"`
	// Cases are the declared route cases in source order
	Cases []Case `json:"cases" yaml:"cases"`
	// HasNoParameterCase is true when at least one case declares no parameters
	HasNoParameterCase bool `json:"has_no_parameter_case" yaml:"has_no_parameter_case"`
}

// NewGroup builds a Group and derives its flags.
func NewGroup(name string, cases []Case) Group {
	g := Group{Name: name, Cases: cases}
	for _, c := range cases {
		if len(c.Params) == 0 {
			g.HasNoParameterCase = true
			break
		}
	}
	return g
}

// Case is one route variant within a group.
type Case struct {
	// Identifier is the declared case name (e.g., "userProfile")
	Identifier string `json:"identifier" yaml:"identifier"`
	// RawPattern is the @pattern annotation text, empty when absent
	RawPattern string `json:"raw_pattern,omitempty" yaml:"raw_pattern,omitempty"`
	// Pattern is the match pattern (e.g., "/users/:id")
	Pattern string `json:"pattern" yaml:"pattern"`
	// PathTemplate is the interpolated path (e.g., "/users/\(id)")
	PathTemplate string `json:"path" yaml:"path"`
	// Params are the declared parameters in order
	Params []Param `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	// Placeholders are the names found in PathTemplate, left to right
	Placeholders []string `json:"placeholders,omitempty" yaml:"placeholders,omitempty"`
	// Bindings is the binding-slot array for the path match, nil when the
	// case has no parameters or no placeholders
	Bindings []string `json:"bindings,omitempty" yaml:"bindings,omitempty"`
}

// NewCase derives a Case from its raw annotation, identifier and parameters.
func NewCase(rawPattern, identifier string, params []Param) Case {
	pattern := DerivePattern(rawPattern, identifier)
	path := BuildPathTemplate(pattern)
	found := Placeholders(path)

	c := Case{
		Identifier:   strings.TrimSpace(identifier),
		RawPattern:   strings.TrimSpace(rawPattern),
		Pattern:      pattern,
		PathTemplate: path,
		Params:       params,
		Placeholders: found,
	}
	if len(params) > 0 && len(found) > 0 {
		c.Bindings = BindSlots(found, params)
	}
	return c
}

// HasParametersInPath reports whether the path accessor binds any parameter.
func (c Case) HasParametersInPath() bool {
	return c.Bindings != nil
}

// BindingList joins the binding slots for a pattern-match header.
func (c Case) BindingList() string {
	return strings.Join(c.Bindings, ", ")
}

// ParamNames joins the underscore-form parameter names.
func (c Case) ParamNames() string {
	names := make([]string, len(c.Params))
	for i, p := range c.Params {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}

// HasOptionalParam reports whether any declared parameter is optional.
func (c Case) HasOptionalParam() bool {
	for _, p := range c.Params {
		if p.Optional() {
			return true
		}
	}
	return false
}

// Param is a declared case parameter.
type Param struct {
	// Name is the underscore-form parameter name
	Name string `json:"name" yaml:"name"`
	// Type is the raw type text, including a trailing "?" when optional
	Type string `json:"type" yaml:"type"`
}

// Optional reports whether the type text ends with the optional marker.
func (p Param) Optional() bool {
	return strings.HasSuffix(p.Type, OptionalMarker)
}

// Conflict represents two cases in one group sharing a match pattern.
type Conflict struct {
	Group   string `json:"group"`
	Pattern string `json:"pattern"`
	Case1   string `json:"case1"`
	Case2   string `json:"case2"`
	Message string `json:"message"`
}
