package scanner

import (
	"regexp"
	"strings"
)

// Source recognizers
var (
	// @name Router ... }  or  enum Router: String {  ... }
	// Matches up to the first closing brace; nested braces are not tracked.
	blockRe = regexp.MustCompile(`(?s)(?:@name\s+(.+?)\s+|enum\s+(\w+):?[^\n]*?\{)(.*?)\}`)

	// /// @pattern /users/:id
	// case user(id: Int)
	// Matches: case settings, case user(id: Int), indirect case node(next: Node)
	// Declarations start a line; "case" inside a comment is ignored. An
	// @pattern line binds to the declaration that follows it.
	caseRe = regexp.MustCompile(`(?m)^(?:[^\n]*@pattern([^\n]*)\n\s*|[ \t]*)(?:indirect[ \t]+)?case\s+(\w+)(?:\(([^)]*)\))?`)

	// \(id) - interpolation placeholder, also the argument list recognizer
	parenRe = regexp.MustCompile(`\((.*?)\)`)
)

const (
	// ParamMarker prefixes a parameter segment in a match pattern (e.g., ":id")
	ParamMarker = ":"
)

// DerivePattern returns the match pattern for a case.
// Without an annotation the pattern is "/" + the underscore-form identifier.
func DerivePattern(annotation, identifier string) string {
	annotation = strings.TrimSpace(annotation)
	if annotation == "" {
		return "/" + ToUnderscore(strings.TrimSpace(identifier))
	}
	return annotation
}

// BuildPathTemplate converts a match pattern into an interpolated path.
// Blank segments are dropped.
// Example: "/users/:userId/posts" -> "/users/\(userId)/posts"
func BuildPathTemplate(pattern string) string {
	var b strings.Builder
	for _, seg := range strings.Split(pattern, "/") {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		b.WriteByte('/')
		if name, ok := strings.CutPrefix(seg, ParamMarker); ok {
			b.WriteString(Placeholder(name))
			continue
		}
		b.WriteString(seg)
	}
	return strings.TrimSpace(b.String())
}

// Placeholder renders an interpolation marker for name.
func Placeholder(name string) string {
	return `\(` + name + `)`
}

// Placeholders returns the placeholder names in a path template, left to right.
func Placeholders(template string) []string {
	var names []string
	for _, m := range parenRe.FindAllStringSubmatch(template, -1) {
		names = append(names, m[1])
	}
	return names
}
