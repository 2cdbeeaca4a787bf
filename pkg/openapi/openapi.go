// Package openapi exports extracted route groups as an OpenAPI document.
package openapi

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/rgen/pkg/scanner"
)

// Config configures OpenAPI document generation.
type Config struct {
	// Title is the API title (default: "API")
	Title string
	// Version is the API version (default: "1.0.0")
	Version string
	// Description is the API description
	Description string
	// Servers are the server URLs
	Servers []string
	// OpenAPIVersion is the spec version (default: "3.0.3")
	OpenAPIVersion string
}

// Generator builds OpenAPI documents from route groups.
type Generator struct {
	config Config
}

// Skipped is a case left out because an earlier case claimed its path.
type Skipped struct {
	Group   string `json:"group"`
	Case    string `json:"case"`
	Path    string `json:"path"`
	ClaimBy string `json:"claimed_by"`
}

// paramSegmentRe matches ":name" segments of a match pattern.
var paramSegmentRe = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// NewGenerator creates a Generator, filling in defaults.
func NewGenerator(config Config) *Generator {
	if config.Title == "" {
		config.Title = "API"
	}
	if config.Version == "" {
		config.Version = "1.0.0"
	}
	if config.OpenAPIVersion == "" {
		config.OpenAPIVersion = "3.0.3"
	}
	return &Generator{config: config}
}

// Generate builds the document. Each case becomes a GET operation on its
// match pattern; when two cases share a path the first one wins.
func (g *Generator) Generate(groups []scanner.Group) (*openapi3.T, []Skipped) {
	doc := &openapi3.T{
		OpenAPI: g.config.OpenAPIVersion,
		Info: &openapi3.Info{
			Title:       g.config.Title,
			Version:     g.config.Version,
			Description: g.config.Description,
		},
		Paths: openapi3.NewPaths(),
	}

	for _, url := range g.config.Servers {
		doc.Servers = append(doc.Servers, &openapi3.Server{URL: url})
	}

	var skipped []Skipped
	claimed := make(map[string]string)
	for _, group := range groups {
		doc.Tags = append(doc.Tags, &openapi3.Tag{Name: group.Name})
		for _, c := range group.Cases {
			path := ConvertPath(c.Pattern)
			opID := group.Name + "." + c.Identifier
			if first, ok := claimed[path]; ok {
				skipped = append(skipped, Skipped{Group: group.Name, Case: c.Identifier, Path: path, ClaimBy: first})
				continue
			}
			claimed[path] = opID
			doc.Paths.Set(path, &openapi3.PathItem{Get: buildOperation(group.Name, opID, c)})
		}
	}

	return doc, skipped
}

// buildOperation creates the GET operation for one case.
func buildOperation(tag, opID string, c scanner.Case) *openapi3.Operation {
	op := &openapi3.Operation{
		OperationID: opID,
		Summary:     c.Identifier,
		Tags:        []string{tag},
		Responses:   openapi3.NewResponses(),
	}

	inPath := pathParamNames(c.Pattern)
	for _, p := range c.Params {
		name := scanner.ToHeader(p.Name)
		param := &openapi3.Parameter{
			Name:   name,
			Schema: &openapi3.SchemaRef{Value: SchemaFor(p.Type)},
		}
		if slices.Contains(inPath, name) {
			param.In = openapi3.ParameterInPath
			param.Required = true
		} else {
			param.In = openapi3.ParameterInQuery
			param.Required = !p.Optional()
		}
		op.Parameters = append(op.Parameters, &openapi3.ParameterRef{Value: param})
	}

	// Placeholders with no declared parameter still need a path parameter.
	for _, name := range inPath {
		if op.Parameters.GetByInAndName(openapi3.ParameterInPath, name) != nil {
			continue
		}
		op.Parameters = append(op.Parameters, &openapi3.ParameterRef{Value: &openapi3.Parameter{
			Name:     name,
			In:       openapi3.ParameterInPath,
			Required: true,
			Schema:   &openapi3.SchemaRef{Value: openapi3.NewStringSchema()},
		}})
	}

	op.Responses.Set("200", &openapi3.ResponseRef{
		Value: &openapi3.Response{
			Description: openapi3.Ptr("Success"),
		},
	})
	if len(inPath) > 0 {
		op.Responses.Set("404", &openapi3.ResponseRef{
			Value: &openapi3.Response{
				Description: openapi3.Ptr("Not Found"),
			},
		})
	}

	return op
}

// ConvertPath converts a match pattern to an OpenAPI path.
// Example: "users/:id" -> "/users/{id}"
func ConvertPath(pattern string) string {
	converted := paramSegmentRe.ReplaceAllString(pattern, "{$1}")
	if !strings.HasPrefix(converted, "/") {
		converted = "/" + converted
	}
	return converted
}

func pathParamNames(pattern string) []string {
	var names []string
	for _, m := range paramSegmentRe.FindAllStringSubmatch(pattern, -1) {
		names = append(names, m[1])
	}
	return names
}

// SchemaFor maps a Swift type annotation to an OpenAPI schema.
func SchemaFor(swiftType string) *openapi3.Schema {
	t := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSpace(swiftType), scanner.OptionalMarker), "!")

	if strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") && !strings.Contains(t, ":") {
		return openapi3.NewArraySchema().WithItems(SchemaFor(t[1 : len(t)-1]))
	}

	switch {
	case strings.HasPrefix(t, "Int"), strings.HasPrefix(t, "UInt"):
		return openapi3.NewIntegerSchema()
	case t == "Double", t == "Float", t == "CGFloat", t == "Decimal":
		return openapi3.NewFloat64Schema()
	case t == "Bool":
		return openapi3.NewBoolSchema()
	case t == "Date":
		return openapi3.NewDateTimeSchema()
	default:
		return openapi3.NewStringSchema()
	}
}

// Marshal encodes doc as "json" or "yaml".
func Marshal(doc *openapi3.T, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		// round-trip through JSON so the YAML honors kin-openapi's field names
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		var v any
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return yaml.Marshal(v)
	case "json", "":
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported format: %s (use json or yaml)", format)
	}
}

// WriteToFile writes doc to path in the given format.
func WriteToFile(doc *openapi3.T, path, format string) error {
	data, err := Marshal(doc, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
