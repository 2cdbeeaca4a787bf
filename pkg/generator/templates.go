package generator

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/abdul-hamid-achik/rgen/pkg/scanner"
)

// Template data structures

// templateData is what every accessor template is executed with.
type templateData struct {
	// Models are the route groups in source order
	Models []scanner.Group
	// Source is the input file the groups were extracted from
	Source string
}

// templateFuncs are available to the built-in and user templates.
var templateFuncs = template.FuncMap{
	"snakeToCamel": scanner.ToHeader,
	"camelToSnake": scanner.ToUnderscore,
	"bindParams":   bindParams,
	"join":         strings.Join,
	"quote":        strconv.Quote,
}

// bindParams renders the header-form names of params for a pattern binding.
func bindParams(params []scanner.Param) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = scanner.ToHeader(p.Name)
	}
	return strings.Join(names, ", ")
}

// Swift accessor template
var accessorTemplate = `// Code generated by rgen. DO NOT EDIT.
{{- if .Source}}
// Source: {{.Source}}
{{- end}}
{{range .Models}}
extension {{.Name}} {
    var pattern: String {
        switch self {
{{- range .Cases}}
        case .{{.Identifier}}: return "{{.Pattern}}"
{{- end}}
        }
    }

    var path: String {
        switch self {
{{- range .Cases}}
{{- if .HasParametersInPath}}
        case let .{{.Identifier}}({{.BindingList}}): return "{{.PathTemplate}}"
{{- else}}
        case .{{.Identifier}}: return "{{.PathTemplate}}"
{{- end}}
{{- end}}
        }
    }

    var parameters: [String: Any]? {
        switch self {
{{- range .Cases}}
{{- if .Params}}
        case let .{{.Identifier}}({{bindParams .Params}}):
            var parameters: [String: Any] = [:]
{{- range .Params}}
{{- if .Optional}}
            if let {{snakeToCamel .Name}} = {{snakeToCamel .Name}} { parameters["{{.Name}}"] = {{snakeToCamel .Name}} }
{{- else}}
            parameters["{{.Name}}"] = {{snakeToCamel .Name}}
{{- end}}
{{- end}}
            return parameters
{{- end}}
{{- end}}
{{- if .HasNoParameterCase}}
        default:
            return nil
{{- end}}
        }
    }
}
{{end}}`
