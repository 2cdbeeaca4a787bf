package openapi

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/rgen/pkg/scanner"
)

const source = `enum API {
    /// @pattern /users/:userId
    case user(userId: Int, expand: Bool?)
    /// @pattern /search
    case search(query: String, page: Int?)
    case settings
    /// @pattern /settings
    case preferences
}`

func generate(t *testing.T) (*openapi3.T, []Skipped) {
	t.Helper()
	groups, err := scanner.Scan(source)
	require.NoError(t, err)
	return NewGenerator(Config{Title: "Test API", Servers: []string{"https://api.example.com"}}).Generate(groups)
}

func TestGenerate_Paths(t *testing.T) {
	doc, skipped := generate(t)

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, "Test API", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "https://api.example.com", doc.Servers[0].URL)

	for _, p := range []string{"/users/{userId}", "/search", "/settings"} {
		assert.NotNil(t, doc.Paths.Value(p), "missing path %s", p)
	}
	assert.Equal(t, 3, doc.Paths.Len())

	require.Len(t, skipped, 1)
	assert.Equal(t, "preferences", skipped[0].Case)
	assert.Equal(t, "API.settings", skipped[0].ClaimBy)
}

func TestGenerate_Parameters(t *testing.T) {
	doc, _ := generate(t)

	user := doc.Paths.Value("/users/{userId}").Get
	require.NotNil(t, user)
	assert.Equal(t, "API.user", user.OperationID)
	assert.Equal(t, []string{"API"}, user.Tags)

	id := user.Parameters.GetByInAndName(openapi3.ParameterInPath, "userId")
	require.NotNil(t, id)
	assert.True(t, id.Required)
	assert.True(t, id.Schema.Value.Type.Is(openapi3.TypeInteger))

	expand := user.Parameters.GetByInAndName(openapi3.ParameterInQuery, "expand")
	require.NotNil(t, expand)
	assert.False(t, expand.Required)
	assert.True(t, expand.Schema.Value.Type.Is(openapi3.TypeBoolean))

	assert.NotNil(t, user.Responses.Value("404"))

	search := doc.Paths.Value("/search").Get
	require.NotNil(t, search)
	query := search.Parameters.GetByInAndName(openapi3.ParameterInQuery, "query")
	require.NotNil(t, query)
	assert.True(t, query.Required)
	assert.Nil(t, search.Responses.Value("404"))
}

func TestGenerate_UndeclaredPlaceholder(t *testing.T) {
	groups, err := scanner.Scan("enum R {\n /// @pattern /files/:name\n case file\n}")
	require.NoError(t, err)

	doc, _ := NewGenerator(Config{}).Generate(groups)
	op := doc.Paths.Value("/files/{name}").Get
	require.NotNil(t, op)
	p := op.Parameters.GetByInAndName(openapi3.ParameterInPath, "name")
	require.NotNil(t, p)
	assert.True(t, p.Required)
}

func TestConvertPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/users/:id", "/users/{id}"},
		{":id/comments", "/{id}/comments"},
		{"/settings", "/settings"},
		{"/a/:x/b/:y_z", "/a/{x}/b/{y_z}"},
	}

	for _, tt := range tests {
		if got := ConvertPath(tt.input); got != tt.want {
			t.Errorf("ConvertPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSchemaFor(t *testing.T) {
	tests := []struct {
		swiftType string
		want      string
	}{
		{"Int", openapi3.TypeInteger},
		{"Int64?", openapi3.TypeInteger},
		{"UInt", openapi3.TypeInteger},
		{"Double", openapi3.TypeNumber},
		{"Float?", openapi3.TypeNumber},
		{"Bool", openapi3.TypeBoolean},
		{"String", openapi3.TypeString},
		{"Date", openapi3.TypeString},
		{"[Int]", openapi3.TypeArray},
		{"[String: Any]", openapi3.TypeString},
		{"CustomType", openapi3.TypeString},
	}

	for _, tt := range tests {
		t.Run(tt.swiftType, func(t *testing.T) {
			got := SchemaFor(tt.swiftType)
			if !got.Type.Is(tt.want) {
				t.Errorf("SchemaFor(%q).Type = %v, want %s", tt.swiftType, got.Type, tt.want)
			}
		})
	}

	arr := SchemaFor("[Int]?")
	require.NotNil(t, arr.Items)
	assert.True(t, arr.Items.Value.Type.Is(openapi3.TypeInteger))
}

func TestMarshal(t *testing.T) {
	doc, _ := generate(t)

	jsonData, err := Marshal(doc, "json")
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(jsonData, &fromJSON))
	assert.Equal(t, "3.0.3", fromJSON["openapi"])

	yamlData, err := Marshal(doc, "yaml")
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(yamlData, &fromYAML))
	paths, ok := fromYAML["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/users/{userId}")

	_, err = Marshal(doc, "xml")
	assert.Error(t, err)
}

func TestWriteToFile(t *testing.T) {
	doc, _ := generate(t)
	path := filepath.Join(t.TempDir(), "openapi.json")

	require.NoError(t, WriteToFile(doc, path, "json"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"operationId": "API.user"`))
}
