package scanner

import (
	"slices"
	"testing"
)

func params(names ...string) []Param {
	ps := make([]Param, len(names))
	for i, n := range names {
		ps[i] = Param{Name: n, Type: "Int"}
	}
	return ps
}

func TestBindSlots(t *testing.T) {
	tests := []struct {
		name   string
		found  []string
		params []Param
		want   []string
	}{
		{"no params", []string{"id"}, nil, []string{}},
		{"no placeholders", nil, params("id"), []string{"_"}},
		{"first bound", []string{"id"}, params("id", "sort"), []string{"id", "_"}},
		{"all bound", []string{"a", "b"}, params("a", "b"), []string{"a", "b"}},
		{"more placeholders than params", []string{"a", "b", "c"}, params("a"), []string{"a"}},
		// positional: the path name lands in slot 0 even though "page" was declared first
		{"positional not by name", []string{"id"}, params("page", "id"), []string{"id", "_"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BindSlots(tt.found, tt.params)
			if !slices.Equal(got, tt.want) {
				t.Errorf("BindSlots(%v, %d params) = %v, want %v", tt.found, len(tt.params), got, tt.want)
			}
		})
	}
}

func TestNewCase_Bindings(t *testing.T) {
	tests := []struct {
		name       string
		annotation string
		identifier string
		params     []Param
		want       []string
		wantList   string
	}{
		{
			name:       "query param is wildcard",
			annotation: "/users/:id",
			identifier: "user",
			params:     []Param{{Name: "id", Type: "Int"}, {Name: "sort", Type: "String?"}},
			want:       []string{"id", "_"},
			wantList:   "id, _",
		},
		{
			name:       "no placeholders",
			annotation: "/search",
			identifier: "search",
			params:     []Param{{Name: "query", Type: "String"}},
			want:       nil,
		},
		{
			name:       "no params",
			annotation: "/users/:id",
			identifier: "user",
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCase(tt.annotation, tt.identifier, tt.params)
			if !slices.Equal(c.Bindings, tt.want) {
				t.Errorf("Bindings = %v, want %v", c.Bindings, tt.want)
			}
			if c.HasParametersInPath() != (tt.want != nil) {
				t.Errorf("HasParametersInPath() = %v, want %v", c.HasParametersInPath(), tt.want != nil)
			}
			if got := c.BindingList(); got != tt.wantList {
				t.Errorf("BindingList() = %q, want %q", got, tt.wantList)
			}
			// the parameter list is independent of path binding
			if len(c.Params) != len(tt.params) {
				t.Errorf("len(Params) = %d, want %d", len(c.Params), len(tt.params))
			}
		})
	}
}
