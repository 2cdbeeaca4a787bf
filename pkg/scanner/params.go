package scanner

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedParameter is returned when a parameter lacks the "name: Type" separator.
var ErrMalformedParameter = errors.New("malformed parameter declaration")

const (
	paramSeparator   = ", "
	keyTypeSeparator = ": "
)

// ParseParams parses the text between a case's parentheses.
// It returns nil when the text is empty or blank.
//
// Example: "id: Int, sortBy: String?" -> [{id Int} {sort_by String?}]
func ParseParams(raw string) ([]Param, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var params []Param
	for _, piece := range strings.Split(raw, paramSeparator) {
		key, typ, ok := strings.Cut(piece, keyTypeSeparator)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedParameter, piece)
		}
		params = append(params, Param{
			Name: ToUnderscore(strings.TrimSpace(key)),
			Type: strings.TrimSpace(typ),
		})
	}
	return params, nil
}
