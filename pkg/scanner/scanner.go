package scanner

import (
	"fmt"
	"os"
	"strings"
)

// Scanner extracts route groups from source text.
type Scanner struct {
	recognizer Recognizer
}

// NewScanner creates a Scanner. A nil recognizer selects RegexRecognizer.
func NewScanner(r Recognizer) *Scanner {
	if r == nil {
		r = RegexRecognizer{}
	}
	return &Scanner{recognizer: r}
}

// Scan extracts every route group from text, in document order.
func (s *Scanner) Scan(text string) ([]Group, error) {
	var groups []Group
	for block := range s.recognizer.Blocks(text) {
		group, err := s.ParseGroup(block.Name, block.Body)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// ScanFile reads path and extracts its route groups.
func (s *Scanner) ScanFile(path string) ([]Group, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return s.Scan(string(content))
}

// ParseGroup parses the cases of one block body into a Group.
// A malformed parameter aborts the whole group.
func (s *Scanner) ParseGroup(name, body string) (Group, error) {
	name = strings.TrimSpace(name)

	var cases []Case
	for m := range s.recognizer.Cases(strings.TrimSpace(body)) {
		params, err := ParseParams(m.Params)
		if err != nil {
			return Group{}, fmt.Errorf("group %s, case %s: %w", name, m.Identifier, err)
		}
		cases = append(cases, NewCase(m.Annotation, m.Identifier, params))
	}
	return NewGroup(name, cases), nil
}

// Scan extracts route groups from text with the default recognizer.
func Scan(text string) ([]Group, error) {
	return NewScanner(nil).Scan(text)
}

// DetectConflicts reports cases within a group that share a match pattern.
func DetectConflicts(groups []Group) []Conflict {
	var conflicts []Conflict
	for _, g := range groups {
		seen := make(map[string]string, len(g.Cases))
		for _, c := range g.Cases {
			if first, ok := seen[c.Pattern]; ok {
				conflicts = append(conflicts, Conflict{
					Group:   g.Name,
					Pattern: c.Pattern,
					Case1:   first,
					Case2:   c.Identifier,
					Message: fmt.Sprintf("%s: cases %s and %s both match %s", g.Name, first, c.Identifier, c.Pattern),
				})
				continue
			}
			seen[c.Pattern] = c.Identifier
		}
	}
	return conflicts
}
