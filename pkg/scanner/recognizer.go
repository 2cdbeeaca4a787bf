package scanner

import (
	"iter"
	"regexp"
)

// BlockMatch is a raw enum block located in source text.
type BlockMatch struct {
	// Name is the @name annotation text or the enum type name
	Name string
	// Body is the raw text between the opening and closing braces
	Body string
}

// CaseMatch is a raw case declaration located in a block body.
type CaseMatch struct {
	// Annotation is the @pattern text, empty when absent
	Annotation string
	// Identifier is the case name
	Identifier string
	// Params is the raw text between the parentheses, empty when absent
	Params string
}

// Recognizer locates blocks and case declarations in raw text.
// Sequences are lazy, finite and may be ranged over more than once.
type Recognizer interface {
	Blocks(text string) iter.Seq[BlockMatch]
	Cases(body string) iter.Seq[CaseMatch]
}

// RegexRecognizer is the default Recognizer built on regular expressions.
type RegexRecognizer struct{}

// Blocks yields enum blocks in document order.
func (RegexRecognizer) Blocks(text string) iter.Seq[BlockMatch] {
	return func(yield func(BlockMatch) bool) {
		for m := range submatches(blockRe, text) {
			name := m[1]
			if name == "" {
				name = m[2]
			}
			if !yield(BlockMatch{Name: name, Body: m[3]}) {
				return
			}
		}
	}
}

// Cases yields case declarations in textual order.
func (RegexRecognizer) Cases(body string) iter.Seq[CaseMatch] {
	return func(yield func(CaseMatch) bool) {
		for m := range submatches(caseRe, body) {
			if !yield(CaseMatch{Annotation: m[1], Identifier: m[2], Params: m[3]}) {
				return
			}
		}
	}
}

// submatches walks the matches of re one at a time. Groups that did not
// participate are returned as empty strings.
func submatches(re *regexp.Regexp, text string) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		pos := 0
		for pos <= len(text) {
			loc := re.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				return
			}
			groups := make([]string, len(loc)/2)
			for i := range groups {
				if start := loc[2*i]; start >= 0 {
					groups[i] = text[pos+start : pos+loc[2*i+1]]
				}
			}
			if !yield(groups) {
				return
			}
			next := pos + loc[1]
			if loc[1] == loc[0] {
				next++
			}
			pos = next
		}
	}
}
