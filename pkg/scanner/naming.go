package scanner

import (
	"strings"
	"unicode"
)

// ToUnderscore converts an identifier to underscore form.
// Every upper-case rune becomes "_" followed by its lower-case form, so
// "userId" -> "user_id" and "Settings" -> "_settings".
func ToUnderscore(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToHeader converts an underscore-form name back to a lower camel identifier.
// Example: "user_id" -> "userId", "_settings" -> "settings"
func ToHeader(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		b.WriteString(capitalize(part))
	}
	out := []rune(b.String())
	if len(out) == 0 {
		return ""
	}
	out[0] = unicode.ToLower(out[0])
	return string(out)
}

// capitalize upper-cases the first rune of s and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	rs := []rune(strings.ToLower(s))
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}
