// Package naming holds the small casing conversions shared by the parser and
// the renderers.
package naming

import (
	"strings"
	"unicode"
)

// LowerFirst lower-cases the first character of s.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// UpperFirst upper-cases the first character of s.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Pascal converts snake_case, kebab-case or dotted names to PascalCase.
func Pascal(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	})
	for i, part := range parts {
		parts[i] = UpperFirst(part)
	}
	return strings.Join(parts, "")
}

// Kebab converts a PascalCase or camelCase name to kebab-case, the casing
// used for generated file names (CreateClientDto -> create-client-dto).
func Kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		if r == '_' || r == ' ' {
			b.WriteByte('-')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
