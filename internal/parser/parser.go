// Package parser extracts a structured field list from the loosely structured
// text of one entity declaration. Extraction is line oriented and best effort:
// lines that match neither recognized shape contribute nothing, and an empty
// result is a valid outcome that the caller decides how to treat.
package parser

import (
	"path/filepath"
	"regexp"
	"strings"

	"git.weirdcat.su/weirdcat/nestdto-gen/internal/naming"
	"git.weirdcat.su/weirdcat/nestdto-gen/internal/types"
)

// lineState drives the line classifier. stateRelation covers the lines
// following a relation annotation: the property declaration that carries the
// annotation belongs to the relation and never becomes a field of its own.
// stateMultiline swallows the continuation lines of a declaration whose type
// expression did not terminate on its own line, so keys inside a multi-line
// object type are never misread as entity fields.
type lineState int

const (
	stateNeutral lineState = iota
	stateRelation
	stateMultiline
)

var (
	classRe = regexp.MustCompile(`^(?:export\s+)?(?:abstract\s+)?class\s+(\w+)`)

	// Relation annotation: @<Kind>(() => <Target>, ...). Tested before the
	// plain property shape; a line matched here is never retested.
	relationRe = regexp.MustCompile(`^@(ManyToOne|OneToOne|OneToMany|ManyToMany)\s*\(\s*\(\s*\)\s*=>\s*(\w+)`)

	// Plain property: [modifier ]name[?]: type; with the optional visibility
	// modifier discarded and the type captured verbatim up to the semicolon.
	propertyRe = regexp.MustCompile(`^(?:(?:public|private|protected|readonly)\s+)*([A-Za-z_$][\w$]*)\s*(\?)?\s*:\s*([^;]+);`)

	// A property whose type expression opens a bracketed construct and does
	// not terminate on the same line. Such declarations are unsupported;
	// the classifier skips lines until the construct closes.
	openPropertyRe = regexp.MustCompile(`^(?:(?:public|private|protected|readonly)\s+)*[A-Za-z_$][\w$]*\s*\??\s*:\s*.*[({<\[|&=]$`)
)

// relationSuffixes maps a relation kind to the derived name suffix and the
// to-many flag.
var relationSuffixes = map[string]struct {
	suffix string
	toMany bool
}{
	"ManyToOne":  {"Id", false},
	"OneToOne":   {"Id", false},
	"OneToMany":  {"Ids", true},
	"ManyToMany": {"Ids", true},
}

// ParseEntity extracts the entity name and the ordered field sequence from
// the full text of one entity declaration. The returned field slice is empty,
// not nil-checked as an error, when nothing recognizable is found.
func ParseEntity(path, text string) types.EntityModel {
	entity := types.EntityModel{
		Name:       EntityNameFromFile(path),
		SourcePath: path,
	}

	state := stateNeutral
	depth := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch state {
		case stateMultiline:
			depth += bracketDelta(line)
			if depth <= 0 && strings.Contains(line, ";") {
				state = stateNeutral
			}
			continue

		case stateRelation:
			if line == "" {
				state = stateNeutral
				continue
			}
			if field, ok := matchRelation(line); ok {
				entity.Fields = append(entity.Fields, field)
				continue
			}
			if _, ok := matchProperty(line); ok {
				// The relation's own property declaration: consumed, the
				// foreign key field already represents it.
				state = stateNeutral
				continue
			}
			if openPropertyRe.MatchString(line) {
				state = stateMultiline
				depth = bracketDelta(line)
			}
			// Other decorators between the annotation and its property
			// (e.g. @JoinColumn()) keep the relation open.
			continue
		}

		if m := classRe.FindStringSubmatch(line); m != nil {
			entity.Name = m[1]
			continue
		}

		if field, ok := matchRelation(line); ok {
			entity.Fields = append(entity.Fields, field)
			state = stateRelation
			continue
		}

		if field, ok := matchProperty(line); ok {
			entity.Fields = append(entity.Fields, field)
			continue
		}

		if openPropertyRe.MatchString(line) {
			state = stateMultiline
			depth = bracketDelta(line)
		}
	}

	return entity
}

// bracketDelta is the net count of bracket openers on one line, used to find
// where an unterminated multi-line type expression closes.
func bracketDelta(line string) int {
	delta := 0
	for _, r := range line {
		switch r {
		case '{', '(', '[':
			delta++
		case '}', ')', ']':
			delta--
		}
	}
	return delta
}

// matchRelation recognizes a relation annotation line and derives the foreign
// key field from its target: lowerFirst(Target) + "Id" for to-one kinds,
// lowerFirst(Target) + "Ids" for to-many kinds.
func matchRelation(line string) (types.RawField, bool) {
	m := relationRe.FindStringSubmatch(line)
	if m == nil {
		return types.RawField{}, false
	}

	kind := relationSuffixes[m[1]]
	return types.RawField{
		Name:       naming.LowerFirst(m[2]) + kind.suffix,
		IsRelation: true,
		IsArray:    kind.toMany,
	}, true
}

// matchProperty recognizes a plain single-line property declaration.
func matchProperty(line string) (types.RawField, bool) {
	m := propertyRe.FindStringSubmatch(line)
	if m == nil {
		return types.RawField{}, false
	}

	declared := strings.TrimSpace(m[3])
	return types.RawField{
		Name:           m[1],
		DeclaredType:   declared,
		IsArray:        isArrayType(declared),
		SourceOptional: m[2] == "?",
	}, true
}

// isArrayType reports whether a declared type token is array shaped.
func isArrayType(declared string) bool {
	return strings.HasSuffix(declared, "[]") ||
		strings.Contains(strings.ToLower(declared), "array<")
}

// EntityNameFromFile derives a fallback entity name from the file name, used
// when the declaration text carries no recognizable class line:
// "sales-order.entity.ts" -> "SalesOrder".
func EntityNameFromFile(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimSuffix(base, ".entity")
	return naming.Pascal(base)
}
