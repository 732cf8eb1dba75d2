// Package mapper turns extracted raw fields into renderer-ready DTO field
// specifications. Mapping is a pure transformation: no I/O, deterministic for
// identical input.
package mapper

import (
	"strings"

	"git.weirdcat.su/weirdcat/nestdto-gen/internal/types"
)

// Policy holds the generation policy knobs. They used to be implicit
// constants; keeping them in a named structure makes them testable and
// overridable from configuration.
type Policy struct {
	// RelationsRequired marks relation-derived fields required. No optional
	// marker exists on a relation annotation, so this is a default, not a
	// parsed value.
	RelationsRequired bool

	// PositiveNumbers attaches IsPositive to required, non-array,
	// non-relation numeric fields.
	PositiveNumbers bool
}

// DefaultPolicy returns the policy shipped with the generator.
func DefaultPolicy() Policy {
	return Policy{
		RelationsRequired: true,
		PositiveNumbers:   true,
	}
}

// typeRule is one canonicalization step: the first matching predicate wins,
// so the table order is load bearing.
type typeRule struct {
	matches func(token string) bool
	result  types.CanonicalType
}

// containsAny matches when the lower-cased token contains any of the keys.
func containsAny(keys ...string) func(string) bool {
	return func(token string) bool {
		for _, key := range keys {
			if strings.Contains(token, key) {
				return true
			}
		}
		return false
	}
}

// typeRules reduces a declared type token to its canonical type. Array shapes
// are tested ahead of the keyword groups so an element keyword inside an
// array token ("string[]", "Array<number>") cannot shadow the array itself.
var typeRules = []typeRule{
	{func(token string) bool {
		return strings.HasSuffix(token, "[]") || strings.Contains(token, "array<")
	}, types.TypeArray},
	{containsAny("string", "varchar", "text"), types.TypeString},
	{containsAny("number", "int", "decimal", "float", "double", "numeric", "smallint", "bigint"), types.TypeNumber},
	{containsAny("boolean", "true", "false"), types.TypeBoolean},
	{containsAny("date", "datetime", "timestamp"), types.TypeDate},
}

// Canonicalize reduces a declared type token to the closed canonical set.
// Tests are case-insensitive substring checks; unrecognized tokens resolve to
// TypeAny, which is a deliberate fallback rather than an error.
func Canonicalize(declared string) types.CanonicalType {
	token := strings.ToLower(strings.TrimSpace(declared))
	for _, rule := range typeRules {
		if rule.matches(token) {
			return rule.result
		}
	}
	return types.TypeAny
}

// baseRules maps a canonical type to its base validation rule. TypeAny has no
// entry: no strong rule is attached to an unrecognized type.
var baseRules = map[types.CanonicalType]types.Rule{
	types.TypeString:  types.RuleIsString,
	types.TypeNumber:  types.RuleIsNumber,
	types.TypeBoolean: types.RuleIsBoolean,
	types.TypeDate:    types.RuleIsDate,
	types.TypeArray:   types.RuleIsArray,
}

// Map derives the DTO field specification for one raw field.
func Map(f types.RawField, pol Policy) types.DtoFieldSpec {
	spec := types.DtoFieldSpec{
		Name:    f.Name,
		IsArray: f.IsArray,
	}

	if f.IsRelation {
		// Relation fields short-circuit the type table: the generated
		// foreign key column is always numeric.
		spec.CanonicalType = types.TypeNumber
		spec.Required = pol.RelationsRequired
	} else {
		spec.CanonicalType = Canonicalize(f.DeclaredType)
		spec.Required = !f.SourceOptional
	}

	if base, ok := baseRules[spec.CanonicalType]; ok {
		spec.Rules = append(spec.Rules, base)
	}
	if !f.IsRelation && pol.PositiveNumbers &&
		spec.CanonicalType == types.TypeNumber && spec.Required && !spec.IsArray {
		spec.Rules = append(spec.Rules, types.RuleIsPositive)
	}
	if f.IsRelation {
		spec.Rules = append(spec.Rules, types.RuleNumericRelationCoercion)
	}

	spec.Presence = types.RuleIsNotEmpty
	if !spec.Required {
		spec.Presence = types.RuleIsOptional
	}

	return spec
}

// MapFields maps a field sequence in order, one spec per raw field. Duplicate
// names are passed through untouched; the renderer writes fields in sequence
// order, so the later declaration wins in the emitted class.
func MapFields(fields []types.RawField, pol Policy) []types.DtoFieldSpec {
	specs := make([]types.DtoFieldSpec, len(fields))
	for i, f := range fields {
		specs[i] = Map(f, pol)
	}
	return specs
}
