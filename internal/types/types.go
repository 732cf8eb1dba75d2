package types

// CanonicalType is the closed set of target types every source type token is
// reduced to. TypeAny is the fallback for unrecognized tokens.
type CanonicalType string

const (
	TypeString  CanonicalType = "string"
	TypeNumber  CanonicalType = "number"
	TypeBoolean CanonicalType = "boolean"
	TypeDate    CanonicalType = "date"
	TypeArray   CanonicalType = "array"
	TypeAny     CanonicalType = "any"
)

// Rule identifies one validation rule attached to a DTO field, independent of
// the syntax a renderer uses to express it.
type Rule string

const (
	RuleIsString   Rule = "IsString"
	RuleIsNumber   Rule = "IsNumber"
	RuleIsPositive Rule = "IsPositive"
	RuleIsBoolean  Rule = "IsBoolean"
	RuleIsDate     Rule = "IsDate"
	RuleIsArray    Rule = "IsArray"

	// RuleNumericRelationCoercion coerces an incoming value to numeric before
	// validation. Attached to every relation-derived field, after its base
	// numeric rule.
	RuleNumericRelationCoercion Rule = "NumericRelationCoercion"

	// Presence rules. Every field carries exactly one of the two.
	RuleIsNotEmpty Rule = "IsNotEmpty"
	RuleIsOptional Rule = "IsOptional"
)

// RawField is one entity field as extracted from declaration text.
type RawField struct {
	Name string

	// DeclaredType is the type token verbatim from source. Empty when the
	// field originates from a relation annotation.
	DeclaredType string

	IsRelation     bool
	IsArray        bool
	SourceOptional bool
}

// EntityModel holds the ordered field sequence extracted from one entity
// declaration file. Field order is the order of first appearance in source
// and determines field order in both generated DTO variants.
type EntityModel struct {
	Name       string
	SourcePath string
	Fields     []RawField
}

// DtoFieldSpec is the mapped, renderer-ready form of one field. Each spec is
// produced from exactly one RawField, order preserving.
type DtoFieldSpec struct {
	Name          string
	CanonicalType CanonicalType
	IsArray       bool
	Required      bool

	// Rules holds at most one type rule plus modifiers, in emission order.
	Rules []Rule

	// Presence is RuleIsNotEmpty when the field is required, RuleIsOptional
	// otherwise.
	Presence Rule
}
