// Package validator runs a lint pass over extracted entity models before
// anything is rendered. Findings are advisory: extraction problems are local
// to one entity and never abort the batch.
package validator

import (
	"fmt"

	"git.weirdcat.su/weirdcat/nestdto-gen/internal/logger"
	"git.weirdcat.su/weirdcat/nestdto-gen/internal/mapper"
	"git.weirdcat.su/weirdcat/nestdto-gen/internal/types"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one finding against an extracted entity model.
type Issue struct {
	Entity     string
	Field      string
	Message    string
	Severity   Severity
	Suggestion string
}

func (i Issue) Error() string {
	prefix := "[ERROR]"
	if i.Severity == SeverityWarning {
		prefix = "[WARN] "
	}

	msg := fmt.Sprintf("%s %s", prefix, i.Entity)
	if i.Field != "" {
		msg += "." + i.Field
	}
	msg += ": " + i.Message

	if i.Suggestion != "" {
		msg += fmt.Sprintf("\n         Suggestion: %s", i.Suggestion)
	}
	return msg
}

// Result holds the findings of one lint run.
type Result struct {
	Errors   []Issue
	Warnings []Issue
	Stats    map[string]int
}

// IsValid returns true if there are no errors.
func (r *Result) IsValid() bool {
	return len(r.Errors) == 0
}

// Validate inspects the extracted entity models and reports per-entity
// findings: zero extracted fields (entity is skipped), duplicate field names
// (kept, last declaration wins in the rendered class) and unrecognized type
// tokens (fall back to "any" with no strong validation rule).
func Validate(entities []types.EntityModel) *Result {
	logger.Section("Lint")

	result := &Result{Stats: make(map[string]int)}

	totalFields := 0
	for _, entity := range entities {
		logger.Verbose("Linting entity: %s (%s)", entity.Name, entity.SourcePath)
		totalFields += len(entity.Fields)

		if len(entity.Fields) == 0 {
			result.Warnings = append(result.Warnings, Issue{
				Entity:     entity.Name,
				Message:    "no fields extracted, entity will be skipped",
				Severity:   SeverityWarning,
				Suggestion: "check that the declaration uses `name: type;` properties or relation annotations",
			})
			continue
		}

		seen := make(map[string]bool)
		for _, field := range entity.Fields {
			if seen[field.Name] {
				result.Warnings = append(result.Warnings, Issue{
					Entity:     entity.Name,
					Field:      field.Name,
					Message:    "declared more than once, the last declaration wins in the generated class",
					Severity:   SeverityWarning,
					Suggestion: "remove the duplicate declaration from the entity",
				})
			}
			seen[field.Name] = true

			if !field.IsRelation && mapper.Canonicalize(field.DeclaredType) == types.TypeAny {
				logger.Verbose("  %s.%s: unrecognized type %q, falling back to any",
					entity.Name, field.Name, field.DeclaredType)
				result.Stats["unrecognized_types"]++
			}
		}
	}

	result.Stats["entities"] = len(entities)
	result.Stats["fields"] = totalFields
	result.Stats["warnings"] = len(result.Warnings)

	for _, w := range result.Warnings {
		logger.Warning("%s", w.Error())
	}

	logger.Stats("Lint statistics", map[string]any{
		"Entities":           result.Stats["entities"],
		"Fields":             result.Stats["fields"],
		"Unrecognized types": result.Stats["unrecognized_types"],
		"Warnings":           result.Stats["warnings"],
	})

	return result
}
