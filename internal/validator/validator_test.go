package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.weirdcat.su/weirdcat/nestdto-gen/internal/types"
)

func TestValidateCleanEntity(t *testing.T) {
	result := Validate([]types.EntityModel{{
		Name: "Client",
		Fields: []types.RawField{
			{Name: "id", DeclaredType: "number"},
			{Name: "name", DeclaredType: "string"},
		},
	}})

	assert.True(t, result.IsValid())
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 1, result.Stats["entities"])
	assert.Equal(t, 2, result.Stats["fields"])
}

func TestValidateNoFieldsExtracted(t *testing.T) {
	result := Validate([]types.EntityModel{{Name: "Empty"}})

	// Recoverable: a warning, never an error that would abort the batch.
	assert.True(t, result.IsValid())
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "Empty", result.Warnings[0].Entity)
	assert.Contains(t, result.Warnings[0].Message, "no fields extracted")
}

func TestValidateDuplicateFieldNames(t *testing.T) {
	result := Validate([]types.EntityModel{{
		Name: "Order",
		Fields: []types.RawField{
			{Name: "clientId", IsRelation: true},
			{Name: "clientId", DeclaredType: "number"},
		},
	}})

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "clientId", result.Warnings[0].Field)
	assert.Contains(t, result.Warnings[0].Message, "last declaration wins")
}

func TestValidateCountsUnrecognizedTypes(t *testing.T) {
	result := Validate([]types.EntityModel{{
		Name:   "Doc",
		Fields: []types.RawField{{Name: "payload", DeclaredType: "Buffer"}},
	}})

	assert.True(t, result.IsValid())
	assert.Equal(t, 1, result.Stats["unrecognized_types"])
}

func TestIssueError(t *testing.T) {
	issue := Issue{
		Entity:     "Order",
		Field:      "clientId",
		Message:    "declared more than once",
		Severity:   SeverityWarning,
		Suggestion: "remove the duplicate",
	}

	msg := issue.Error()
	assert.Contains(t, msg, "[WARN]")
	assert.Contains(t, msg, "Order.clientId")
	assert.Contains(t, msg, "Suggestion: remove the duplicate")
}
