package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGo(t *testing.T) {
	entity, specs := pedidoEntity()

	file, err := RenderGo(entity, specs, "dto")
	require.NoError(t, err)

	assert.Equal(t, "pedido_dto.go", file.Name)
	assert.Contains(t, file.Content, "Code generated by nestdto-gen. DO NOT EDIT.")
	assert.Contains(t, file.Content, "package dto")
	assert.Contains(t, file.Content, "type CreatePedidoDto struct")
	assert.Contains(t, file.Content, "type UpdatePedidoDto struct")

	// Required relation key on the create variant.
	assert.Contains(t, file.Content, "ClienteId float64")
	assert.Contains(t, file.Content, `json:"clienteId" validate:"required"`)

	// Positive check carries over as gt=0.
	assert.Contains(t, file.Content, `validate:"required,gt=0"`)

	// Optional array field.
	assert.Contains(t, file.Content, "Tags []any")
	assert.Contains(t, file.Content, `json:"tags,omitempty" validate:"omitempty"`)

	// Update variant uses pointers and omitempty throughout.
	assert.Contains(t, file.Content, "ClienteId *float64")
	assert.Contains(t, file.Content, `json:"clienteId,omitempty" validate:"omitempty"`)
}

func TestGoDtoFileName(t *testing.T) {
	assert.Equal(t, "sales_order_dto.go", GoDtoFileName("SalesOrder"))
}
