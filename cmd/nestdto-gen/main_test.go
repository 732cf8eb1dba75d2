package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pedidoEntity = `import { Entity, Column, ManyToOne } from 'typeorm';

@Entity()
export class Pedido {
  @Column()
  total: number;

  @Column({ nullable: true })
  notas?: string;

  @ManyToOne(() => Cliente, (cliente) => cliente.pedidos)
  cliente: Cliente;
}
`

func TestGenerateEndToEnd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pedido.entity.ts"), []byte(pedidoEntity), 0o644))

	err := newApp().Run([]string{"nestdto-gen", "generate", "--dir", dir})
	require.NoError(t, err)

	create, err := os.ReadFile(filepath.Join(dir, "dto", "create-pedido.dto.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(create), "export class CreatePedidoDto {")
	assert.Contains(t, string(create), "clienteId: number;")
	assert.Contains(t, string(create), "notas?: string;")

	update, err := os.ReadFile(filepath.Join(dir, "dto", "update-pedido.dto.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(update), "export class UpdatePedidoDto extends PartialType(CreatePedidoDto) {}")
}

func TestGenerateGoTarget(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pedido.entity.ts"), []byte(pedidoEntity), 0o644))

	cfgPath := filepath.Join(dir, "nestdto.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("targets: [ts, go]\n"), 0o644))

	err := newApp().Run([]string{"nestdto-gen", "generate", "--dir", dir, "--config", cfgPath})
	require.NoError(t, err)

	goFile, err := os.ReadFile(filepath.Join(dir, "dto", "pedido_dto.go"))
	require.NoError(t, err)
	assert.Contains(t, string(goFile), "type CreatePedidoDto struct")
	assert.Contains(t, string(goFile), "type UpdatePedidoDto struct")
}

func TestGenerateSkipsEntityWithoutFields(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.entity.ts"),
		[]byte("// nothing declarable here\nexport class Empty {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pedido.entity.ts"), []byte(pedidoEntity), 0o644))

	err := newApp().Run([]string{"nestdto-gen", "generate", "--dir", dir})
	require.NoError(t, err, "one empty entity must not abort the batch")

	_, statErr := os.Stat(filepath.Join(dir, "dto", "create-empty.dto.ts"))
	assert.True(t, os.IsNotExist(statErr))

	_, statErr = os.Stat(filepath.Join(dir, "dto", "create-pedido.dto.ts"))
	assert.NoError(t, statErr)
}

func TestGenerateFailsWhenNoEntityFiles(t *testing.T) {
	err := newApp().Run([]string{"nestdto-gen", "generate", "--dir", t.TempDir()})
	assert.ErrorContains(t, err, "no .entity.ts files found")
}

func TestGenerateDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pedido.entity.ts"), []byte(pedidoEntity), 0o644))

	err := newApp().Run([]string{"nestdto-gen", "generate", "--dir", dir, "--dry-run"})
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "dto"))
	assert.True(t, os.IsNotExist(statErr))
}
