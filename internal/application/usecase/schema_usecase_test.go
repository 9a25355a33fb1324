package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantasmadigital/nexus-erp/internal/application/dto"
	"github.com/fantasmadigital/nexus-erp/internal/application/usecase"
	"github.com/fantasmadigital/nexus-erp/internal/domain"
	"github.com/fantasmadigital/nexus-erp/internal/infrastructure/jsonstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Esquema dinámico: obligatorios siempre presentes, protegidos contra borrado
// y renombre, y la compuerta de configuración.
// ──────────────────────────────────────────────────────────────────────────────

var mandatorios = []string{"SKU", "Nombre", "Stock", "Precio", "Descuento", "Bodega"}

func newSchemaUC(t *testing.T) *usecase.SchemaUseCase {
	t.Helper()
	repo, err := jsonstore.NewSchemaRepository(t.TempDir())
	require.NoError(t, err)
	return usecase.NewSchemaUseCase(repo)
}

func keyNames(resp *dto.SchemaResponse) []string {
	out := make([]string, 0, len(resp.Fields))
	for _, f := range resp.Fields {
		out = append(out, f.KeyName)
	}
	return out
}

func TestGet_SinEsquemaGuardadoDevuelveObligatorios(t *testing.T) {
	uc := newSchemaUC(t)

	resp, err := uc.Get()
	require.NoError(t, err)
	assert.False(t, resp.Configured, "sin guardado previo: vista de configuración")
	assert.ElementsMatch(t, mandatorios, keyNames(resp))
}

func TestSave_MarcaConfiguradoYGarantizaObligatorios(t *testing.T) {
	uc := newSchemaUC(t)

	// Guardar un esquema parcial: los obligatorios ausentes se agregan solos.
	resp, err := uc.Save([]dto.FieldDefinitionRequest{
		{KeyName: "Color", DataType: "text"},
	})
	require.NoError(t, err)
	assert.True(t, resp.Configured, "el primer guardado habilita la vista operativa")
	assert.Subset(t, keyNames(resp), mandatorios)
	assert.Contains(t, keyNames(resp), "Color")
}

func TestAddField_DuplicadoYTipoInvalido(t *testing.T) {
	uc := newSchemaUC(t)

	_, err := uc.AddField(dto.FieldDefinitionRequest{KeyName: "sku", DataType: "text"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "SKU ya existe (insensible a mayúsculas)")

	_, err = uc.AddField(dto.FieldDefinitionRequest{KeyName: "Color", DataType: "rainbow"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	resp, err := uc.AddField(dto.FieldDefinitionRequest{KeyName: "Color", DataType: "text"})
	require.NoError(t, err)
	assert.Contains(t, keyNames(resp), "Color")
}

func TestRemoveField_ObligatorioEsNoOp(t *testing.T) {
	uc := newSchemaUC(t)

	before, err := uc.Get()
	require.NoError(t, err)

	var skuID string
	for _, f := range before.Fields {
		if f.KeyName == "SKU" {
			skuID = f.ID
		}
	}
	require.NotEmpty(t, skuID)

	after, err := uc.RemoveField(skuID)
	require.NoError(t, err, "borrar un obligatorio no es error, solo no-op")
	assert.ElementsMatch(t, keyNames(before), keyNames(after))
}

func TestRemoveField_CampoDeUsuario(t *testing.T) {
	uc := newSchemaUC(t)

	resp, err := uc.AddField(dto.FieldDefinitionRequest{KeyName: "Color", DataType: "text"})
	require.NoError(t, err)

	var colorID string
	for _, f := range resp.Fields {
		if f.KeyName == "Color" {
			colorID = f.ID
		}
	}
	after, err := uc.RemoveField(colorID)
	require.NoError(t, err)
	assert.NotContains(t, keyNames(after), "Color")

	_, err = uc.RemoveField("id-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRenameField_ObligatorioRechazado(t *testing.T) {
	uc := newSchemaUC(t)

	resp, err := uc.Get()
	require.NoError(t, err)
	var precioID string
	for _, f := range resp.Fields {
		if f.KeyName == "Precio" {
			precioID = f.ID
		}
	}

	_, err = uc.RenameField(precioID, "Costo")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRenameField_CampoDeUsuario(t *testing.T) {
	uc := newSchemaUC(t)

	resp, err := uc.AddField(dto.FieldDefinitionRequest{KeyName: "Color", DataType: "text"})
	require.NoError(t, err)
	var colorID string
	for _, f := range resp.Fields {
		if f.KeyName == "Color" {
			colorID = f.ID
		}
	}

	// Renombrar hacia un nombre ocupado se rechaza.
	_, err = uc.RenameField(colorID, "nombre")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	after, err := uc.RenameField(colorID, "Tono")
	require.NoError(t, err)
	assert.Contains(t, keyNames(after), "Tono")
	assert.NotContains(t, keyNames(after), "Color")
}
