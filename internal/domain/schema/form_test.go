package schema_test

import (
	"encoding/base64"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	"github.com/fantasmadigital/nexus-erp/internal/domain/schema"
)

// ──────────────────────────────────────────────────────────────────────────────
// Validación y coerción de capturas guiadas por el esquema
// ──────────────────────────────────────────────────────────────────────────────

func defsBasicas() []entity.FieldDefinition {
	return []entity.FieldDefinition{
		{KeyName: "Nombre", DataType: entity.FieldText, Required: true},
		{KeyName: "Stock", DataType: entity.FieldNumber, Required: true},
		{KeyName: "Precio", DataType: entity.FieldPrice, Required: true},
		{KeyName: "Descuento", DataType: entity.FieldDiscount},
		{KeyName: "Activo", DataType: entity.FieldBoolean},
		{KeyName: "Vencimiento", DataType: entity.FieldDate},
	}
}

func TestValidateAndCoerce_CapturaValida(t *testing.T) {
	input := map[string]any{
		"Nombre":      "  Café molido  ",
		"Stock":       "25",
		"Precio":      4.50,
		"Descuento":   10,
		"Activo":      "sí",
		"Vencimiento": "2026-12-31",
	}

	out, errs := schema.ValidateAndCoerce(defsBasicas(), input, nil)
	require.Empty(t, errs)

	assert.Equal(t, "Café molido", out["Nombre"])
	assert.Equal(t, 25.0, out["Stock"])
	assert.True(t, out["Precio"].(decimal.Decimal).Equal(decimal.NewFromFloat(4.50)))
	assert.True(t, out["Descuento"].(decimal.Decimal).Equal(decimal.NewFromInt(10)))
	assert.Equal(t, true, out["Activo"])
	assert.Equal(t, "2026-12-31", out["Vencimiento"])
}

func TestValidateAndCoerce_RequeridosFaltantes(t *testing.T) {
	out, errs := schema.ValidateAndCoerce(defsBasicas(), map[string]any{"Nombre": "   "}, nil)

	require.Len(t, errs, 3, "Nombre en blanco, Stock y Precio ausentes")
	fields := []string{errs[0].Field, errs[1].Field, errs[2].Field}
	assert.ElementsMatch(t, []string{"Nombre", "Stock", "Precio"}, fields)
	assert.NotContains(t, out, "Nombre")
}

func TestValidateAndCoerce_ValoresInvalidos(t *testing.T) {
	input := map[string]any{
		"Nombre":      "X",
		"Stock":       "veinticinco",
		"Precio":      -1,
		"Descuento":   150,
		"Vencimiento": "31/12/2026",
	}

	_, errs := schema.ValidateAndCoerce(defsBasicas(), input, nil)

	byField := map[string]string{}
	for _, e := range errs {
		byField[e.Field] = e.Message
	}
	assert.Contains(t, byField, "Stock")
	assert.Contains(t, byField, "Precio")
	assert.Contains(t, byField, "Descuento")
	assert.Contains(t, byField, "Vencimiento")
}

// La captura puede traer la clave con otra capitalización; se resuelve por alias.
func TestValidateAndCoerce_ClaveEnOtraForma(t *testing.T) {
	defs := []entity.FieldDefinition{{KeyName: "Precio", DataType: entity.FieldPrice, Required: true}}
	out, errs := schema.ValidateAndCoerce(defs, map[string]any{"precio": "7.25"}, nil)

	require.Empty(t, errs)
	assert.True(t, out["Precio"].(decimal.Decimal).Equal(decimal.NewFromFloat(7.25)))
}

// Claves fuera del esquema se descartan.
func TestValidateAndCoerce_DescartaClavesAjenas(t *testing.T) {
	defs := []entity.FieldDefinition{{KeyName: "Nombre", DataType: entity.FieldText}}
	out, errs := schema.ValidateAndCoerce(defs, map[string]any{"Nombre": "A", "hack": "x"}, nil)

	require.Empty(t, errs)
	assert.NotContains(t, out, "hack")
}

// ── Imágenes ──────────────────────────────────────────────────────────────────

func TestValidateAndCoerce_ImagenNuevaSeCodificaBase64(t *testing.T) {
	defs := []entity.FieldDefinition{{KeyName: "Imagen", DataType: entity.FieldImage}}
	raw := []byte{0x89, 0x50, 0x4e, 0x47}

	out, errs := schema.ValidateAndCoerce(defs, map[string]any{"Imagen": raw}, nil)
	require.Empty(t, errs)

	expected := "data:image/*;base64," + base64.StdEncoding.EncodeToString(raw)
	assert.Equal(t, expected, out["Imagen"])
}

// Al editar sin elegir archivo nuevo se retiene el valor almacenado intacto.
func TestValidateAndCoerce_ImagenSinCambioRetieneAnterior(t *testing.T) {
	defs := []entity.FieldDefinition{{KeyName: "Imagen", DataType: entity.FieldImage}}
	previous := map[string]any{"Imagen": "data:image/*;base64,Zm9v"}

	out, errs := schema.ValidateAndCoerce(defs, map[string]any{}, previous)
	require.Empty(t, errs)
	assert.Equal(t, "data:image/*;base64,Zm9v", out["Imagen"])
}

func TestValidateAndCoerce_ImagenRequeridaSinValor(t *testing.T) {
	defs := []entity.FieldDefinition{{KeyName: "Imagen", DataType: entity.FieldImage, Required: true}}
	_, errs := schema.ValidateAndCoerce(defs, map[string]any{}, nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "Imagen", errs[0].Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo de vida de vistas previas (adquirir/liberar)
// ──────────────────────────────────────────────────────────────────────────────

func TestPreviewManager_AdquirirYLiberar(t *testing.T) {
	m, err := schema.NewPreviewManager(t.TempDir())
	require.NoError(t, err)

	p, err := m.Acquire("Imagen", []byte("contenido"))
	require.NoError(t, err)
	require.FileExists(t, p.Path)
	assert.Equal(t, 1, m.ActiveCount())

	m.Release("Imagen")
	assert.Equal(t, 0, m.ActiveCount())
	_, statErr := os.Stat(p.Path)
	assert.True(t, os.IsNotExist(statErr), "el archivo temporal debe eliminarse al liberar")
}

// Reemplazar el archivo del mismo campo libera la vista previa anterior.
func TestPreviewManager_ReemplazoLiberaAnterior(t *testing.T) {
	m, err := schema.NewPreviewManager(t.TempDir())
	require.NoError(t, err)

	p1, err := m.Acquire("Imagen", []byte("uno"))
	require.NoError(t, err)
	p2, err := m.Acquire("Imagen", []byte("dos"))
	require.NoError(t, err)

	assert.Equal(t, 1, m.ActiveCount(), "solo la última vista previa queda viva")
	_, statErr := os.Stat(p1.Path)
	assert.True(t, os.IsNotExist(statErr))
	assert.FileExists(t, p2.Path)
}

// Cerrar el formulario libera todas las vistas previas en cualquier estado.
func TestPreviewManager_ReleaseAll(t *testing.T) {
	m, err := schema.NewPreviewManager(t.TempDir())
	require.NoError(t, err)

	_, err = m.Acquire("Imagen", []byte("a"))
	require.NoError(t, err)
	_, err = m.Acquire("Logo", []byte("b"))
	require.NoError(t, err)

	m.ReleaseAll()
	assert.Equal(t, 0, m.ActiveCount())

	// Liberar dos veces es inocuo.
	m.Release("Imagen")
	m.ReleaseAll()
}
