package fiscal_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	"github.com/fantasmadigital/nexus-erp/internal/domain/fiscal"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del motor de totales: partición gravada/exenta, IVA 13%, retención con
// piso en cero y montos no afectos fuera del subtotal.
// ──────────────────────────────────────────────────────────────────────────────

func linea(qty, price float64, treatment string) entity.InvoiceLineItem {
	return entity.InvoiceLineItem{
		Quantity:     decimal.NewFromFloat(qty),
		UnitPrice:    decimal.NewFromFloat(price),
		TaxTreatment: treatment,
	}
}

// Escenario de referencia: una línea gravada (2 × $25.00) y una exenta
// (1 × $10.00) con retención de $1.00.
func TestCompute_GravadaYExentaConRetencion(t *testing.T) {
	items := []entity.InvoiceLineItem{
		linea(2, 25.00, entity.TaxTreatmentGravada),
		linea(1, 10.00, entity.TaxTreatmentExenta),
	}

	tot := fiscal.Compute(items, nil, decimal.NewFromFloat(1.00))

	assert.True(t, tot.TaxableSubtotal.Equal(decimal.NewFromFloat(50.00)), "subtotal gravado: %s", tot.TaxableSubtotal)
	assert.True(t, tot.ExemptSubtotal.Equal(decimal.NewFromFloat(10.00)), "subtotal exento: %s", tot.ExemptSubtotal)
	assert.True(t, tot.Subtotal.Equal(decimal.NewFromFloat(60.00)), "subtotal: %s", tot.Subtotal)
	assert.True(t, tot.VAT.Equal(decimal.NewFromFloat(6.50)), "IVA 13%% de 50.00: %s", tot.VAT)
	assert.True(t, tot.GrandTotal.Equal(decimal.NewFromFloat(65.50)), "total: %s", tot.GrandTotal)
}

// Una retención mayor que subtotal+IVA deja el total en cero, nunca negativo.
func TestCompute_RetencionExcesivaPisaEnCero(t *testing.T) {
	items := []entity.InvoiceLineItem{
		linea(2, 25.00, entity.TaxTreatmentGravada),
		linea(1, 10.00, entity.TaxTreatmentExenta),
	}

	tot := fiscal.Compute(items, nil, decimal.NewFromFloat(100.00))

	assert.True(t, tot.GrandTotal.IsZero(), "el total debe quedar en cero, no %s", tot.GrandTotal)
	// Los parciales no se ven afectados por el piso.
	assert.True(t, tot.Subtotal.Equal(decimal.NewFromFloat(60.00)))
	assert.True(t, tot.VAT.Equal(decimal.NewFromFloat(6.50)))
}

// Las líneas exentas jamás contribuyen al IVA.
func TestCompute_ExentasNoGeneranIVA(t *testing.T) {
	items := []entity.InvoiceLineItem{
		linea(3, 40.00, entity.TaxTreatmentExenta),
		linea(1, 99.99, entity.TaxTreatmentExenta),
	}

	tot := fiscal.Compute(items, nil, decimal.Zero)

	assert.True(t, tot.VAT.IsZero(), "IVA de líneas exentas debe ser 0, no %s", tot.VAT)
	assert.True(t, tot.TaxableSubtotal.IsZero())
	assert.True(t, tot.Subtotal.Equal(tot.ExemptSubtotal))
}

// Los montos no afectos se reportan aparte y no entran al subtotal ni al IVA.
func TestCompute_NoAfectosFueraDelSubtotal(t *testing.T) {
	items := []entity.InvoiceLineItem{linea(1, 100.00, entity.TaxTreatmentGravada)}
	nonTaxables := []entity.NonTaxableAmount{
		{Description: "Timbre fiscal", Amount: decimal.NewFromFloat(5.00)},
		{Description: "Tasa municipal", Amount: decimal.NewFromFloat(2.50)},
	}

	tot := fiscal.Compute(items, nonTaxables, decimal.Zero)

	assert.True(t, tot.NonTaxableTotal.Equal(decimal.NewFromFloat(7.50)))
	assert.True(t, tot.Subtotal.Equal(decimal.NewFromFloat(100.00)), "no afectos no deben sumar al subtotal")
	assert.True(t, tot.VAT.Equal(decimal.NewFromFloat(13.00)), "no afectos no deben sumar a la base del IVA")
}

// subtotal = gravado + exento exactamente, sin deriva de redondeo, incluso con
// precios que no son exactos en binario.
func TestCompute_SubtotalEsSumaExactaDeParticiones(t *testing.T) {
	items := []entity.InvoiceLineItem{
		linea(3, 0.10, entity.TaxTreatmentGravada),
		linea(7, 0.07, entity.TaxTreatmentGravada),
		linea(11, 1.01, entity.TaxTreatmentExenta),
	}

	tot := fiscal.Compute(items, nil, decimal.Zero)

	assert.True(t, tot.Subtotal.Equal(tot.TaxableSubtotal.Add(tot.ExemptSubtotal)))
	assert.True(t, tot.TaxableSubtotal.Equal(decimal.NewFromFloat(0.79)), "0.30+0.49 exacto: %s", tot.TaxableSubtotal)
}

// El descuento se descuenta del subtotal de la línea antes de particionar.
func TestCompute_DescuentoAbsolutoReduceLaLinea(t *testing.T) {
	it := linea(10, 5.00, entity.TaxTreatmentGravada)
	it.DiscountAbsolute = decimal.NewFromFloat(10.00)

	tot := fiscal.Compute([]entity.InvoiceLineItem{it}, nil, decimal.Zero)

	assert.True(t, tot.TaxableSubtotal.Equal(decimal.NewFromFloat(40.00)))
	assert.True(t, tot.VAT.Equal(decimal.NewFromFloat(5.20)))
}

// Sin líneas ni retención todo queda en cero.
func TestCompute_FacturaVacia(t *testing.T) {
	tot := fiscal.Compute(nil, nil, decimal.Zero)
	assert.True(t, tot.GrandTotal.IsZero())
	assert.True(t, tot.Subtotal.IsZero())
	assert.True(t, tot.VAT.IsZero())
}

// Propiedad: el total nunca es negativo sin importar la magnitud de la retención.
func TestCompute_TotalNuncaNegativo(t *testing.T) {
	items := []entity.InvoiceLineItem{linea(1, 1.00, entity.TaxTreatmentGravada)}
	for _, ret := range []float64{0, 0.5, 1.13, 2, 1000, 1e9} {
		tot := fiscal.Compute(items, nil, decimal.NewFromFloat(ret))
		assert.False(t, tot.GrandTotal.IsNegative(), "retención %v produjo total negativo %s", ret, tot.GrandTotal)
	}
}

// Apply copia todos los totales sobre la entidad.
func TestTotals_ApplySobreFactura(t *testing.T) {
	items := []entity.InvoiceLineItem{linea(2, 25.00, entity.TaxTreatmentGravada)}
	tot := fiscal.Compute(items, nil, decimal.Zero)

	var inv entity.Invoice
	tot.Apply(&inv)

	assert.True(t, inv.Subtotal.Equal(tot.Subtotal))
	assert.True(t, inv.VAT.Equal(tot.VAT))
	assert.True(t, inv.GrandTotal.Equal(tot.GrandTotal))
}

// ──────────────────────────────────────────────────────────────────────────────
// Conversión de descuento porcentaje ↔ monto
// ──────────────────────────────────────────────────────────────────────────────

// Vector de referencia: qty=10, precio=5, 20% → $10.00 de descuento y
// subtotal de línea $40.00; al reabrir se recupera 20% (±0.01).
func TestDescuento_ViajeDeIdaYVuelta(t *testing.T) {
	qty := decimal.NewFromInt(10)
	price := decimal.NewFromInt(5)
	pct := decimal.NewFromInt(20)

	abs := fiscal.DiscountFromPercent(qty, price, pct)
	require.True(t, abs.Equal(decimal.NewFromFloat(10.00)), "descuento absoluto: %s", abs)

	sub := fiscal.LineSubtotal(qty, price, abs)
	assert.True(t, sub.Equal(decimal.NewFromFloat(40.00)), "subtotal de línea: %s", sub)

	recovered := fiscal.PercentFromDiscount(qty, price, abs)
	diff := recovered.Sub(pct).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)),
		"porcentaje recuperado %s fuera de tolerancia ±0.01", recovered)
}

// Con bruto cero no hay base para el porcentaje: se devuelve cero.
func TestDescuento_PorcentajeConBrutoCero(t *testing.T) {
	pct := fiscal.PercentFromDiscount(decimal.Zero, decimal.NewFromInt(5), decimal.NewFromInt(1))
	assert.True(t, pct.IsZero())
}

// La reconstrucción del porcentaje redondea a 2 decimales (conversión con pérdida).
func TestDescuento_PorcentajeRedondeadoADosDecimales(t *testing.T) {
	qty := decimal.NewFromInt(3)
	price := decimal.NewFromFloat(9.99)
	abs := decimal.NewFromFloat(1.00)

	pct := fiscal.PercentFromDiscount(qty, price, abs)
	assert.True(t, pct.Equal(decimal.NewFromFloat(3.34)), "1/29.97×100 redondeado: %s", pct)
}

// La retención sugerida es el 1% del subtotal gravado.
func TestSuggestedRetention_UnoPorCiento(t *testing.T) {
	ret := fiscal.SuggestedRetention(decimal.NewFromFloat(200.00))
	assert.True(t, ret.Equal(decimal.NewFromFloat(2.00)), "retención sugerida: %s", ret)
}
