// Package fiscal implementa el motor de cálculo de totales e IVA para
// facturación en El Salvador: partición de líneas por tratamiento fiscal
// (gravadas / exentas), montos no afectos, IVA 13% y retención.
//
// Todo el cálculo es puro y determinista: los casos de uso lo invocan de forma
// síncrona en cada mutación de líneas o retención. La aritmética monetaria se
// hace con decimal a precisión completa; el redondeo a 2 decimales ocurre solo
// al presentar, nunca en pasos intermedios.
package fiscal

import (
	"github.com/shopspring/decimal"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
)

// IVARate tasa única del IVA salvadoreño (13%). Las líneas exentas y los
// montos no afectos nunca contribuyen a la base.
var IVARate = decimal.New(13, -2)

// RetentionRate tasa de retención de IVA para grandes contribuyentes (1%),
// usada para sugerir el monto de retención al facturar a un agente retenedor.
var RetentionRate = decimal.New(1, -2)

// Totals resultado de la agregación. Todos los montos están a precisión
// completa; GrandTotal nunca es negativo.
type Totals struct {
	TaxableSubtotal decimal.Decimal
	ExemptSubtotal  decimal.Decimal
	Subtotal        decimal.Decimal
	NonTaxableTotal decimal.Decimal
	VAT             decimal.Decimal
	VATRetention    decimal.Decimal
	GrandTotal      decimal.Decimal
}

// Compute particiona las líneas por tratamiento fiscal y agrega:
//
//	taxableSubtotal = Σ subtotal de líneas gravadas
//	exemptSubtotal  = Σ subtotal de líneas exentas
//	subtotal        = taxableSubtotal + exemptSubtotal
//	nonTaxableTotal = Σ montos no afectos (renglón aparte, fuera del subtotal)
//	vat             = taxableSubtotal × 13%
//	grandTotal      = max(0, subtotal + vat − retention)
//
// Una retención que exceda subtotal+IVA deja el total en cero sin error: el
// excedente se absorbe en silencio. Los impuestos específicos no entran aquí;
// son declarativos y se registran fuera del cálculo.
func Compute(items []entity.InvoiceLineItem, nonTaxables []entity.NonTaxableAmount, retention decimal.Decimal) Totals {
	var t Totals
	for _, it := range items {
		sub := LineSubtotal(it.Quantity, it.UnitPrice, it.DiscountAbsolute)
		if it.TaxTreatment == entity.TaxTreatmentExenta {
			t.ExemptSubtotal = t.ExemptSubtotal.Add(sub)
		} else {
			t.TaxableSubtotal = t.TaxableSubtotal.Add(sub)
		}
	}
	for _, nt := range nonTaxables {
		t.NonTaxableTotal = t.NonTaxableTotal.Add(nt.Amount)
	}

	t.Subtotal = t.TaxableSubtotal.Add(t.ExemptSubtotal)
	t.VAT = t.TaxableSubtotal.Mul(IVARate)
	t.VATRetention = retention

	grand := t.Subtotal.Add(t.VAT).Sub(retention)
	if grand.IsNegative() {
		grand = decimal.Zero
	}
	t.GrandTotal = grand
	return t
}

// LineSubtotal subtotal derivado de una línea: cantidad × precio − descuento.
// El descuento ya viene como monto absoluto (la conversión desde porcentaje
// ocurre una sola vez al capturar la línea, ver DiscountFromPercent).
func LineSubtotal(quantity, unitPrice, discountAbsolute decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice).Sub(discountAbsolute)
}

// SuggestedRetention retención sugerida (1% del subtotal gravado) cuando el
// receptor es agente de retención. Solo una sugerencia de captura; el monto
// final lo decide el usuario.
func SuggestedRetention(taxableSubtotal decimal.Decimal) decimal.Decimal {
	return taxableSubtotal.Mul(RetentionRate)
}

// Apply copia los totales computados sobre la factura.
func (t Totals) Apply(inv *entity.Invoice) {
	inv.TaxableSubtotal = t.TaxableSubtotal
	inv.ExemptSubtotal = t.ExemptSubtotal
	inv.Subtotal = t.Subtotal
	inv.NonTaxableTotal = t.NonTaxableTotal
	inv.VAT = t.VAT
	inv.VATRetention = t.VATRetention
	inv.GrandTotal = t.GrandTotal
}
