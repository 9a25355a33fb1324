package fiscal

import "github.com/shopspring/decimal"

// Conversión porcentaje ↔ monto de descuento.
//
// El formulario captura el descuento como porcentaje, pero la línea persiste
// el monto absoluto: los totales dependen del monto, no del porcentaje. La
// conversión es de una sola vía y con pérdida — al reabrir la línea para
// editar, el porcentaje se reconstruye redondeado a 2 decimales, por lo que el
// viaje de ida y vuelta tiene una tolerancia de ±0.01.

// DiscountFromPercent convierte el porcentaje capturado a monto absoluto:
// (cantidad × precio) × (porcentaje / 100). Se calcula una sola vez al crear o
// editar la línea; el motor de totales no vuelve a derivarlo.
func DiscountFromPercent(quantity, unitPrice, percent decimal.Decimal) decimal.Decimal {
	gross := quantity.Mul(unitPrice)
	return gross.Mul(percent).Div(decimal.NewFromInt(100))
}

// PercentFromDiscount reconstruye el porcentaje para mostrarlo al editar:
// (monto / (cantidad × precio)) × 100, redondeado a 2 decimales. Con bruto
// cero devuelve cero (línea sin base sobre la cual descontar).
func PercentFromDiscount(quantity, unitPrice, discountAbsolute decimal.Decimal) decimal.Decimal {
	gross := quantity.Mul(unitPrice)
	if gross.IsZero() {
		return decimal.Zero
	}
	return discountAbsolute.Div(gross).Mul(decimal.NewFromInt(100)).Round(2)
}
