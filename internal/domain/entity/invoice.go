package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura. PAID y VOIDED son terminales: una vez pagada o
// anulada, la factura no vuelve a PENDING (invariante duro, ver CanTransition).
const (
	InvoiceStatusPending = "PENDING"
	InvoiceStatusPaid    = "PAID"
	InvoiceStatusVoided  = "VOIDED"
)

// CanTransition indica si el cambio de estado de factura es legal.
// Cambiar al estado actual es un no-op permitido por los casos de uso; aquí
// solo se rechaza salir de un estado terminal.
func CanTransition(from, to string) bool {
	switch to {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusVoided:
	default:
		return false
	}
	if from == InvoiceStatusPaid || from == InvoiceStatusVoided {
		return false
	}
	return true
}

// Tratamiento fiscal de una línea de detalle (IVA El Salvador).
const (
	TaxTreatmentGravada = "gravada" // suma a la base imponible del IVA 13%
	TaxTreatmentExenta  = "exenta"  // suma al subtotal pero nunca al IVA
)

// InvoiceLineItem línea de detalle de la factura.
// Subtotal es siempre derivado: cantidad × precio unitario − descuento.
// DiscountAbsolute se guarda como monto absoluto aunque la captura sea en
// porcentaje; la conversión es de una sola vía al momento de editar la línea
// (ver fiscal.DiscountFromPercent) y el porcentaje mostrado al reabrir es una
// reconstrucción redondeada, no la fuente de verdad.
type InvoiceLineItem struct {
	ID               string          `json:"id"`
	SKU              string          `json:"sku,omitempty"`
	Description      string          `json:"description"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	DiscountAbsolute decimal.Decimal `json:"discount_absolute"`
	TaxTreatment     string          `json:"tax_treatment"`
	Subtotal         decimal.Decimal `json:"subtotal"`
}

// NonTaxableAmount monto no afecto: suma al total del documento en renglón
// aparte, pero jamás a la base del IVA ni al subtotal de ventas.
type NonTaxableAmount struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Clasificación de un impuesto específico (solo declarativa).
const (
	SpecialTaxGravado = "gravado"
	SpecialTaxExento  = "exento"
)

// SpecialTax impuesto específico (ad-valorem, FOVIAL, etc.). Se registra para
// divulgación junto a la factura; no participa del cálculo estándar del IVA ni
// del total, sea cual sea su clasificación.
type SpecialTax struct {
	ID             string          `json:"id"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	Classification string          `json:"classification"`
}

// Receptor instantánea del cliente al momento de facturar. Es una copia
// desnormalizada, no una referencia viva: editar el cliente después no
// altera facturas ya emitidas.
type Receptor struct {
	ClientID       string `json:"client_id,omitempty"`
	Name           string `json:"name"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	NRC            string `json:"nrc,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	Department     string `json:"department,omitempty"`
	Municipality   string `json:"municipality,omitempty"`
}

// Invoice factura (DTE) con sus líneas, montos no afectos, impuestos
// específicos y totales computados. Los totales son derivados del motor
// fiscal en cada mutación de líneas o retención; nunca se capturan a mano.
type Invoice struct {
	ID                 string             `json:"id"`
	DocumentType       string             `json:"document_type"` // catálogo mh.ValidDocumentTypes
	Number             string             `json:"number"`
	Receptor           Receptor           `json:"receptor"`
	Items              []InvoiceLineItem  `json:"items"`
	NonTaxables        []NonTaxableAmount `json:"non_taxables,omitempty"`
	SpecialTaxes       []SpecialTax       `json:"special_taxes,omitempty"`
	PaymentMethod      string             `json:"payment_method"`
	OperationCondition string             `json:"operation_condition"`
	Status             string             `json:"status"`
	TaxableSubtotal    decimal.Decimal    `json:"taxable_subtotal"`
	ExemptSubtotal     decimal.Decimal    `json:"exempt_subtotal"`
	Subtotal           decimal.Decimal    `json:"subtotal"`
	NonTaxableTotal    decimal.Decimal    `json:"non_taxable_total"`
	VAT                decimal.Decimal    `json:"vat"`
	VATRetention       decimal.Decimal    `json:"vat_retention"`
	GrandTotal         decimal.Decimal    `json:"grand_total"`
	Date               time.Time          `json:"date"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}
