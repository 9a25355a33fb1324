package dto

import "github.com/shopspring/decimal"

// ClientRequest body para POST /api/clients y para la resolución
// lookup-or-create previa a facturar.
type ClientRequest struct {
	DocumentType   string `json:"document_type" validate:"required,oneof=01 03 11 14"`
	DocumentNumber string `json:"document_number"`
	NRC            string `json:"nrc,omitempty"`
	Name           string `json:"name" validate:"required,max=120"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Address        string `json:"address,omitempty"`
	Department     string `json:"department,omitempty"`
	Municipality   string `json:"municipality,omitempty"`

	Exempt           bool `json:"exempt"`
	RetentionSubject bool `json:"retention_subject"`
	Exporter         bool `json:"exporter"`
	Government       bool `json:"government"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID             string `json:"id"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	NRC            string `json:"nrc,omitempty"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	Department     string `json:"department"`
	Municipality   string `json:"municipality"`

	Exempt           bool `json:"exempt"`
	RetentionSubject bool `json:"retention_subject"`
	Exporter         bool `json:"exporter"`
	Government       bool `json:"government"`
}

// InvoiceItemRequest línea de factura. El descuento entra como porcentaje y
// se convierte una sola vez a monto absoluto al crear o editar la línea.
type InvoiceItemRequest struct {
	SKU             string          `json:"sku,omitempty"`
	Description     string          `json:"description" validate:"required,max=200"`
	Quantity        decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxTreatment    string          `json:"tax_treatment" validate:"omitempty,oneof=gravada exenta"`
}

// NonTaxableRequest monto no afecto: suma al documento pero nunca al IVA.
type NonTaxableRequest struct {
	Description string          `json:"description" validate:"required,max=200"`
	Amount      decimal.Decimal `json:"amount"`
}

// SpecialTaxRequest impuesto específico, solo declarativo.
type SpecialTaxRequest struct {
	Description    string          `json:"description" validate:"required,max=200"`
	Amount         decimal.Decimal `json:"amount"`
	Classification string          `json:"classification" validate:"omitempty,oneof=gravado exento"`
}

// CreateInvoiceRequest body para POST /api/invoices.
type CreateInvoiceRequest struct {
	DocumentType       string               `json:"document_type" validate:"required,oneof=01 03 11 14"`
	Client             ClientRequest        `json:"client" validate:"required"`
	Items              []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	NonTaxables        []NonTaxableRequest  `json:"non_taxables,omitempty" validate:"omitempty,dive"`
	SpecialTaxes       []SpecialTaxRequest  `json:"special_taxes,omitempty" validate:"omitempty,dive"`
	VATRetention       decimal.Decimal      `json:"vat_retention"`
	PaymentMethod      string               `json:"payment_method,omitempty"`
	OperationCondition string               `json:"operation_condition,omitempty"`
}

// UpdateInvoiceItemsRequest body para PUT /api/invoices/:id/items. Reemplaza
// las líneas y dispara el recálculo completo de totales.
type UpdateInvoiceItemsRequest struct {
	Items        []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	NonTaxables  []NonTaxableRequest  `json:"non_taxables,omitempty" validate:"omitempty,dive"`
	SpecialTaxes []SpecialTaxRequest  `json:"special_taxes,omitempty" validate:"omitempty,dive"`
	VATRetention decimal.Decimal      `json:"vat_retention"`
}

// UpdateInvoiceStatusRequest body para PATCH /api/invoices/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING PAID VOIDED"`
}

// InvoiceItemResponse línea en respuestas. DiscountPercent es un derivado de
// presentación redondeado a 2 decimales; el monto absoluto es el dato fiscal.
type InvoiceItemResponse struct {
	ID               string          `json:"id"`
	SKU              string          `json:"sku,omitempty"`
	Description      string          `json:"description"`
	Quantity         decimal.Decimal `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	DiscountAbsolute decimal.Decimal `json:"discount_absolute"`
	DiscountPercent  decimal.Decimal `json:"discount_percent"`
	TaxTreatment     string          `json:"tax_treatment"`
	Subtotal         decimal.Decimal `json:"subtotal"`
}

// InvoiceResponse factura con receptor, líneas y totales.
type InvoiceResponse struct {
	ID                 string                `json:"id"`
	DocumentType       string                `json:"document_type"`
	Number             string                `json:"number"`
	Receptor           ReceptorResponse      `json:"receptor"`
	Items              []InvoiceItemResponse `json:"items"`
	NonTaxables        []NonTaxableRequest   `json:"non_taxables,omitempty"`
	SpecialTaxes       []SpecialTaxRequest   `json:"special_taxes,omitempty"`
	PaymentMethod      string                `json:"payment_method,omitempty"`
	OperationCondition string                `json:"operation_condition,omitempty"`
	Status             string                `json:"status"`
	Date               string                `json:"date"`

	TaxableSubtotal decimal.Decimal `json:"taxable_subtotal"`
	ExemptSubtotal  decimal.Decimal `json:"exempt_subtotal"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	NonTaxableTotal decimal.Decimal `json:"non_taxable_total"`
	VAT             decimal.Decimal `json:"vat"`
	VATRetention    decimal.Decimal `json:"vat_retention"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
}

// ReceptorResponse instantánea del cliente al momento de facturar.
type ReceptorResponse struct {
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	NRC            string `json:"nrc,omitempty"`
	Name           string `json:"name"`
	Address        string `json:"address,omitempty"`
	Department     string `json:"department,omitempty"`
	Municipality   string `json:"municipality,omitempty"`
}
