package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fantasmadigital/nexus-erp/internal/application/dto"
	"github.com/fantasmadigital/nexus-erp/internal/domain"
	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	"github.com/fantasmadigital/nexus-erp/internal/domain/fiscal"
	"github.com/fantasmadigital/nexus-erp/internal/domain/repository"
	"github.com/fantasmadigital/nexus-erp/pkg/mh"
)

// InvoiceUseCase emisión y mutación de facturas. Los totales se recomputan con
// el motor fiscal en cada mutación de líneas o retención, de forma síncrona y
// determinista; nunca se cachean ni se capturan a mano.
type InvoiceUseCase struct {
	invoices repository.InvoiceRepository
	clients  *ClientUseCase
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, clients *ClientUseCase) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, clients: clients}
}

// Create emite una factura nueva en estado PENDING: resuelve el receptor
// (lookup-or-create por número de documento), convierte el descuento
// porcentual de cada línea a monto absoluto una sola vez y computa totales.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if !mh.ValidDocumentTypes[in.DocumentType] {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentMethod != "" && !mh.ValidPaymentMethods[in.PaymentMethod] {
		return nil, domain.ErrInvalidInput
	}
	if in.OperationCondition != "" && !mh.ValidOperationConditions[in.OperationCondition] {
		return nil, domain.ErrInvalidInput
	}
	in.Client.DocumentType = in.DocumentType

	client, err := uc.clients.FindOrCreate(in.Client)
	if err != nil {
		return nil, err
	}

	items, err := buildLineItems(in.Items)
	if err != nil {
		return nil, err
	}
	nonTaxables, err := buildNonTaxables(in.NonTaxables)
	if err != nil {
		return nil, err
	}
	specials, err := buildSpecialTaxes(in.SpecialTaxes)
	if err != nil {
		return nil, err
	}
	if in.VATRetention.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:           uuid.New().String(),
		DocumentType: in.DocumentType,
		Number:       fmt.Sprintf("DTE-%s-%d", in.DocumentType, now.Unix()),
		Receptor: entity.Receptor{
			ClientID:       client.ID,
			Name:           client.Name,
			DocumentType:   client.DocumentType,
			DocumentNumber: client.DocumentNumber,
			NRC:            client.NRC,
			Email:          client.Email,
			Phone:          client.Phone,
			Address:        client.Address,
			Department:     client.Department,
			Municipality:   client.Municipality,
		},
		Items:              items,
		NonTaxables:        nonTaxables,
		SpecialTaxes:       specials,
		PaymentMethod:      in.PaymentMethod,
		OperationCondition: in.OperationCondition,
		Status:             entity.InvoiceStatusPending,
		Date:               now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	fiscal.Compute(inv.Items, inv.NonTaxables, in.VATRetention).Apply(inv)

	if err := uc.invoices.Create(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// UpdateItems reemplaza líneas, montos no afectos, impuestos específicos y
// retención, y recomputa los totales. Sobre una factura pagada o anulada la
// edición se rechaza: los estados terminales congelan el documento.
func (uc *InvoiceUseCase) UpdateItems(id string, in dto.UpdateInvoiceItemsRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status != entity.InvoiceStatusPending {
		return nil, domain.ErrConflict
	}

	items, err := buildLineItems(in.Items)
	if err != nil {
		return nil, err
	}
	nonTaxables, err := buildNonTaxables(in.NonTaxables)
	if err != nil {
		return nil, err
	}
	specials, err := buildSpecialTaxes(in.SpecialTaxes)
	if err != nil {
		return nil, err
	}
	if in.VATRetention.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	inv.Items = items
	inv.NonTaxables = nonTaxables
	inv.SpecialTaxes = specials
	inv.UpdatedAt = time.Now()
	fiscal.Compute(inv.Items, inv.NonTaxables, in.VATRetention).Apply(inv)

	if err := uc.invoices.Update(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// UpdateStatus cambia el estado. PAID y VOIDED son terminales: salir de ellos
// se rechaza con ErrConflict. Cambiar al estado actual es un no-op.
func (uc *InvoiceUseCase) UpdateStatus(id, status string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status == status {
		return toInvoiceResponse(inv), nil
	}
	if !entity.CanTransition(inv.Status, status) {
		return nil, domain.ErrConflict
	}
	inv.Status = status
	inv.UpdatedAt = time.Now()
	if err := uc.invoices.Update(inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// Get devuelve la factura por ID.
func (uc *InvoiceUseCase) Get(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// List lista las facturas emitidas (más recientes primero).
func (uc *InvoiceUseCase) List() ([]*dto.InvoiceResponse, error) {
	list, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// buildLineItems valida cada línea y hace la conversión de una sola vía del
// descuento porcentual a monto absoluto. El subtotal es derivado, jamás
// capturado.
func buildLineItems(in []dto.InvoiceItemRequest) ([]entity.InvoiceLineItem, error) {
	if len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.InvoiceLineItem, 0, len(in))
	for _, req := range in {
		if !req.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if req.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if req.DiscountPercent.IsNegative() || req.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.ErrInvalidInput
		}
		treatment := req.TaxTreatment
		if treatment == "" {
			treatment = entity.TaxTreatmentGravada
		}
		discount := fiscal.DiscountFromPercent(req.Quantity, req.UnitPrice, req.DiscountPercent)
		items = append(items, entity.InvoiceLineItem{
			ID:               uuid.New().String(),
			SKU:              req.SKU,
			Description:      req.Description,
			Quantity:         req.Quantity,
			UnitPrice:        req.UnitPrice,
			DiscountAbsolute: discount,
			TaxTreatment:     treatment,
			Subtotal:         fiscal.LineSubtotal(req.Quantity, req.UnitPrice, discount),
		})
	}
	return items, nil
}

func buildNonTaxables(in []dto.NonTaxableRequest) ([]entity.NonTaxableAmount, error) {
	out := make([]entity.NonTaxableAmount, 0, len(in))
	for _, req := range in {
		if req.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		out = append(out, entity.NonTaxableAmount{Description: req.Description, Amount: req.Amount})
	}
	return out, nil
}

func buildSpecialTaxes(in []dto.SpecialTaxRequest) ([]entity.SpecialTax, error) {
	out := make([]entity.SpecialTax, 0, len(in))
	for _, req := range in {
		if req.Amount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		classification := req.Classification
		if classification == "" {
			classification = entity.SpecialTaxGravado
		}
		out = append(out, entity.SpecialTax{
			ID:             uuid.New().String(),
			Description:    req.Description,
			Amount:         req.Amount,
			Classification: classification,
		})
	}
	return out, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:           inv.ID,
		DocumentType: inv.DocumentType,
		Number:       inv.Number,
		Receptor: dto.ReceptorResponse{
			DocumentType:   inv.Receptor.DocumentType,
			DocumentNumber: inv.Receptor.DocumentNumber,
			NRC:            inv.Receptor.NRC,
			Name:           inv.Receptor.Name,
			Address:        inv.Receptor.Address,
			Department:     inv.Receptor.Department,
			Municipality:   inv.Receptor.Municipality,
		},
		Items:              make([]dto.InvoiceItemResponse, 0, len(inv.Items)),
		PaymentMethod:      inv.PaymentMethod,
		OperationCondition: inv.OperationCondition,
		Status:             inv.Status,
		Date:               inv.Date.Format("2006-01-02"),
		TaxableSubtotal:    inv.TaxableSubtotal,
		ExemptSubtotal:     inv.ExemptSubtotal,
		Subtotal:           inv.Subtotal,
		NonTaxableTotal:    inv.NonTaxableTotal,
		VAT:                inv.VAT,
		VATRetention:       inv.VATRetention,
		GrandTotal:         inv.GrandTotal,
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, dto.InvoiceItemResponse{
			ID:               it.ID,
			SKU:              it.SKU,
			Description:      it.Description,
			Quantity:         it.Quantity,
			UnitPrice:        it.UnitPrice,
			DiscountAbsolute: it.DiscountAbsolute,
			// Porcentaje reconstruido solo para mostrar al editar; el monto
			// absoluto es la fuente de verdad fiscal.
			DiscountPercent: fiscal.PercentFromDiscount(it.Quantity, it.UnitPrice, it.DiscountAbsolute),
			TaxTreatment:    it.TaxTreatment,
			Subtotal:        it.Subtotal,
		})
	}
	for _, nt := range inv.NonTaxables {
		resp.NonTaxables = append(resp.NonTaxables, dto.NonTaxableRequest{Description: nt.Description, Amount: nt.Amount})
	}
	for _, st := range inv.SpecialTaxes {
		resp.SpecialTaxes = append(resp.SpecialTaxes, dto.SpecialTaxRequest{
			Description:    st.Description,
			Amount:         st.Amount,
			Classification: st.Classification,
		})
	}
	return resp
}
