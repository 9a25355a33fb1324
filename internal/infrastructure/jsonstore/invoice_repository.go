package jsonstore

import (
	"sync"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	"github.com/fantasmadigital/nexus-erp/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre un documento JSON local.
type InvoiceRepo struct {
	mu       sync.RWMutex
	doc      *Document[[]*entity.Invoice]
	invoices []*entity.Invoice
}

// NewInvoiceRepository carga la colección de facturas desde su clave de almacenamiento.
func NewInvoiceRepository(dir string) (*InvoiceRepo, error) {
	doc, err := NewDocument[[]*entity.Invoice](dir, "invoices")
	if err != nil {
		return nil, err
	}
	invoices, _, err := doc.Load()
	if err != nil {
		return nil, err
	}
	return &InvoiceRepo{doc: doc, invoices: invoices}, nil
}

// Create antepone la factura nueva.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices = append([]*entity.Invoice{invoice}, r.invoices...)
	return r.doc.Save(r.invoices)
}

// GetByID devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, inv := range r.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

// List devuelve todas las facturas (más recientes primero).
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out, nil
}

// Update reemplaza la factura con el mismo ID. No-op si no existe.
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, inv := range r.invoices {
		if inv.ID == invoice.ID {
			r.invoices[i] = invoice
			return r.doc.Save(r.invoices)
		}
	}
	return nil
}
