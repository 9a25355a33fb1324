package repository

import "github.com/fantasmadigital/nexus-erp/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para facturas.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
}
