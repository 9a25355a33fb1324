package billing

import (
	"context"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
)

// InvoicePDFGenerator puerto hacia el generador de la representación gráfica.
// El caso de uso entrega la factura con el receptor ya resuelto y los datos
// del emisor; el diseño y la composición del documento son del adaptador.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, company *entity.Company) ([]byte, error)
}
