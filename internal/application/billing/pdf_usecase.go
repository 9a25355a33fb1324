package billing

import (
	"context"
	"fmt"

	"github.com/fantasmadigital/nexus-erp/internal/domain"
	"github.com/fantasmadigital/nexus-erp/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura emitida.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	companyRepo repository.CompanyRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(invoiceRepo repository.InvoiceRepository, companyRepo repository.CompanyRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, companyRepo: companyRepo, generator: generator}
}

// DownloadInvoicePDF carga factura y emisor y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la factura no existe.
//   - domain.ErrConflict        si el emisor aún no está configurado.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	company, err := uc.companyRepo.Get()
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener emisor: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrConflict
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, company)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", inv.Number), nil
}
