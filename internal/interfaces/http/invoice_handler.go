package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fantasmadigital/nexus-erp/internal/application/billing"
	"github.com/fantasmadigital/nexus-erp/internal/application/dto"
)

// InvoiceHandler maneja la emisión y consulta de facturas.
type InvoiceHandler struct {
	uc    *billing.InvoiceUseCase
	pdfUC *billing.PDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdfUC *billing.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List GET /api/invoices
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// UpdateItems PUT /api/invoices/:id/items — reemplaza líneas y recomputa.
func (h *InvoiceHandler) UpdateItems(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceItemsRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	resp, err := h.uc.UpdateItems(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// UpdateStatus PATCH /api/invoices/:id/status
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceStatusRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	resp, err := h.uc.UpdateStatus(c.Params("id"), in.Status)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// DownloadPDF GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
