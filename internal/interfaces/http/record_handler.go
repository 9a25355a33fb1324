package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fantasmadigital/nexus-erp/internal/application/dto"
	"github.com/fantasmadigital/nexus-erp/internal/application/usecase"
	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	schemadomain "github.com/fantasmadigital/nexus-erp/internal/domain/schema"
)

// RecordHandler maneja los registros dinámicos (productos y traslados).
type RecordHandler struct {
	uc *usecase.RecordUseCase
}

// NewRecordHandler construye el handler.
func NewRecordHandler(uc *usecase.RecordUseCase) *RecordHandler {
	return &RecordHandler{uc: uc}
}

// fieldErrors responde los errores de campo del formulario dinámico como
// mensajes inline, nunca como error de sistema.
func fieldErrors(c *fiber.Ctx, ferrs []schemadomain.FieldError) error {
	fields := make([]dto.FieldErrorResponse, 0, len(ferrs))
	for _, fe := range ferrs {
		fields = append(fields, dto.FieldErrorResponse{Field: fe.Field, Message: fe.Message})
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"code":   "FIELD_VALIDATION",
		"fields": fields,
	})
}

// Create POST /api/records
func (h *RecordHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRecordRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	resp, ferrs, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	if len(ferrs) > 0 {
		return fieldErrors(c, ferrs)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Update PUT /api/records/:id
func (h *RecordHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRecordRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	resp, ferrs, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	if len(ferrs) > 0 {
		return fieldErrors(c, ferrs)
	}
	return c.JSON(resp)
}

// GetByID GET /api/records/:id
func (h *RecordHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// List GET /api/records?type=product
func (h *RecordHandler) List(c *fiber.Ctx) error {
	recordType := c.Query("type", entity.RecordTypeProduct)
	resp, err := h.uc.List(recordType)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// Table GET /api/records/table?type=product — vista tabular de solo lectura.
func (h *RecordHandler) Table(c *fiber.Ctx) error {
	recordType := c.Query("type", entity.RecordTypeProduct)
	resp, err := h.uc.Table(recordType)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// Delete DELETE /api/records/:id (borrado duro; los traslados se anulan)
func (h *RecordHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// VoidTransfer PATCH /api/records/:id/void
func (h *RecordHandler) VoidTransfer(c *fiber.Ctx) error {
	resp, err := h.uc.VoidTransfer(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}
