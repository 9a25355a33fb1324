package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fantasmadigital/nexus-erp/internal/application/dto"
	"github.com/fantasmadigital/nexus-erp/internal/application/usecase"
)

// SchemaHandler maneja el esquema dinámico de campos del inventario.
type SchemaHandler struct {
	uc *usecase.SchemaUseCase
}

// NewSchemaHandler construye el handler.
func NewSchemaHandler(uc *usecase.SchemaUseCase) *SchemaHandler {
	return &SchemaHandler{uc: uc}
}

// Get GET /api/schema
func (h *SchemaHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// Save PUT /api/schema (asistente de configuración: lista completa)
func (h *SchemaHandler) Save(c *fiber.Ctx) error {
	var in struct {
		Fields []dto.FieldDefinitionRequest `json:"fields" validate:"required,dive"`
	}
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	resp, err := h.uc.Save(in.Fields)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// AddField POST /api/schema/fields
func (h *SchemaHandler) AddField(c *fiber.Ctx) error {
	var in dto.FieldDefinitionRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	resp, err := h.uc.AddField(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// RemoveField DELETE /api/schema/fields/:id
func (h *SchemaHandler) RemoveField(c *fiber.Ctx) error {
	resp, err := h.uc.RemoveField(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// RenameField PATCH /api/schema/fields/:id
func (h *SchemaHandler) RenameField(c *fiber.Ctx) error {
	var in dto.RenameFieldRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	resp, err := h.uc.RenameField(c.Params("id"), in.KeyName)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}
