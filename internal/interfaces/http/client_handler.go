package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fantasmadigital/nexus-erp/internal/application/billing"
	"github.com/fantasmadigital/nexus-erp/internal/application/dto"
)

// ClientHandler maneja clientes/receptores de facturación.
type ClientHandler struct {
	uc *billing.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *billing.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Resolve POST /api/clients — lookup-or-create por número de documento.
func (h *ClientHandler) Resolve(c *fiber.Ctx) error {
	var in dto.ClientRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	resp, err := h.uc.FindOrCreate(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// List GET /api/clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// GetByID GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
