package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fantasmadigital/nexus-erp/internal/application/dto"
	"github.com/fantasmadigital/nexus-erp/internal/application/usecase"
)

// CompanyHandler maneja los datos del emisor (registro único).
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Get GET /api/company
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	resp, err := h.uc.Get()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// Save PUT /api/company
func (h *CompanyHandler) Save(c *fiber.Ctx) error {
	var in dto.CompanyRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	resp, err := h.uc.Save(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}
