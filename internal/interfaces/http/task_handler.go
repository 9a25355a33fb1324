package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fantasmadigital/nexus-erp/internal/application/dto"
	appkanban "github.com/fantasmadigital/nexus-erp/internal/application/kanban"
)

// TaskHandler maneja el tablero de operaciones.
type TaskHandler struct {
	uc *appkanban.TaskUseCase
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *appkanban.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	resp, err := h.uc.Create(in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List GET /api/tasks
func (h *TaskHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List()
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// GetByID GET /api/tasks/:id
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// Move PATCH /api/tasks/:id/move — Moved=false señala columna saturada; el
// cliente lo muestra como indicador, no es un error HTTP.
func (h *TaskHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveTaskRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	resp, err := h.uc.Move(c.Params("id"), in.Status)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// Update PUT /api/tasks/:id
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaskRequest
	if ok, err := parseAndValidate(c, &in); !ok {
		return err
	}
	resp, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
