package kanban_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	"github.com/fantasmadigital/nexus-erp/internal/domain/kanban"
)

// ──────────────────────────────────────────────────────────────────────────────
// Límite WIP por columna
// ──────────────────────────────────────────────────────────────────────────────

func TestWIPLimits_CanAccept(t *testing.T) {
	limits := kanban.WIPLimits{InProgress: 3}

	assert.True(t, limits.CanAccept(entity.TaskStatusInProgress, 2))
	assert.False(t, limits.CanAccept(entity.TaskStatusInProgress, 3), "en el límite se rechaza")
	assert.False(t, limits.CanAccept(entity.TaskStatusInProgress, 5), "encima del límite (datos heredados) se rechaza")
	assert.True(t, limits.CanAccept(entity.TaskStatusTodo, 1000), "límite 0 = sin límite")
	assert.True(t, limits.CanAccept(entity.TaskStatusDone, 1000))
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de estados heredados
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeStatus_ValoresHeredados(t *testing.T) {
	cases := map[string]string{
		"TODO":        entity.TaskStatusTodo,
		"todo":        entity.TaskStatusTodo,
		"Por hacer":   entity.TaskStatusTodo,
		"pendiente":   entity.TaskStatusTodo,
		"in_progress": entity.TaskStatusInProgress,
		"En progreso": entity.TaskStatusInProgress,
		"EN CURSO":    entity.TaskStatusInProgress,
		"done":        entity.TaskStatusDone,
		"Completada":  entity.TaskStatusDone,
		" hecho ":     entity.TaskStatusDone,
		"???":         entity.TaskStatusTodo, // desconocido cae a TODO
	}
	for raw, want := range cases {
		assert.Equal(t, want, kanban.NormalizeStatus(raw), "raw=%q", raw)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Banderas de salud derivadas
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_Vencida(t *testing.T) {
	now := time.Now()
	due := now.Add(-24 * time.Hour)

	h := kanban.Health(&entity.NexusTask{Status: entity.TaskStatusTodo, DueDate: &due, LastMovedAt: now}, now)
	assert.True(t, h.Overdue)

	// Una tarea DONE nunca está vencida.
	h = kanban.Health(&entity.NexusTask{Status: entity.TaskStatusDone, DueDate: &due, LastMovedAt: now}, now)
	assert.False(t, h.Overdue)
}

func TestHealth_Estancada(t *testing.T) {
	now := time.Now()

	h := kanban.Health(&entity.NexusTask{
		Status:      entity.TaskStatusInProgress,
		LastMovedAt: now.Add(-49 * time.Hour),
	}, now)
	assert.True(t, h.Stuck, "sin movimiento en más de 48h")

	h = kanban.Health(&entity.NexusTask{
		Status:      entity.TaskStatusInProgress,
		LastMovedAt: now.Add(-47 * time.Hour),
	}, now)
	assert.False(t, h.Stuck)

	h = kanban.Health(&entity.NexusTask{
		Status:      entity.TaskStatusDone,
		LastMovedAt: now.Add(-100 * time.Hour),
	}, now)
	assert.False(t, h.Stuck, "las tareas terminadas no se estancan")
}

func TestHealth_Dependencias(t *testing.T) {
	now := time.Now()
	h := kanban.Health(&entity.NexusTask{Status: entity.TaskStatusTodo, Dependencies: []string{"t-1"}, LastMovedAt: now}, now)
	assert.True(t, h.HasDependencies)

	h = kanban.Health(&entity.NexusTask{Status: entity.TaskStatusTodo, LastMovedAt: now}, now)
	assert.False(t, h.HasDependencies)
}

// ──────────────────────────────────────────────────────────────────────────────
// Purga de registros inválidos al cargar
// ──────────────────────────────────────────────────────────────────────────────

func TestShouldPurge(t *testing.T) {
	assert.True(t, kanban.ShouldPurge(&entity.NexusTask{Title: "Facturar lote", Category: ""}), "sin categoría")
	assert.True(t, kanban.ShouldPurge(&entity.NexusTask{Title: "test", Category: "ventas"}), "título de prueba")
	assert.True(t, kanban.ShouldPurge(&entity.NexusTask{Title: "  Prueba ", Category: "ventas"}))
	assert.True(t, kanban.ShouldPurge(&entity.NexusTask{Title: "", Category: "ventas"}))
	assert.False(t, kanban.ShouldPurge(&entity.NexusTask{Title: "Conteo físico bodega", Category: "inventario"}))
}
