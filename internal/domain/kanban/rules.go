// Package kanban contiene las reglas puras del tablero de operaciones:
// normalización de estados heredados, límite WIP por columna y banderas de
// salud derivadas al momento de render.
package kanban

import (
	"strings"
	"time"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
)

// WIPLimits límite de tareas por columna. Un valor <= 0 significa sin límite.
type WIPLimits struct {
	Todo       int
	InProgress int
	Done       int
}

// ForStatus devuelve el límite configurado para la columna.
func (w WIPLimits) ForStatus(status string) int {
	switch status {
	case entity.TaskStatusTodo:
		return w.Todo
	case entity.TaskStatusInProgress:
		return w.InProgress
	case entity.TaskStatusDone:
		return w.Done
	default:
		return 0
	}
}

// CanAccept indica si la columna destino admite una tarea más dado el conteo
// actual. Con el conteo ya en el límite (o encima, por datos heredados) el
// movimiento se rechaza.
func (w WIPLimits) CanAccept(status string, currentCount int) bool {
	limit := w.ForStatus(status)
	if limit <= 0 {
		return true
	}
	return currentCount < limit
}

// IsValidStatus indica si el valor es uno de los tres estados canónicos.
func IsValidStatus(status string) bool {
	switch status {
	case entity.TaskStatusTodo, entity.TaskStatusInProgress, entity.TaskStatusDone:
		return true
	}
	return false
}

// NormalizeStatus mapea valores de estado heredados (otra capitalización,
// etiquetas en español de versiones viejas) al canon. Se ejecuta una sola vez
// como migración al cargar el almacén, dejando el invariante limpio: después
// de cargar, el estado siempre es uno de los tres canónicos.
func NormalizeStatus(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(raw, " ", "_"))) {
	case "TODO", "POR_HACER", "PENDIENTE", "NUEVA":
		return entity.TaskStatusTodo
	case "IN_PROGRESS", "EN_PROGRESO", "EN_CURSO", "HACIENDO":
		return entity.TaskStatusInProgress
	case "DONE", "HECHO", "HECHA", "TERMINADA", "COMPLETADA", "FINALIZADA":
		return entity.TaskStatusDone
	default:
		return entity.TaskStatusTodo
	}
}

// stuckAfter tiempo sin movimiento de columna tras el cual una tarea abierta
// se considera estancada.
const stuckAfter = 48 * time.Hour

// Health computa las banderas derivadas de la tarea al momento de render.
// Son puramente presentacionales: no se persisten ni afectan transiciones.
func Health(task *entity.NexusTask, now time.Time) entity.TaskHealth {
	var h entity.TaskHealth
	if task.DueDate != nil && task.DueDate.Before(now) && task.Status != entity.TaskStatusDone {
		h.Overdue = true
	}
	if task.Status != entity.TaskStatusDone && !task.LastMovedAt.IsZero() && now.Sub(task.LastMovedAt) > stuckAfter {
		h.Stuck = true
	}
	h.HasDependencies = len(task.Dependencies) > 0
	return h
}

// ShouldPurge identifica registros estructuralmente inválidos que el gancho de
// carga elimina antes del primer render: sin categoría o con títulos de prueba
// dejados por datos de desarrollo.
func ShouldPurge(task *entity.NexusTask) bool {
	if strings.TrimSpace(task.Category) == "" {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(task.Title)) {
	case "", "test", "prueba", "tarea de prueba", "asdf":
		return true
	}
	return false
}
