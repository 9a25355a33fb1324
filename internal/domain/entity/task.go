package entity

import "time"

// Estados canónicos de una tarea del tablero Nexus. Cualquier valor heredado
// (otra capitalización, etiquetas en español de versiones viejas) se normaliza
// una sola vez al cargar el almacén (ver kanban.NormalizeStatus).
const (
	TaskStatusTodo       = "TODO"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"
)

// Prioridades de tarea.
const (
	TaskPriorityBaja    = "baja"
	TaskPriorityMedia   = "media"
	TaskPriorityAlta    = "alta"
	TaskPriorityUrgente = "urgente"
)

// AuditEntry entrada del historial de una tarea. El historial es append-only:
// nunca se recorta ni se reordena. Para ediciones de campos se registran los
// nombres de los campos cambiados, no sus valores.
type AuditEntry struct {
	At            time.Time `json:"at"`
	Action        string    `json:"action"` // "creada" | "movida" | "editada"
	FromStatus    string    `json:"from_status,omitempty"`
	ToStatus      string    `json:"to_status,omitempty"`
	ChangedFields []string  `json:"changed_fields,omitempty"`
}

// NexusTask tarea del tablero de operaciones.
type NexusTask struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Status       string       `json:"status"`
	Priority     string       `json:"priority"`
	Category     string       `json:"category"`
	DueDate      *time.Time   `json:"due_date,omitempty"`
	AssignedTo   string       `json:"assigned_to,omitempty"`
	ReferenceID  string       `json:"reference_id,omitempty"` // factura o traslado relacionado
	Dependencies []string     `json:"dependencies,omitempty"`
	History      []AuditEntry `json:"history"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	LastMovedAt  time.Time    `json:"last_moved_at"`
}

// TaskHealth banderas derivadas al momento de render; no se persisten y no
// afectan las transiciones de estado.
type TaskHealth struct {
	Overdue         bool `json:"overdue"`
	Stuck           bool `json:"stuck"`
	HasDependencies bool `json:"has_dependencies"`
}
