package dto

import "time"

// CreateTaskRequest body para POST /api/tasks.
type CreateTaskRequest struct {
	Title        string     `json:"title" validate:"required,max=120"`
	Description  string     `json:"description,omitempty"`
	Priority     string     `json:"priority,omitempty" validate:"omitempty,oneof=baja media alta urgente"`
	Category     string     `json:"category" validate:"required,max=60"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	AssignedTo   string     `json:"assigned_to,omitempty"`
	ReferenceID  string     `json:"reference_id,omitempty"`
	Dependencies []string   `json:"dependencies,omitempty"`
}

// UpdateTaskRequest body para PUT /api/tasks/:id. Solo los punteros no nulos
// se fusionan; cada fusión genera exactamente una entrada de auditoría.
type UpdateTaskRequest struct {
	Title        *string    `json:"title,omitempty" validate:"omitempty,max=120"`
	Description  *string    `json:"description,omitempty"`
	Priority     *string    `json:"priority,omitempty" validate:"omitempty,oneof=baja media alta urgente"`
	Category     *string    `json:"category,omitempty" validate:"omitempty,max=60"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	AssignedTo   *string    `json:"assigned_to,omitempty"`
	Dependencies *[]string  `json:"dependencies,omitempty"`
}

// MoveTaskRequest body para PATCH /api/tasks/:id/move.
type MoveTaskRequest struct {
	Status string `json:"status" validate:"required,oneof=TODO IN_PROGRESS DONE"`
}

// MoveTaskResponse resultado de un movimiento. Moved=false indica columna
// saturada: la tarea quedó intacta y no se agregó auditoría.
type MoveTaskResponse struct {
	Moved bool          `json:"moved"`
	Task  *TaskResponse `json:"task,omitempty"`
}

// AuditEntryResponse entrada del historial (solo lectura).
type AuditEntryResponse struct {
	At            time.Time `json:"at"`
	Action        string    `json:"action"`
	FromStatus    string    `json:"from_status,omitempty"`
	ToStatus      string    `json:"to_status,omitempty"`
	ChangedFields []string  `json:"changed_fields,omitempty"`
}

// TaskHealthResponse banderas derivadas, calculadas al renderizar.
type TaskHealthResponse struct {
	Overdue         bool `json:"overdue"`
	Stuck           bool `json:"stuck"`
	HasDependencies bool `json:"has_dependencies"`
}

// TaskResponse tarea del tablero con historial y salud.
type TaskResponse struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description,omitempty"`
	Status       string               `json:"status"`
	Priority     string               `json:"priority"`
	Category     string               `json:"category"`
	DueDate      *time.Time           `json:"due_date,omitempty"`
	AssignedTo   string               `json:"assigned_to,omitempty"`
	ReferenceID  string               `json:"reference_id,omitempty"`
	Dependencies []string             `json:"dependencies,omitempty"`
	History      []AuditEntryResponse `json:"history"`
	Health       TaskHealthResponse   `json:"health"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	LastMovedAt  time.Time            `json:"last_moved_at,omitempty"`
}
