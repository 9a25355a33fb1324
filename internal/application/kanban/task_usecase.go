package kanban

import (
	"time"

	"github.com/google/uuid"

	"github.com/fantasmadigital/nexus-erp/internal/application/dto"
	"github.com/fantasmadigital/nexus-erp/internal/domain"
	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	kanbandomain "github.com/fantasmadigital/nexus-erp/internal/domain/kanban"
	"github.com/fantasmadigital/nexus-erp/internal/domain/repository"
)

// TaskUseCase máquina de estados del tablero de operaciones. Los movimientos
// respetan el límite WIP por columna; cada mutación de tarea agrega exactamente
// una entrada al historial append-only.
type TaskUseCase struct {
	repo   repository.TaskRepository
	limits kanbandomain.WIPLimits
}

// NewTaskUseCase construye el caso de uso con los límites WIP configurados.
func NewTaskUseCase(repo repository.TaskRepository, limits kanbandomain.WIPLimits) *TaskUseCase {
	return &TaskUseCase{repo: repo, limits: limits}
}

// Create crea la tarea en TODO sin verificar límite (la creación es
// incondicional; el WIP gobierna movimientos, no altas).
func (uc *TaskUseCase) Create(in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	now := time.Now()
	priority := in.Priority
	if priority == "" {
		priority = entity.TaskPriorityMedia
	}
	task := &entity.NexusTask{
		ID:           uuid.New().String(),
		Title:        in.Title,
		Description:  in.Description,
		Status:       entity.TaskStatusTodo,
		Priority:     priority,
		Category:     in.Category,
		DueDate:      in.DueDate,
		AssignedTo:   in.AssignedTo,
		ReferenceID:  in.ReferenceID,
		Dependencies: in.Dependencies,
		History: []entity.AuditEntry{{
			At:       now,
			Action:   "creada",
			ToStatus: entity.TaskStatusTodo,
		}},
		CreatedAt:   now,
		UpdatedAt:   now,
		LastMovedAt: now,
	}
	if err := uc.repo.Create(task); err != nil {
		return nil, err
	}
	return uc.toResponse(task, now), nil
}

// Move cambia la tarea de columna. Si la columna destino ya está en su límite
// WIP el movimiento se rechaza: Moved=false, la tarea queda intacta y no se
// agrega auditoría. Mover al estado actual es un no-op permitido.
func (uc *TaskUseCase) Move(id, status string) (*dto.MoveTaskResponse, error) {
	if !kanbandomain.IsValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	if task.Status == status {
		return &dto.MoveTaskResponse{Moved: true, Task: uc.toResponse(task, now)}, nil
	}

	count, err := uc.repo.CountByStatus(status)
	if err != nil {
		return nil, err
	}
	if !uc.limits.CanAccept(status, count) {
		return &dto.MoveTaskResponse{Moved: false, Task: uc.toResponse(task, now)}, nil
	}

	from := task.Status
	task.Status = status
	task.UpdatedAt = now
	task.LastMovedAt = now
	task.History = append(task.History, entity.AuditEntry{
		At:         now,
		Action:     "movida",
		FromStatus: from,
		ToStatus:   status,
	})
	if err := uc.repo.Update(task); err != nil {
		return nil, err
	}
	return &dto.MoveTaskResponse{Moved: true, Task: uc.toResponse(task, now)}, nil
}

// Update fusiona los campos presentes en el body y agrega exactamente una
// entrada de auditoría con los nombres de los campos cambiados (no los
// valores). Toda edición genera auditoría, aunque no toque el estado.
func (uc *TaskUseCase) Update(id string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}

	var changed []string
	if in.Title != nil {
		task.Title = *in.Title
		changed = append(changed, "title")
	}
	if in.Description != nil {
		task.Description = *in.Description
		changed = append(changed, "description")
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
		changed = append(changed, "priority")
	}
	if in.Category != nil {
		task.Category = *in.Category
		changed = append(changed, "category")
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
		changed = append(changed, "due_date")
	}
	if in.AssignedTo != nil {
		task.AssignedTo = *in.AssignedTo
		changed = append(changed, "assigned_to")
	}
	if in.Dependencies != nil {
		task.Dependencies = *in.Dependencies
		changed = append(changed, "dependencies")
	}

	now := time.Now()
	task.UpdatedAt = now
	task.History = append(task.History, entity.AuditEntry{
		At:            now,
		Action:        "editada",
		ChangedFields: changed,
	})
	if err := uc.repo.Update(task); err != nil {
		return nil, err
	}
	return uc.toResponse(task, now), nil
}

// Get devuelve la tarea con su salud calculada.
func (uc *TaskUseCase) Get(id string) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(task, time.Now()), nil
}

// List lista el tablero completo.
func (uc *TaskUseCase) List() ([]*dto.TaskResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]*dto.TaskResponse, 0, len(list))
	for _, task := range list {
		out = append(out, uc.toResponse(task, now))
	}
	return out, nil
}

// Delete elimina la tarea y descarta su historial (borrado duro,
// incondicional).
func (uc *TaskUseCase) Delete(id string) error {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func (uc *TaskUseCase) toResponse(t *entity.NexusTask, now time.Time) *dto.TaskResponse {
	health := kanbandomain.Health(t, now)
	resp := &dto.TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       t.Status,
		Priority:     t.Priority,
		Category:     t.Category,
		DueDate:      t.DueDate,
		AssignedTo:   t.AssignedTo,
		ReferenceID:  t.ReferenceID,
		Dependencies: t.Dependencies,
		History:      make([]dto.AuditEntryResponse, 0, len(t.History)),
		Health: dto.TaskHealthResponse{
			Overdue:         health.Overdue,
			Stuck:           health.Stuck,
			HasDependencies: health.HasDependencies,
		},
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		LastMovedAt: t.LastMovedAt,
	}
	for _, e := range t.History {
		resp.History = append(resp.History, dto.AuditEntryResponse{
			At:            e.At,
			Action:        e.Action,
			FromStatus:    e.FromStatus,
			ToStatus:      e.ToStatus,
			ChangedFields: e.ChangedFields,
		})
	}
	return resp
}
