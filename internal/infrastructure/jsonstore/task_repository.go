package jsonstore

import (
	"sync"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	"github.com/fantasmadigital/nexus-erp/internal/domain/kanban"
	"github.com/fantasmadigital/nexus-erp/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación del puerto TaskRepository sobre un documento JSON
// local. Al cargar corre dos ganchos una sola vez, antes del primer render:
//
//  1. purga de registros estructuralmente inválidos (sin categoría, títulos
//     de prueba dejados por datos de desarrollo), y
//  2. migración de estados heredados al canon TODO/IN_PROGRESS/DONE.
//
// Después de construir el repositorio, el invariante queda limpio: ningún
// consumidor vuelve a verificar estados en render.
type TaskRepo struct {
	mu    sync.RWMutex
	doc   *Document[[]*entity.NexusTask]
	tasks []*entity.NexusTask
}

// NewTaskRepository carga, purga y migra la colección de tareas.
func NewTaskRepository(dir string) (*TaskRepo, error) {
	doc, err := NewDocument[[]*entity.NexusTask](dir, "tasks")
	if err != nil {
		return nil, err
	}
	tasks, found, err := doc.Load()
	if err != nil {
		return nil, err
	}

	dirty := false
	kept := make([]*entity.NexusTask, 0, len(tasks))
	for _, t := range tasks {
		if kanban.ShouldPurge(t) {
			dirty = true
			continue
		}
		if !kanban.IsValidStatus(t.Status) {
			t.Status = kanban.NormalizeStatus(t.Status)
			dirty = true
		}
		kept = append(kept, t)
	}

	repo := &TaskRepo{doc: doc, tasks: kept}
	if found && dirty {
		if err := doc.Save(kept); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

// Create antepone la tarea nueva.
func (r *TaskRepo) Create(task *entity.NexusTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append([]*entity.NexusTask{task}, r.tasks...)
	return r.doc.Save(r.tasks)
}

// GetByID devuelve (nil, nil) si no existe.
func (r *TaskRepo) GetByID(id string) (*entity.NexusTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

// List devuelve todas las tareas.
func (r *TaskRepo) List() ([]*entity.NexusTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.NexusTask, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

// CountByStatus cuenta las tareas de una columna (verificación de límite WIP).
func (r *TaskRepo) CountByStatus(status string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, t := range r.tasks {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

// Update reemplaza la tarea con el mismo ID. No-op si no existe.
func (r *TaskRepo) Update(task *entity.NexusTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.tasks {
		if t.ID == task.ID {
			r.tasks[i] = task
			return r.doc.Save(r.tasks)
		}
	}
	return nil
}

// Delete elimina la tarea y su historial (borrado duro).
func (r *TaskRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return r.doc.Save(r.tasks)
		}
	}
	return nil
}
