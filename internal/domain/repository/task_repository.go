package repository

import "github.com/fantasmadigital/nexus-erp/internal/domain/entity"

// TaskRepository define el puerto de persistencia para tareas del tablero.
// La implementación corre la migración de estados heredados y la purga de
// registros inválidos una sola vez al cargar.
type TaskRepository interface {
	Create(task *entity.NexusTask) error
	GetByID(id string) (*entity.NexusTask, error)
	List() ([]*entity.NexusTask, error)
	CountByStatus(status string) (int, error)
	Update(task *entity.NexusTask) error
	Delete(id string) error
}
