package repository

import "github.com/fantasmadigital/nexus-erp/internal/domain/entity"

// RecordRepository define el puerto de persistencia para registros dinámicos
// (productos, traslados). Create antepone el registro a la colección (orden
// más reciente primero); Update fusiona campos y es no-op si el ID no existe.
type RecordRepository interface {
	Create(record *entity.Record) error
	GetByID(id string) (*entity.Record, error)
	ListByType(recordType string) ([]*entity.Record, error)
	Update(id string, fields map[string]any) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}
