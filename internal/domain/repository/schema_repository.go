package repository

import "github.com/fantasmadigital/nexus-erp/internal/domain/entity"

// SchemaRepository define el puerto de persistencia para el esquema dinámico.
// Get devuelve (nil, nil) si nunca se ha guardado un esquema.
type SchemaRepository interface {
	Get() (*entity.Schema, error)
	Save(schema *entity.Schema) error
}
