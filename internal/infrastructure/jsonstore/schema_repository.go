package jsonstore

import (
	"sync"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	"github.com/fantasmadigital/nexus-erp/internal/domain/repository"
)

var _ repository.SchemaRepository = (*SchemaRepo)(nil)

// SchemaRepo implementación del puerto SchemaRepository (documento único).
type SchemaRepo struct {
	mu     sync.RWMutex
	doc    *Document[entity.Schema]
	schema *entity.Schema
}

// NewSchemaRepository carga el esquema desde su clave de almacenamiento.
func NewSchemaRepository(dir string) (*SchemaRepo, error) {
	doc, err := NewDocument[entity.Schema](dir, "schema")
	if err != nil {
		return nil, err
	}
	value, found, err := doc.Load()
	if err != nil {
		return nil, err
	}
	repo := &SchemaRepo{doc: doc}
	if found {
		repo.schema = &value
	}
	return repo, nil
}

// Get devuelve (nil, nil) si nunca se ha guardado un esquema.
func (r *SchemaRepo) Get() (*entity.Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.schema == nil {
		return nil, nil
	}
	cp := *r.schema
	return &cp, nil
}

// Save reemplaza el esquema completo.
func (r *SchemaRepo) Save(schema *entity.Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *schema
	r.schema = &cp
	return r.doc.Save(cp)
}
