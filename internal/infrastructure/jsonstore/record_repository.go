package jsonstore

import (
	"sync"
	"time"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	"github.com/fantasmadigital/nexus-erp/internal/domain/repository"
)

var _ repository.RecordRepository = (*RecordRepo)(nil)

// RecordRepo implementación del puerto RecordRepository sobre un documento
// JSON local. La colección vive en memoria y se reescribe completa en cada
// mutación (orden más reciente primero).
type RecordRepo struct {
	mu      sync.RWMutex
	doc     *Document[[]*entity.Record]
	records []*entity.Record
}

// NewRecordRepository carga la colección de registros desde su clave de almacenamiento.
func NewRecordRepository(dir string) (*RecordRepo, error) {
	doc, err := NewDocument[[]*entity.Record](dir, "records")
	if err != nil {
		return nil, err
	}
	records, _, err := doc.Load()
	if err != nil {
		return nil, err
	}
	return &RecordRepo{doc: doc, records: records}, nil
}

// Create antepone el registro (los listados muestran lo más reciente primero).
func (r *RecordRepo) Create(record *entity.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append([]*entity.Record{record}, r.records...)
	return r.doc.Save(r.records)
}

// GetByID devuelve (nil, nil) si el ID no existe.
func (r *RecordRepo) GetByID(id string) (*entity.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

// ListByType lista los registros de una categoría conservando el orden.
func (r *RecordRepo) ListByType(recordType string) ([]*entity.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Record, 0, len(r.records))
	for _, rec := range r.records {
		if rec.Type == recordType {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Update fusiona los campos sobre el registro existente y estampa UpdatedAt.
// No-op si el ID no existe.
func (r *RecordRepo) Update(id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID != id {
			continue
		}
		if rec.Fields == nil {
			rec.Fields = make(map[string]any, len(fields))
		}
		for k, v := range fields {
			rec.Fields[k] = v
		}
		rec.UpdatedAt = time.Now()
		return r.doc.Save(r.records)
	}
	return nil
}

// UpdateStatus muta el estado (anulación de traslados). No-op si no existe.
func (r *RecordRepo) UpdateStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.ID != id {
			continue
		}
		rec.Status = status
		rec.UpdatedAt = time.Now()
		return r.doc.Save(r.records)
	}
	return nil
}

// Delete elimina incondicionalmente.
func (r *RecordRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rec := range r.records {
		if rec.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return r.doc.Save(r.records)
		}
	}
	return nil
}
