package jsonstore

import (
	"sync"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	"github.com/fantasmadigital/nexus-erp/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository (documento único).
type CompanyRepo struct {
	mu      sync.RWMutex
	doc     *Document[entity.Company]
	company *entity.Company
}

// NewCompanyRepository carga los datos del emisor desde su clave de almacenamiento.
func NewCompanyRepository(dir string) (*CompanyRepo, error) {
	doc, err := NewDocument[entity.Company](dir, "company")
	if err != nil {
		return nil, err
	}
	value, found, err := doc.Load()
	if err != nil {
		return nil, err
	}
	repo := &CompanyRepo{doc: doc}
	if found {
		repo.company = &value
	}
	return repo, nil
}

// Get devuelve (nil, nil) si el emisor no se ha configurado.
func (r *CompanyRepo) Get() (*entity.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.company == nil {
		return nil, nil
	}
	cp := *r.company
	return &cp, nil
}

// Save reemplaza el registro del emisor.
func (r *CompanyRepo) Save(company *entity.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *company
	r.company = &cp
	return r.doc.Save(cp)
}
