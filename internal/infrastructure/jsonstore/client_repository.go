package jsonstore

import (
	"sync"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	"github.com/fantasmadigital/nexus-erp/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository sobre un documento JSON local.
type ClientRepo struct {
	mu      sync.RWMutex
	doc     *Document[[]*entity.Client]
	clients []*entity.Client
}

// NewClientRepository carga la colección de clientes desde su clave de almacenamiento.
func NewClientRepository(dir string) (*ClientRepo, error) {
	doc, err := NewDocument[[]*entity.Client](dir, "clients")
	if err != nil {
		return nil, err
	}
	clients, _, err := doc.Load()
	if err != nil {
		return nil, err
	}
	return &ClientRepo{doc: doc, clients: clients}, nil
}

// Create antepone el cliente nuevo.
func (r *ClientRepo) Create(client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = append([]*entity.Client{client}, r.clients...)
	return r.doc.Save(r.clients)
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

// GetByDocumentNumber busca por coincidencia exacta del número de documento
// (llave natural de deduplicación). (nil, nil) si no hay coincidencia.
func (r *ClientRepo) GetByDocumentNumber(documentNumber string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.clients {
		if c.DocumentNumber == documentNumber {
			return c, nil
		}
	}
	return nil, nil
}

// List devuelve todos los clientes.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Client, len(r.clients))
	copy(out, r.clients)
	return out, nil
}

// Update reemplaza el cliente con el mismo ID. No-op si no existe.
func (r *ClientRepo) Update(client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.clients {
		if c.ID == client.ID {
			r.clients[i] = client
			return r.doc.Save(r.clients)
		}
	}
	return nil
}

// Delete elimina incondicionalmente.
func (r *ClientRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.clients {
		if c.ID == id {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			return r.doc.Save(r.clients)
		}
	}
	return nil
}
