package repository

import "github.com/fantasmadigital/nexus-erp/internal/domain/entity"

// ClientRepository define el puerto de persistencia para clientes.
// GetByDocumentNumber devuelve (nil, nil) si no hay coincidencia: la ausencia
// es flujo de control esperado (rama "crear" de la resolución), no un error.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByDocumentNumber(documentNumber string) (*entity.Client, error)
	List() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
