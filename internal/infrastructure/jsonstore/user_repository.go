package jsonstore

import (
	"strings"
	"sync"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	"github.com/fantasmadigital/nexus-erp/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre un documento JSON local.
type UserRepo struct {
	mu    sync.RWMutex
	doc   *Document[[]*entity.User]
	users []*entity.User
}

// NewUserRepository carga la colección de usuarios desde su clave de almacenamiento.
func NewUserRepository(dir string) (*UserRepo, error) {
	doc, err := NewDocument[[]*entity.User](dir, "users")
	if err != nil {
		return nil, err
	}
	users, _, err := doc.Load()
	if err != nil {
		return nil, err
	}
	return &UserRepo{doc: doc, users: users}, nil
}

// Create agrega el usuario.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append([]*entity.User{user}, r.users...)
	return r.doc.Save(r.users)
}

// FindByEmail busca por email (insensible a mayúsculas). (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}
