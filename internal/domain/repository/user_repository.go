package repository

import "github.com/fantasmadigital/nexus-erp/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios locales.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
}
