package repository

import "github.com/tu-usuario/pos-cocina/internal/domain/entity"

// UserRepository define el puerto de persistencia para empleados.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByName(name string) (*entity.User, error) // case-insensitive
	List() ([]*entity.User, error)
	Update(user *entity.User) error
}
