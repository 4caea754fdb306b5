package repository

import "github.com/jhoicas/Lavadero-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	// FindByUsername retorna (nil, nil) si el usuario no existe.
	FindByUsername(username string) (*entity.User, error)
}
