package repository

import (
	"context"

	"github.com/jhoicas/reportes-ventas/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos devuelven (nil, nil) si el usuario no existe.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
