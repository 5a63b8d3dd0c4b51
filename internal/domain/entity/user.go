package entity

import "time"

// User representa un usuario del sistema que puede generar reportes.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string // nombre visible ("Generado por")
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserStatusActive estado de un usuario habilitado para iniciar sesión.
const UserStatusActive = "active"
