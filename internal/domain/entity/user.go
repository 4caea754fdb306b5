package entity

import "time"

// User representa un usuario del sistema. La autorización es binaria:
// cualquier usuario autenticado tiene acceso completo (no hay roles).
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
