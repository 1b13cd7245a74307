package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleCajero   = "cajero"
	RoleCocinero = "cocinero"
)

// User representa un empleado del negocio. Entra al sistema con un PIN
// numérico corto (hasheado con bcrypt, nunca plano después de persistir).
// DailyRate es la tarifa diaria usada para devengar costo laboral por turno.
type User struct {
	ID        string
	Name      string
	PINHash   string
	Role      string // admin, cajero, cocinero
	DailyRate decimal.Decimal
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
