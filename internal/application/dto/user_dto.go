package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest entrada para crear un empleado (PIN en texto, se hashea en use case).
type RegisterRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	PIN       string          `json:"pin" validate:"required,min=4,max=8,numeric"`
	Role      string          `json:"role" validate:"omitempty,oneof=admin cajero cocinero"`
	DailyRate decimal.Decimal `json:"daily_rate"`
}

// UserResponse salida de un empleado (sin PIN).
type UserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// LoginRequest entrada para login por nombre + PIN.
type LoginRequest struct {
	Name string `json:"name" validate:"required"`
	PIN  string `json:"pin" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
