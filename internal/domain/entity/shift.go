package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift es un turno de trabajo registrado por el reloj de entrada/salida.
// DailyRate se copia del usuario al abrir el turno para que un cambio de
// tarifa posterior no altere turnos ya cerrados.
type Shift struct {
	ID        string
	UserID    string
	ClockIn   time.Time
	ClockOut  *time.Time
	DailyRate decimal.Decimal
}

// IsOpen indica si el turno sigue abierto (sin clock-out).
func (s *Shift) IsOpen() bool {
	return s.ClockOut == nil
}
