package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de registro de costo operativo.
const (
	CostKindMisc  = "MISC"  // arriendo, gas, servicios...
	CostKindLabor = "LABOR" // generado automáticamente al cerrar turno
)

// CostRecord es un costo operativo puntual que entra al cálculo de utilidad
// neta. Los de tipo LABOR los genera el reloj de turnos (uno por turno,
// fechado al clock-out); los MISC se registran a mano.
type CostRecord struct {
	ID          string
	Kind        string
	Description string
	Amount      decimal.Decimal
	Timestamp   time.Time
	ShiftID     *string // solo para LABOR: turno que lo originó
	CreatedAt   time.Time
}
