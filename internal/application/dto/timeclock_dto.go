package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftResponse salida de un turno.
type ShiftResponse struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	ClockIn   time.Time        `json:"clock_in"`
	ClockOut  *time.Time       `json:"clock_out,omitempty"`
	DailyRate decimal.Decimal  `json:"daily_rate"`
	LaborCost *decimal.Decimal `json:"labor_cost,omitempty"` // solo en turnos cerrados
}

// CreateCostRecordRequest body para POST /api/costs (costos MISC manuales).
type CreateCostRecordRequest struct {
	Description string          `json:"description" validate:"required,min=1,max=300"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Timestamp   *time.Time      `json:"timestamp,omitempty"` // default: ahora
}

// CostRecordResponse salida de un costo operativo.
type CostRecordResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Timestamp   time.Time       `json:"timestamp"`
	ShiftID     *string         `json:"shift_id,omitempty"`
}
