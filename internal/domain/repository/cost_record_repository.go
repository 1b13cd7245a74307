package repository

import (
	"time"

	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
)

// CostRecordRepository define el puerto para costos operativos (MISC y LABOR).
type CostRecordRepository interface {
	Create(rec *entity.CostRecord) error
	ListByWindow(from, to time.Time) ([]*entity.CostRecord, error)
}

// ShiftRepository define el puerto para turnos del reloj de entrada/salida.
type ShiftRepository interface {
	Create(shift *entity.Shift) error
	GetOpenByUser(userID string) (*entity.Shift, error) // nil si no hay turno abierto
	Update(shift *entity.Shift) error
	ListByWindow(from, to time.Time) ([]*entity.Shift, error)
}
