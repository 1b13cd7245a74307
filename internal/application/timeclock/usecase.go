// Package timeclock contiene el reloj de turnos y el devengo de costo
// laboral: cada clock-out genera un registro de costo LABOR derivado de la
// tarifa diaria del empleado.
package timeclock

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-cocina/internal/application/dto"
	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
)

// MaxPaidShiftHours es el tope de horas pagadas por turno: un turno más largo
// devenga como si hubiera durado 12 horas.
const MaxPaidShiftHours = 12

// LaborCost devenga el costo de un turno: min(duración, 12h) × (tarifa/12).
// Equivalente horario con tope, derivado de una tarifa diaria.
func LaborCost(clockIn, clockOut time.Time, dailyRate decimal.Decimal) decimal.Decimal {
	hours := decimal.NewFromFloat(clockOut.Sub(clockIn).Hours())
	cap := decimal.NewFromInt(MaxPaidShiftHours)
	if hours.GreaterThan(cap) {
		hours = cap
	}
	if hours.LessThan(decimal.Zero) {
		hours = decimal.Zero
	}
	return hours.Mul(dailyRate).Div(cap)
}

// UseCase casos de uso del reloj de turnos y costos operativos.
type UseCase struct {
	shiftRepo repository.ShiftRepository
	costRepo  repository.CostRecordRepository
	userRepo  repository.UserRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(shiftRepo repository.ShiftRepository, costRepo repository.CostRecordRepository, userRepo repository.UserRepository) *UseCase {
	return &UseCase{shiftRepo: shiftRepo, costRepo: costRepo, userRepo: userRepo}
}

// ClockIn abre un turno para el empleado copiando su tarifa diaria vigente.
// Un empleado solo puede tener un turno abierto a la vez.
func (uc *UseCase) ClockIn(ctx context.Context, userID string) (*dto.ShiftResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	open, err := uc.shiftRepo.GetOpenByUser(userID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, domain.ErrShiftAlreadyOpen
	}
	shift := &entity.Shift{
		ID:        uuid.New().String(),
		UserID:    userID,
		ClockIn:   time.Now(),
		DailyRate: user.DailyRate,
	}
	if err := uc.shiftRepo.Create(shift); err != nil {
		return nil, err
	}
	return toShiftResponse(shift, nil), nil
}

// ClockOut cierra el turno abierto del empleado y devenga el costo laboral
// como un registro LABOR fechado al clock-out (uno por turno).
func (uc *UseCase) ClockOut(ctx context.Context, userID string) (*dto.ShiftResponse, error) {
	shift, err := uc.shiftRepo.GetOpenByUser(userID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrNoOpenShift
	}
	now := time.Now()
	shift.ClockOut = &now
	if err := uc.shiftRepo.Update(shift); err != nil {
		return nil, err
	}

	cost := LaborCost(shift.ClockIn, now, shift.DailyRate)
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	desc := "Turno"
	if user != nil {
		desc = "Turno " + user.Name
	}
	rec := &entity.CostRecord{
		ID:          uuid.New().String(),
		Kind:        entity.CostKindLabor,
		Description: desc,
		Amount:      cost,
		Timestamp:   now,
		ShiftID:     &shift.ID,
		CreatedAt:   now,
	}
	if err := uc.costRepo.Create(rec); err != nil {
		return nil, err
	}
	return toShiftResponse(shift, &cost), nil
}

// CreateCostRecord registra un costo operativo MISC manual (arriendo, gas...).
func (uc *UseCase) CreateCostRecord(ctx context.Context, in dto.CreateCostRecordRequest) (*dto.CostRecordResponse, error) {
	if strings.TrimSpace(in.Description) == "" || !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	ts := now
	if in.Timestamp != nil {
		ts = *in.Timestamp
	}
	rec := &entity.CostRecord{
		ID:          uuid.New().String(),
		Kind:        entity.CostKindMisc,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		Timestamp:   ts,
		CreatedAt:   now,
	}
	if err := uc.costRepo.Create(rec); err != nil {
		return nil, err
	}
	return toCostRecordResponse(rec), nil
}

// ListCosts devuelve los costos operativos de una ventana de fechas.
func (uc *UseCase) ListCosts(ctx context.Context, from, to time.Time) ([]*dto.CostRecordResponse, error) {
	recs, err := uc.costRepo.ListByWindow(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CostRecordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toCostRecordResponse(rec))
	}
	return out, nil
}

func toShiftResponse(s *entity.Shift, laborCost *decimal.Decimal) *dto.ShiftResponse {
	return &dto.ShiftResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		ClockIn:   s.ClockIn,
		ClockOut:  s.ClockOut,
		DailyRate: s.DailyRate,
		LaborCost: laborCost,
	}
}

func toCostRecordResponse(rec *entity.CostRecord) *dto.CostRecordResponse {
	return &dto.CostRecordResponse{
		ID:          rec.ID,
		Kind:        rec.Kind,
		Description: rec.Description,
		Amount:      rec.Amount,
		Timestamp:   rec.Timestamp,
		ShiftID:     rec.ShiftID,
	}
}
