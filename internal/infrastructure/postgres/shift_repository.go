package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implementación de ShiftRepository (usable con pool o tx).
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

// Create persiste un turno nuevo (abierto).
func (r *ShiftRepo) Create(shift *entity.Shift) error {
	query := `
		INSERT INTO shifts (id, user_id, clock_in, clock_out, daily_rate)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		shift.ID, shift.UserID, shift.ClockIn, shift.ClockOut, shift.DailyRate,
	)
	if err != nil {
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

// GetOpenByUser devuelve el turno abierto del usuario, o nil si no hay.
func (r *ShiftRepo) GetOpenByUser(userID string) (*entity.Shift, error) {
	var s entity.Shift
	err := r.q.QueryRow(context.Background(), `
		SELECT id, user_id, clock_in, clock_out, daily_rate
		FROM shifts WHERE user_id = $1 AND clock_out IS NULL
		ORDER BY clock_in DESC LIMIT 1`, userID).Scan(
		&s.ID, &s.UserID, &s.ClockIn, &s.ClockOut, &s.DailyRate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open shift: %w", err)
	}
	return &s, nil
}

// Update actualiza el turno (cierre por clock-out).
func (r *ShiftRepo) Update(shift *entity.Shift) error {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE shifts SET clock_out = $2, daily_rate = $3 WHERE id = $1`,
		shift.ID, shift.ClockOut, shift.DailyRate,
	)
	if err != nil {
		return fmt.Errorf("update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByWindow devuelve los turnos con clock-in en [from, to].
func (r *ShiftRepo) ListByWindow(from, to time.Time) ([]*entity.Shift, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, user_id, clock_in, clock_out, daily_rate
		FROM shifts WHERE clock_in >= $1 AND clock_in <= $2 ORDER BY clock_in`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()
	var out []*entity.Shift
	for rows.Next() {
		var s entity.Shift
		if err := rows.Scan(&s.ID, &s.UserID, &s.ClockIn, &s.ClockOut, &s.DailyRate); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shifts: %w", err)
	}
	return out, nil
}
