package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
)

var _ repository.CostRecordRepository = (*CostRecordRepo)(nil)

// CostRecordRepo implementación de CostRecordRepository (usable con pool o tx).
type CostRecordRepo struct {
	q Querier
}

// NewCostRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCostRecordRepository(q Querier) *CostRecordRepo {
	return &CostRecordRepo{q: q}
}

// Create persiste un costo operativo.
func (r *CostRecordRepo) Create(rec *entity.CostRecord) error {
	query := `
		INSERT INTO cost_records (id, kind, description, amount, ts, shift_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.Kind, rec.Description, rec.Amount, rec.Timestamp, rec.ShiftID, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cost record: %w", err)
	}
	return nil
}

// ListByWindow devuelve los costos con timestamp en [from, to].
func (r *CostRecordRepo) ListByWindow(from, to time.Time) ([]*entity.CostRecord, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, kind, description, amount, ts, shift_id, created_at
		FROM cost_records WHERE ts >= $1 AND ts <= $2 ORDER BY ts`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list cost records: %w", err)
	}
	defer rows.Close()
	var out []*entity.CostRecord
	for rows.Next() {
		var rec entity.CostRecord
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.Description, &rec.Amount, &rec.Timestamp, &rec.ShiftID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cost record: %w", err)
		}
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cost records: %w", err)
	}
	return out, nil
}
