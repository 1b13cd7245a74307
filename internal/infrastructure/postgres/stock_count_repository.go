package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
)

var _ repository.StockCountRepository = (*StockCountRepo)(nil)

// StockCountRepo implementación de StockCountRepository (usable con pool o tx).
// Update reescribe renglones completos: el conteo es un documento, no un
// agregado con mutaciones finas.
type StockCountRepo struct {
	q Querier
}

// NewStockCountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockCountRepository(q Querier) *StockCountRepo {
	return &StockCountRepo{q: q}
}

// Create persiste el conteo con todos sus renglones.
func (r *StockCountRepo) Create(sc *entity.StockCount) error {
	query := `
		INSERT INTO stock_counts (id, status, total_variance_value, created_by, created_at, finalized_at, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sc.ID, sc.Status, sc.TotalVarianceValue, sc.CreatedBy, sc.CreatedAt, sc.FinalizedAt, sc.AppliedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock count: %w", err)
	}
	return r.insertLines(sc.ID, sc.Lines)
}

// GetByID obtiene un conteo con sus renglones.
func (r *StockCountRepo) GetByID(id string) (*entity.StockCount, error) {
	var sc entity.StockCount
	err := r.q.QueryRow(context.Background(), `
		SELECT id, status, total_variance_value, created_by, created_at, finalized_at, applied_at
		FROM stock_counts WHERE id = $1`, id).Scan(
		&sc.ID, &sc.Status, &sc.TotalVarianceValue, &sc.CreatedBy, &sc.CreatedAt, &sc.FinalizedAt, &sc.AppliedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock count: %w", err)
	}
	lines, err := r.loadLines(context.Background(), id)
	if err != nil {
		return nil, err
	}
	sc.Lines = lines
	return &sc, nil
}

// List devuelve conteos paginados, más recientes primero, con renglones.
func (r *StockCountRepo) List(limit, offset int) ([]*entity.StockCount, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, status, total_variance_value, created_by, created_at, finalized_at, applied_at
		FROM stock_counts ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock counts: %w", err)
	}
	defer rows.Close()

	var out []*entity.StockCount
	for rows.Next() {
		var sc entity.StockCount
		if err := rows.Scan(&sc.ID, &sc.Status, &sc.TotalVarianceValue, &sc.CreatedBy, &sc.CreatedAt, &sc.FinalizedAt, &sc.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan stock count: %w", err)
		}
		out = append(out, &sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock counts: %w", err)
	}
	for _, sc := range out {
		lines, err := r.loadLines(context.Background(), sc.ID)
		if err != nil {
			return nil, err
		}
		sc.Lines = lines
	}
	return out, nil
}

// Update reescribe cabecera y renglones completos del conteo.
func (r *StockCountRepo) Update(sc *entity.StockCount) error {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE stock_counts
		SET status = $2, total_variance_value = $3, finalized_at = $4, applied_at = $5
		WHERE id = $1`,
		sc.ID, sc.Status, sc.TotalVarianceValue, sc.FinalizedAt, sc.AppliedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM stock_count_lines WHERE count_id = $1`, sc.ID); err != nil {
		return fmt.Errorf("clear stock count lines: %w", err)
	}
	return r.insertLines(sc.ID, sc.Lines)
}

func (r *StockCountRepo) insertLines(countID string, lines []entity.StockCountLine) error {
	query := `
		INSERT INTO stock_count_lines (count_id, ingredient_id, ingredient_name, expected_stock, actual_stock, unit_cost_at_count, variance_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, l := range lines {
		_, err := r.q.Exec(context.Background(), query,
			countID, l.IngredientID, l.IngredientName, l.ExpectedStock, l.ActualStock, l.UnitCostAtCount, l.VarianceValue,
		)
		if err != nil {
			return fmt.Errorf("insert stock count line: %w", err)
		}
	}
	return nil
}

func (r *StockCountRepo) loadLines(ctx context.Context, countID string) ([]entity.StockCountLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT ingredient_id, ingredient_name, expected_stock, actual_stock, unit_cost_at_count, variance_value
		FROM stock_count_lines WHERE count_id = $1 ORDER BY ingredient_name`, countID)
	if err != nil {
		return nil, fmt.Errorf("load stock count lines: %w", err)
	}
	defer rows.Close()
	var out []entity.StockCountLine
	for rows.Next() {
		var l entity.StockCountLine
		if err := rows.Scan(&l.IngredientID, &l.IngredientName, &l.ExpectedStock, &l.ActualStock, &l.UnitCostAtCount, &l.VarianceValue); err != nil {
			return nil, fmt.Errorf("scan stock count line: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock count lines: %w", err)
	}
	return out, nil
}
