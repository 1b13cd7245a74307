package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
// Las ventas son inmutables: no hay Update ni Delete.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta con sus líneas.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, ts, payment_mode, is_employee_meal, total, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Timestamp, sale.PaymentMode, sale.IsEmployeeMeal,
		sale.Total, sale.CreatedBy, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	lineQuery := `
		INSERT INTO sale_lines (sale_id, item_id, kind, item_name, unit_price, quantity)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, l := range sale.Lines {
		_, err := r.q.Exec(context.Background(), lineQuery,
			sale.ID, l.ItemID, l.Kind, l.ItemName, l.UnitPrice, l.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert sale line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, ts, payment_mode, is_employee_meal, total, created_by, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Timestamp, &s.PaymentMode, &s.IsEmployeeMeal, &s.Total, &s.CreatedBy, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	lines, err := r.loadLines(context.Background(), id)
	if err != nil {
		return nil, err
	}
	s.Lines = lines
	return &s, nil
}

// ListByWindow devuelve las ventas con timestamp en [from, to], con líneas.
func (r *SaleRepo) ListByWindow(from, to time.Time) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, ts, payment_mode, is_employee_meal, total, created_by, created_at
		FROM sales WHERE ts >= $1 AND ts <= $2 ORDER BY ts`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []*entity.Sale
	byID := make(map[string]*entity.Sale)
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Timestamp, &s.PaymentMode, &s.IsEmployeeMeal, &s.Total, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		out = append(out, &s)
		byID[s.ID] = &s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales: %w", err)
	}
	if len(out) == 0 {
		return out, nil
	}

	lrows, err := r.q.Query(context.Background(), `
		SELECT sl.sale_id, sl.item_id, sl.kind, sl.item_name, sl.unit_price, sl.quantity
		FROM sale_lines sl
		JOIN sales s ON s.id = sl.sale_id
		WHERE s.ts >= $1 AND s.ts <= $2
		ORDER BY sl.sale_id, sl.seq`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer lrows.Close()
	for lrows.Next() {
		var saleID string
		var l entity.CartLine
		if err := lrows.Scan(&saleID, &l.ItemID, &l.Kind, &l.ItemName, &l.UnitPrice, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		if s, ok := byID[saleID]; ok {
			s.Lines = append(s.Lines, l)
		}
	}
	if err := lrows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sale lines: %w", err)
	}
	return out, nil
}

func (r *SaleRepo) loadLines(ctx context.Context, saleID string) ([]entity.CartLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT item_id, kind, item_name, unit_price, quantity
		FROM sale_lines WHERE sale_id = $1 ORDER BY seq`, saleID)
	if err != nil {
		return nil, fmt.Errorf("load sale lines: %w", err)
	}
	defer rows.Close()
	var out []entity.CartLine
	for rows.Next() {
		var l entity.CartLine
		if err := rows.Scan(&l.ItemID, &l.Kind, &l.ItemName, &l.UnitPrice, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sale lines: %w", err)
	}
	return out, nil
}
