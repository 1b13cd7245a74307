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

var _ repository.KitchenOrderRepository = (*KitchenOrderRepo)(nil)

// KitchenOrderRepo implementación de KitchenOrderRepository (usable con pool o tx).
type KitchenOrderRepo struct {
	q Querier
}

// NewKitchenOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewKitchenOrderRepository(q Querier) *KitchenOrderRepo {
	return &KitchenOrderRepo{q: q}
}

// Create persiste la comanda con sus renglones.
func (r *KitchenOrderRepo) Create(order *entity.KitchenOrder) error {
	query := `
		INSERT INTO kitchen_orders (id, sale_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.SaleID, order.Status, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert kitchen order: %w", err)
	}
	itemQuery := `
		INSERT INTO kitchen_order_items (order_id, product_id, product_name, quantity)
		VALUES ($1, $2, $3, $4)`
	for _, it := range order.Items {
		if _, err := r.q.Exec(context.Background(), itemQuery, order.ID, it.ProductID, it.ProductName, it.Quantity); err != nil {
			return fmt.Errorf("insert kitchen order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una comanda con sus renglones.
func (r *KitchenOrderRepo) GetByID(id string) (*entity.KitchenOrder, error) {
	var o entity.KitchenOrder
	err := r.q.QueryRow(context.Background(), `
		SELECT id, sale_id, status, created_at, updated_at
		FROM kitchen_orders WHERE id = $1`, id).Scan(
		&o.ID, &o.SaleID, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kitchen order: %w", err)
	}
	items, err := r.loadItems(context.Background(), id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// ListPending devuelve las comandas no entregadas (PENDING y READY), más
// antiguas primero: es la cola que ve la pantalla de cocina.
func (r *KitchenOrderRepo) ListPending() ([]*entity.KitchenOrder, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, sale_id, status, created_at, updated_at
		FROM kitchen_orders WHERE status <> $1 ORDER BY created_at`, entity.KitchenStatusDelivered)
	if err != nil {
		return nil, fmt.Errorf("list kitchen orders: %w", err)
	}
	defer rows.Close()

	var out []*entity.KitchenOrder
	byID := make(map[string]*entity.KitchenOrder)
	for rows.Next() {
		var o entity.KitchenOrder
		if err := rows.Scan(&o.ID, &o.SaleID, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan kitchen order: %w", err)
		}
		out = append(out, &o)
		byID[o.ID] = &o
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kitchen orders: %w", err)
	}
	if len(out) == 0 {
		return out, nil
	}

	irows, err := r.q.Query(context.Background(), `
		SELECT ki.order_id, ki.product_id, ki.product_name, ki.quantity
		FROM kitchen_order_items ki
		JOIN kitchen_orders ko ON ko.id = ki.order_id
		WHERE ko.status <> $1
		ORDER BY ki.order_id, ki.seq`, entity.KitchenStatusDelivered)
	if err != nil {
		return nil, fmt.Errorf("list kitchen order items: %w", err)
	}
	defer irows.Close()
	for irows.Next() {
		var orderID string
		var it entity.KitchenOrderItem
		if err := irows.Scan(&orderID, &it.ProductID, &it.ProductName, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan kitchen order item: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	if err := irows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kitchen order items: %w", err)
	}
	return out, nil
}

// UpdateStatus cambia el estado de la comanda.
func (r *KitchenOrderRepo) UpdateStatus(id, status string, updatedAt time.Time) error {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE kitchen_orders SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update kitchen order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *KitchenOrderRepo) loadItems(ctx context.Context, orderID string) ([]entity.KitchenOrderItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT product_id, product_name, quantity
		FROM kitchen_order_items WHERE order_id = $1 ORDER BY seq`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load kitchen order items: %w", err)
	}
	defer rows.Close()
	var out []entity.KitchenOrderItem
	for rows.Next() {
		var it entity.KitchenOrderItem
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan kitchen order item: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kitchen order items: %w", err)
	}
	return out, nil
}
