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

var _ repository.IngredientRepository = (*IngredientRepo)(nil)

// IngredientRepo implementación de IngredientRepository (usable con pool o tx).
// El libro de lotes vive en stock_batches; el orden de inserción se preserva
// con la columna seq (bigserial) y los lectores siempre ordenan por ella.
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

// Create persiste la cabecera y los lotes iniciales (si los hay).
func (r *IngredientRepo) Create(ing *entity.Ingredient) error {
	query := `
		INSERT INTO ingredients (id, name, unit, sell_price, low_stock_threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Name, ing.Unit, ing.SellPrice, ing.LowStockThreshold,
		ing.CreatedAt, ing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ingredient: %w", err)
	}
	return r.AppendBatches(ing.ID, ing.Batches)
}

// GetByID obtiene un ingrediente con su historial completo de lotes.
func (r *IngredientRepo) GetByID(id string) (*entity.Ingredient, error) {
	return r.getOne(context.Background(), id, false)
}

// GetForUpdate obtiene el ingrediente bloqueando su fila (SELECT FOR UPDATE).
func (r *IngredientRepo) GetForUpdate(id string) (*entity.Ingredient, error) {
	return r.getOne(context.Background(), id, true)
}

func (r *IngredientRepo) getOne(ctx context.Context, id string, forUpdate bool) (*entity.Ingredient, error) {
	query := `
		SELECT id, name, unit, sell_price, low_stock_threshold, created_at, updated_at
		FROM ingredients WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var ing entity.Ingredient
	err := r.q.QueryRow(ctx, query, id).Scan(
		&ing.ID, &ing.Name, &ing.Unit, &ing.SellPrice, &ing.LowStockThreshold,
		&ing.CreatedAt, &ing.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient: %w", err)
	}
	batches, err := r.loadBatches(ctx, id)
	if err != nil {
		return nil, err
	}
	ing.Batches = batches
	return &ing, nil
}

// GetByName obtiene un ingrediente por nombre (case-insensitive), con lotes.
func (r *IngredientRepo) GetByName(name string) (*entity.Ingredient, error) {
	query := `
		SELECT id FROM ingredients WHERE lower(name) = lower($1)`
	var id string
	err := r.q.QueryRow(context.Background(), query, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ingredient by name: %w", err)
	}
	return r.GetByID(id)
}

// List devuelve todos los ingredientes con sus lotes. Dos queries: cabeceras
// y todos los lotes, agrupados en memoria (evita N+1).
func (r *IngredientRepo) List() ([]*entity.Ingredient, error) {
	return r.list(context.Background(), false)
}

// ListForUpdate carga todos los ingredientes bloqueando sus filas. Es el
// candado de una venta o una aplicación de conteo.
func (r *IngredientRepo) ListForUpdate() ([]*entity.Ingredient, error) {
	return r.list(context.Background(), true)
}

func (r *IngredientRepo) list(ctx context.Context, forUpdate bool) ([]*entity.Ingredient, error) {
	query := `
		SELECT id, name, unit, sell_price, low_stock_threshold, created_at, updated_at
		FROM ingredients ORDER BY name`
	if forUpdate {
		// El ORDER BY fija un orden de adquisición de locks estable entre
		// transacciones concurrentes (evita deadlocks cruzados).
		query = `
		SELECT id, name, unit, sell_price, low_stock_threshold, created_at, updated_at
		FROM ingredients ORDER BY id FOR UPDATE`
	}
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	defer rows.Close()

	var out []*entity.Ingredient
	byID := make(map[string]*entity.Ingredient)
	for rows.Next() {
		var ing entity.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Unit, &ing.SellPrice, &ing.LowStockThreshold, &ing.CreatedAt, &ing.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		out = append(out, &ing)
		byID[ing.ID] = &ing
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ingredients: %w", err)
	}

	bq := `
		SELECT ingredient_id, ts, quantity, unit_cost, origin
		FROM stock_batches ORDER BY ingredient_id, seq`
	brows, err := r.q.Query(ctx, bq)
	if err != nil {
		return nil, fmt.Errorf("list stock batches: %w", err)
	}
	defer brows.Close()
	for brows.Next() {
		var b entity.StockBatch
		if err := brows.Scan(&b.IngredientID, &b.Timestamp, &b.Quantity, &b.UnitCost, &b.Origin); err != nil {
			return nil, fmt.Errorf("scan stock batch: %w", err)
		}
		if ing, ok := byID[b.IngredientID]; ok {
			ing.Batches = append(ing.Batches, b)
		}
	}
	if err := brows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock batches: %w", err)
	}
	return out, nil
}

// Update actualiza solo la cabecera; el libro de lotes no se toca por acá.
func (r *IngredientRepo) Update(ing *entity.Ingredient) error {
	query := `
		UPDATE ingredients
		SET name = $2, unit = $3, sell_price = $4, low_stock_threshold = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		ing.ID, ing.Name, ing.Unit, ing.SellPrice, ing.LowStockThreshold, ing.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra el ingrediente y su historial (cascade sobre stock_batches).
func (r *IngredientRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ingredient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AppendBatches agrega lotes al final del historial. seq es bigserial: el
// orden de inserción queda fijado por la misma inserción.
func (r *IngredientRepo) AppendBatches(ingredientID string, batches []entity.StockBatch) error {
	query := `
		INSERT INTO stock_batches (ingredient_id, ts, quantity, unit_cost, origin)
		VALUES ($1, $2, $3, $4, $5)`
	for _, b := range batches {
		_, err := r.q.Exec(context.Background(), query,
			ingredientID, b.Timestamp, b.Quantity, b.UnitCost, b.Origin,
		)
		if err != nil {
			return fmt.Errorf("insert stock batch: %w", err)
		}
	}
	return nil
}

// ReplaceBatches reemplaza el historial completo. Solo lo usa la aplicación
// de un conteo físico (reinicio del libro a un único lote COUNT_RESET).
func (r *IngredientRepo) ReplaceBatches(ingredientID string, batches []entity.StockBatch) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_batches WHERE ingredient_id = $1`, ingredientID)
	if err != nil {
		return fmt.Errorf("clear stock batches: %w", err)
	}
	return r.AppendBatches(ingredientID, batches)
}

func (r *IngredientRepo) loadBatches(ctx context.Context, ingredientID string) ([]entity.StockBatch, error) {
	query := `
		SELECT ingredient_id, ts, quantity, unit_cost, origin
		FROM stock_batches WHERE ingredient_id = $1 ORDER BY seq`
	rows, err := r.q.Query(ctx, query, ingredientID)
	if err != nil {
		return nil, fmt.Errorf("load stock batches: %w", err)
	}
	defer rows.Close()
	var out []entity.StockBatch
	for rows.Next() {
		var b entity.StockBatch
		if err := rows.Scan(&b.IngredientID, &b.Timestamp, &b.Quantity, &b.UnitCost, &b.Origin); err != nil {
			return nil, fmt.Errorf("scan stock batch: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock batches: %w", err)
	}
	return out, nil
}
