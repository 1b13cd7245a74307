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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository (usable con pool o tx).
// Solo persiste cabecera y receta: costo y stock vendible se derivan al leer.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste cabecera y renglones de receta.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, sell_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SellPrice, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return r.insertRecipe(product.ID, product.Recipe)
}

// GetByID obtiene un producto con su receta.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, sell_price, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.SellPrice, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	recipe, err := r.loadRecipe(context.Background(), id)
	if err != nil {
		return nil, err
	}
	p.Recipe = recipe
	return &p, nil
}

// List devuelve todos los productos con receta (dos queries, agrupado en memoria).
func (r *ProductRepo) List() ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, sell_price, created_at, updated_at
		FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	byID := make(map[string]*entity.Product)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SellPrice, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, &p)
		byID[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	lrows, err := r.q.Query(context.Background(), `
		SELECT product_id, ingredient_id, quantity
		FROM recipe_lines ORDER BY product_id, seq`)
	if err != nil {
		return nil, fmt.Errorf("list recipe lines: %w", err)
	}
	defer lrows.Close()
	for lrows.Next() {
		var productID string
		var rl entity.RecipeLine
		if err := lrows.Scan(&productID, &rl.IngredientID, &rl.Quantity); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		if p, ok := byID[productID]; ok {
			p.Recipe = append(p.Recipe, rl)
		}
	}
	if err := lrows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe lines: %w", err)
	}
	return out, nil
}

// Update reemplaza cabecera y receta completa.
func (r *ProductRepo) Update(product *entity.Product) error {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE products SET name = $2, sell_price = $3, updated_at = $4 WHERE id = $1`,
		product.ID, product.Name, product.SellPrice, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM recipe_lines WHERE product_id = $1`, product.ID); err != nil {
		return fmt.Errorf("clear recipe lines: %w", err)
	}
	return r.insertRecipe(product.ID, product.Recipe)
}

// Delete borra el producto y su receta (cascade sobre recipe_lines).
func (r *ProductRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// StripIngredient borra los renglones de receta que referencian al ingrediente.
// Se llama en la misma transacción que borra el ingrediente.
func (r *ProductRepo) StripIngredient(ingredientID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM recipe_lines WHERE ingredient_id = $1`, ingredientID)
	if err != nil {
		return fmt.Errorf("strip ingredient from recipes: %w", err)
	}
	return nil
}

func (r *ProductRepo) insertRecipe(productID string, lines []entity.RecipeLine) error {
	query := `
		INSERT INTO recipe_lines (product_id, ingredient_id, quantity)
		VALUES ($1, $2, $3)`
	for _, rl := range lines {
		if _, err := r.q.Exec(context.Background(), query, productID, rl.IngredientID, rl.Quantity); err != nil {
			return fmt.Errorf("insert recipe line: %w", err)
		}
	}
	return nil
}

func (r *ProductRepo) loadRecipe(ctx context.Context, productID string) ([]entity.RecipeLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT ingredient_id, quantity
		FROM recipe_lines WHERE product_id = $1 ORDER BY seq`, productID)
	if err != nil {
		return nil, fmt.Errorf("load recipe lines: %w", err)
	}
	defer rows.Close()
	var out []entity.RecipeLine
	for rows.Next() {
		var rl entity.RecipeLine
		if err := rows.Scan(&rl.IngredientID, &rl.Quantity); err != nil {
			return nil, fmt.Errorf("scan recipe line: %w", err)
		}
		out = append(out, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipe lines: %w", err)
	}
	return out, nil
}
