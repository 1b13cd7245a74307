package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/pos-cocina/internal/application/inventory"
	"github.com/tu-usuario/pos-cocina/internal/application/sales"
	"github.com/tu-usuario/pos-cocina/internal/application/stockcount"
	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
)

// Ensure TxRunner implements los tres puertos transaccionales de la app.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ sales.SaleTxRunner = (*TxRunner)(nil)
var _ stockcount.CountTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ingRepo repository.IngredientRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ingRepo := NewIngredientRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(ingRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale inicia una transacción con los repos que toca el cierre de una venta.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	ingRepo repository.IngredientRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	kitchenRepo repository.KitchenOrderRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ingRepo := NewIngredientRepository(tx)
	productRepo := NewProductRepository(tx)
	saleRepo := NewSaleRepository(tx)
	kitchenRepo := NewKitchenOrderRepository(tx)

	if err := fn(ingRepo, productRepo, saleRepo, kitchenRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCount inicia una transacción para aplicar un conteo físico al libro.
func (r *TxRunner) RunCount(ctx context.Context, fn func(
	ingRepo repository.IngredientRepository,
	countRepo repository.StockCountRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ingRepo := NewIngredientRepository(tx)
	countRepo := NewStockCountRepository(tx)

	if err := fn(ingRepo, countRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
