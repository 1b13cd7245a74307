package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateIngredientRequest body para POST /api/ingredients.
// InitialStock/InitialCost opcionales: si InitialStock > 0 se crea el primer
// lote con ese costo.
type CreateIngredientRequest struct {
	Name              string           `json:"name" validate:"required,min=1,max=200"`
	Unit              string           `json:"unit" validate:"required,min=1,max=20"`
	SellPrice         *decimal.Decimal `json:"sell_price,omitempty"`
	LowStockThreshold decimal.Decimal  `json:"low_stock_threshold"`
	InitialStock      decimal.Decimal  `json:"initial_stock"`
	InitialCost       decimal.Decimal  `json:"initial_cost"`
}

// UpdateIngredientRequest body para PUT /api/ingredients/:id (solo cabecera).
type UpdateIngredientRequest struct {
	Name              string           `json:"name" validate:"required,min=1,max=200"`
	Unit              string           `json:"unit" validate:"required,min=1,max=20"`
	SellPrice         *decimal.Decimal `json:"sell_price,omitempty"`
	LowStockThreshold decimal.Decimal  `json:"low_stock_threshold"`
}

// RestockRequest body para POST /api/ingredients/:id/restock.
type RestockRequest struct {
	Quantity decimal.Decimal `json:"quantity" validate:"required"`
	UnitCost decimal.Decimal `json:"unit_cost" validate:"required"`
}

// AdjustStockRequest body para POST /api/ingredients/:id/adjust
// (corrección manual: delta con signo al costo indicado).
type AdjustStockRequest struct {
	Delta    decimal.Decimal `json:"delta" validate:"required"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// StockBatchDTO un lote del historial en respuestas.
type StockBatchDTO struct {
	Timestamp time.Time       `json:"timestamp"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Origin    string          `json:"origin"`
}

// IngredientResponse salida de un ingrediente con sus derivados ya calculados
// (stock total y costo promedio nunca vienen de columnas, siempre del libro).
type IngredientResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Unit              string           `json:"unit"`
	SellPrice         *decimal.Decimal `json:"sell_price,omitempty"`
	LowStockThreshold decimal.Decimal  `json:"low_stock_threshold"`
	TotalStock        decimal.Decimal  `json:"total_stock"`
	AverageCost       decimal.Decimal  `json:"average_cost"`
	LowStock          bool             `json:"low_stock"`
	Batches           []StockBatchDTO  `json:"batches,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}
