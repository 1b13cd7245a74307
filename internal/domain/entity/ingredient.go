package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Orígenes de un StockBatch (auditoría; no afectan los cálculos derivados).
const (
	BatchOriginInitial    = "INITIAL"     // stock inicial al crear el ingrediente
	BatchOriginRestock    = "RESTOCK"     // compra / reposición
	BatchOriginSale       = "SALE"        // consumo por venta (cantidad negativa)
	BatchOriginAdjustment = "ADJUSTMENT"  // ajuste manual de stock
	BatchOriginCountReset = "COUNT_RESET" // lote sintético al aplicar un conteo físico
)

// StockBatch es una entrada del libro de lotes de un ingrediente.
// Quantity es con signo: positivo = adquisición, negativo = consumo/corrección.
// UnitCost registra el costo unitario al momento del lote; en lotes de consumo
// guarda el costo promedio vigente al consumir (no un precio de compra nuevo),
// para que la analítica posterior pueda atribuir costo sin recalcular.
type StockBatch struct {
	IngredientID string
	Timestamp    time.Time
	Quantity     decimal.Decimal // con signo
	UnitCost     decimal.Decimal // >= 0 siempre
	Origin       string
}

// Ingredient representa un insumo de cocina con su historial de lotes.
// Batches está en orden de inserción (cronológico) y nunca se reordena; el
// stock total y el costo promedio son siempre derivados del historial, nunca
// se almacenan como campos propios (evita deriva entre caché y libro).
type Ingredient struct {
	ID                string
	Name              string // único, case-insensitive
	Unit              string // unidad de medida libre: "g", "ml", "pcs"...
	SellPrice         *decimal.Decimal // precio si se vende directo como "extra"; nil = no se vende
	LowStockThreshold decimal.Decimal  // >= 0; 0 desactiva la alerta
	Batches           []StockBatch
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
