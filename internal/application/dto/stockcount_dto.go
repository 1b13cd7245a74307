package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SetActualRequest body para PATCH /api/stock-counts/:id/lines/:ingredientId.
type SetActualRequest struct {
	ActualStock decimal.Decimal `json:"actual_stock" validate:"required"`
}

// StockCountLineDTO renglón de conteo en respuestas.
type StockCountLineDTO struct {
	IngredientID    string           `json:"ingredient_id"`
	IngredientName  string           `json:"ingredient_name"`
	ExpectedStock   decimal.Decimal  `json:"expected_stock"`
	ActualStock     *decimal.Decimal `json:"actual_stock,omitempty"` // nil = sin contar
	UnitCostAtCount decimal.Decimal  `json:"unit_cost_at_count"`
	VarianceValue   decimal.Decimal  `json:"variance_value"`
}

// StockCountResponse salida de un conteo físico.
type StockCountResponse struct {
	ID                 string              `json:"id"`
	Status             string              `json:"status"`
	Lines              []StockCountLineDTO `json:"lines"`
	TotalVarianceValue decimal.Decimal     `json:"total_variance_value"`
	CreatedAt          time.Time           `json:"created_at"`
	FinalizedAt        *time.Time          `json:"finalized_at,omitempty"`
	AppliedAt          *time.Time          `json:"applied_at,omitempty"`
}
