package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeLineDTO un renglón de receta en requests y responses.
type RecipeLineDTO struct {
	IngredientID string          `json:"ingredient_id" validate:"required,uuid"`
	Quantity     decimal.Decimal `json:"quantity" validate:"required"`
}

// SaveProductRequest body para POST /api/products y PUT /api/products/:id.
type SaveProductRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	SellPrice decimal.Decimal `json:"sell_price" validate:"required"`
	Recipe    []RecipeLineDTO `json:"recipe"`
}

// ProductResponse salida de un producto con costo y stock vendible derivados
// del libro al momento de la lectura.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SellPrice     decimal.Decimal `json:"sell_price"`
	Recipe        []RecipeLineDTO `json:"recipe"`
	Cost          decimal.Decimal `json:"cost"`           // derivado, nunca persistido
	SellableStock int64           `json:"sellable_stock"` // mínimo entre renglones de receta
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
