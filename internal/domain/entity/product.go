package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeLine es un renglón de la receta: cuánto de un ingrediente requiere
// una unidad del producto. Quantity siempre > 0.
type RecipeLine struct {
	IngredientID string
	Quantity     decimal.Decimal
}

// Product representa un artículo vendible compuesto por una receta.
// Costo y stock vendible NUNCA se persisten: se derivan de la receta y del
// libro de lotes en cada lectura (decisión central del modelo — un Product
// jamás cachea un costo viejo). Una receta vacía significa que el producto
// no es ordenable por esta vía (se vendería como ingrediente directo).
type Product struct {
	ID        string
	Name      string
	SellPrice decimal.Decimal
	Recipe    []RecipeLine
	CreatedAt time.Time
	UpdatedAt time.Time
}
