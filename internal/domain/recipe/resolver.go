// Package recipe deriva costo y stock vendible de un producto a partir de su
// receta y del estado actual del libro de lotes. Lecturas puras: seguras
// contra cualquier snapshot consistente sin bloqueo.
package recipe

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/ledger"
)

// Index es el conjunto de ingredientes vigente, indexado por id.
type Index map[string]*entity.Ingredient

// NewIndex construye el índice a partir de la lista de ingredientes.
func NewIndex(ingredients []*entity.Ingredient) Index {
	idx := make(Index, len(ingredients))
	for _, ing := range ingredients {
		idx[ing.ID] = ing
	}
	return idx
}

// Cost devuelve el costo de una unidad del producto:
//
//	Σ sobre renglones de receta de averageCost(ingrediente) × cantidad.
//
// Un renglón que referencia un ingrediente inexistente aporta 0 (no es error):
// lenidad deliberada para que borrar un ingrediente no rompa los productos
// existentes. Quien llama debe además limpiar los renglones colgantes.
func Cost(lines []entity.RecipeLine, idx Index) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		ing, ok := idx[line.IngredientID]
		if !ok {
			continue
		}
		total = total.Add(ledger.AverageCost(ing).Mul(line.Quantity))
	}
	return total
}

// SellableStock devuelve cuántas unidades del producto se pueden preparar:
// por renglón floor(totalStock / cantidad), y el mínimo entre renglones
// (restricción clásica de lista de materiales: solo se hacen tantas unidades
// como permita el ingrediente más escaso). Ingrediente faltante, stock 0 o
// cantidad 0 en el renglón aportan 0. Receta vacía = 0 (un producto sin
// receta no es ordenable por esta vía).
func SellableStock(lines []entity.RecipeLine, idx Index) int64 {
	if len(lines) == 0 {
		return 0
	}
	min := int64(math.MaxInt64)
	for _, line := range lines {
		var units int64
		ing, ok := idx[line.IngredientID]
		if ok && line.Quantity.GreaterThan(decimal.Zero) {
			stock := ledger.TotalStock(ing)
			if stock.GreaterThan(decimal.Zero) {
				units = stock.Div(line.Quantity).Floor().IntPart()
			}
		}
		if units < min {
			min = units
		}
	}
	return min
}
