package recipe_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/recipe"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func harina(qty, cost string) *entity.Ingredient {
	return &entity.Ingredient{
		ID:   "harina",
		Name: "Harina",
		Unit: "g",
		Batches: []entity.StockBatch{
			{IngredientID: "harina", Quantity: dec(qty), UnitCost: dec(cost), Origin: entity.BatchOriginInitial},
		},
	}
}

// Escenario de referencia: Harina 1000g a 0.05; Pan = 200g de harina.
// cost(Pan) = 10, sellableStock(Pan) = 5.
func TestCostYSellableStock_EscenarioPan(t *testing.T) {
	idx := recipe.NewIndex([]*entity.Ingredient{harina("1000", "0.05")})
	receta := []entity.RecipeLine{{IngredientID: "harina", Quantity: dec("200")}}

	assert.True(t, recipe.Cost(receta, idx).Equal(dec("10")),
		"cost(Pan) esperado 10, fue %s", recipe.Cost(receta, idx))
	assert.EqualValues(t, 5, recipe.SellableStock(receta, idx))
}

// Un renglón con ingrediente inexistente aporta costo 0 y stock 0: borrar un
// ingrediente no debe romper los productos que lo referencian.
func TestCost_IngredienteColganteAportaCero(t *testing.T) {
	idx := recipe.NewIndex([]*entity.Ingredient{harina("1000", "0.05")})
	receta := []entity.RecipeLine{
		{IngredientID: "harina", Quantity: dec("200")},
		{IngredientID: "no-existe", Quantity: dec("50")},
	}

	assert.True(t, recipe.Cost(receta, idx).Equal(dec("10")),
		"el renglón colgante no debe sumar costo")
	assert.EqualValues(t, 0, recipe.SellableStock(receta, idx),
		"el renglón colgante limita el stock vendible a 0")
}

// El stock vendible es el mínimo entre renglones (lista de materiales).
func TestSellableStock_MinimoEntreRenglones(t *testing.T) {
	azucar := &entity.Ingredient{
		ID: "azucar", Name: "Azúcar", Unit: "g",
		Batches: []entity.StockBatch{{IngredientID: "azucar", Quantity: dec("90"), UnitCost: dec("0.02")}},
	}
	idx := recipe.NewIndex([]*entity.Ingredient{harina("1000", "0.05"), azucar})
	receta := []entity.RecipeLine{
		{IngredientID: "harina", Quantity: dec("200")}, // alcanza para 5
		{IngredientID: "azucar", Quantity: dec("30")},  // alcanza para 3
	}

	assert.EqualValues(t, 3, recipe.SellableStock(receta, idx),
		"manda el ingrediente más escaso")
}

func TestSellableStock_RecetaVacia_Cero(t *testing.T) {
	idx := recipe.NewIndex([]*entity.Ingredient{harina("1000", "0.05")})
	assert.EqualValues(t, 0, recipe.SellableStock(nil, idx),
		"producto sin receta no es ordenable por esta vía")
}

func TestSellableStock_CantidadCeroEnRenglon_Cero(t *testing.T) {
	idx := recipe.NewIndex([]*entity.Ingredient{harina("1000", "0.05")})
	receta := []entity.RecipeLine{{IngredientID: "harina", Quantity: decimal.Zero}}
	assert.EqualValues(t, 0, recipe.SellableStock(receta, idx))
}

// Propiedad de monotonía: subir el stock de un ingrediente de la receta nunca
// baja el stock vendible del producto; bajarlo nunca lo sube.
func TestSellableStock_Monotonia(t *testing.T) {
	receta := []entity.RecipeLine{{IngredientID: "harina", Quantity: dec("200")}}

	base := recipe.SellableStock(receta, recipe.NewIndex([]*entity.Ingredient{harina("1000", "0.05")}))
	mas := recipe.SellableStock(receta, recipe.NewIndex([]*entity.Ingredient{harina("1400", "0.05")}))
	menos := recipe.SellableStock(receta, recipe.NewIndex([]*entity.Ingredient{harina("300", "0.05")}))

	assert.GreaterOrEqual(t, mas, base, "más stock nunca reduce el vendible")
	assert.LessOrEqual(t, menos, base, "menos stock nunca aumenta el vendible")
}
