package reports_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/pos-cocina/internal/application/reports"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/recipe"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func fixtures() (recipe.Index, map[string]*entity.Product) {
	harina := &entity.Ingredient{
		ID: "harina", Name: "Harina", Unit: "g",
		Batches: []entity.StockBatch{{IngredientID: "harina", Quantity: dec("1000"), UnitCost: dec("0.05")}},
	}
	pan := &entity.Product{
		ID: "pan", Name: "Pan", SellPrice: dec("60"),
		Recipe: []entity.RecipeLine{{IngredientID: "harina", Quantity: dec("200")}}, // costo 10
	}
	return recipe.NewIndex([]*entity.Ingredient{harina}), map[string]*entity.Product{"pan": pan}
}

func venta(total string, employeeMeal bool, lines ...entity.CartLine) *entity.Sale {
	return &entity.Sale{ID: "s", Total: dec(total), IsEmployeeMeal: employeeMeal, Lines: lines}
}

// Ingresos solo de ventas normales; COGS a costo promedio actual; la utilidad
// neta descuenta los costos operativos de la ventana.
func TestSummarize_UtilidadCompleta(t *testing.T) {
	idx, prods := fixtures()
	from, to := time.Now().Add(-24*time.Hour), time.Now()

	sales := []*entity.Sale{
		venta("120", false, entity.CartLine{ItemID: "pan", Kind: entity.LineKindProduct, Quantity: dec("2")}),
	}
	costs := []*entity.CostRecord{
		{Kind: entity.CostKindLabor, Amount: dec("80")},
		{Kind: entity.CostKindMisc, Amount: dec("15")},
	}

	s := reports.Summarize(sales, costs, idx, prods, from, to)

	assert.True(t, s.Revenue.Equal(dec("120")))
	assert.True(t, s.CostOfGoodsSold.Equal(dec("20")), "2 panes × costo 10")
	assert.True(t, s.GrossProfit.Equal(dec("100")))
	assert.True(t, s.OperatingCosts.Equal(dec("95")))
	assert.True(t, s.LaborCost.Equal(dec("80")))
	assert.True(t, s.NetProfit.Equal(dec("5")))
	assert.Equal(t, 1, s.SaleCount)
}

// Una comida de empleado no suma ingreso pero sí costo: consumió inventario.
func TestSummarize_ComidaDeEmpleado(t *testing.T) {
	idx, prods := fixtures()

	sales := []*entity.Sale{
		venta("60", true, entity.CartLine{ItemID: "pan", Kind: entity.LineKindProduct, Quantity: dec("1")}),
	}
	s := reports.Summarize(sales, nil, idx, prods, time.Now(), time.Now())

	assert.True(t, s.Revenue.IsZero(), "la comida de empleado no es ingreso")
	assert.True(t, s.CostOfGoodsSold.Equal(dec("10")), "pero su costo sí cuenta")
	assert.Equal(t, 1, s.EmployeeMealCount)
	assert.Equal(t, 0, s.SaleCount)
}

// Venta directa de ingrediente: COGS al promedio vigente del libro.
func TestSummarize_VentaDirectaDeIngrediente(t *testing.T) {
	idx, prods := fixtures()

	sales := []*entity.Sale{
		venta("25", false, entity.CartLine{ItemID: "harina", Kind: entity.LineKindIngredient, Quantity: dec("100")}),
	}
	s := reports.Summarize(sales, nil, idx, prods, time.Now(), time.Now())

	assert.True(t, s.CostOfGoodsSold.Equal(dec("5")), "100g × 0.05")
}

// Una línea que referencia un producto ya borrado aporta costo 0 pero la
// venta sigue sumando su total al ingreso (la pérdida es visible, no se
// reescribe la historia).
func TestSummarize_ReferenciaColgante(t *testing.T) {
	idx, prods := fixtures()

	sales := []*entity.Sale{
		venta("80", false, entity.CartLine{ItemID: "torta-borrada", Kind: entity.LineKindProduct, Quantity: dec("1")}),
	}
	s := reports.Summarize(sales, nil, idx, prods, time.Now(), time.Now())

	assert.True(t, s.Revenue.Equal(dec("80")))
	assert.True(t, s.CostOfGoodsSold.IsZero())
}
