package sale_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/ledger"
	"github.com/tu-usuario/pos-cocina/internal/domain/recipe"
	"github.com/tu-usuario/pos-cocina/internal/domain/sale"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func harina(qty, cost string) *entity.Ingredient {
	return &entity.Ingredient{
		ID: "harina", Name: "Harina", Unit: "g",
		Batches: []entity.StockBatch{
			{IngredientID: "harina", Quantity: dec(qty), UnitCost: dec(cost), Origin: entity.BatchOriginInitial},
		},
	}
}

func pan() *entity.Product {
	return &entity.Product{
		ID: "pan", Name: "Pan", SellPrice: dec("60"),
		Recipe: []entity.RecipeLine{{IngredientID: "harina", Quantity: dec("200")}},
	}
}

// Escenario de referencia: vender 2 panes descuenta 400g de harina a 0.05.
// Resultado: stock 600, promedio intacto en 0.05, vendible de Pan baja a 3.
func TestCommit_EscenarioPan(t *testing.T) {
	snap := sale.NewSnapshot([]*entity.Ingredient{harina("1000", "0.05")}, []*entity.Product{pan()})
	intent := sale.Intent{
		Lines: []entity.CartLine{
			{ItemID: "pan", Kind: entity.LineKindProduct, ItemName: "Pan", UnitPrice: dec("60"), Quantity: dec("2")},
		},
		PaymentMode: entity.PaymentModeCash,
		CreatedBy:   "cajero-1",
	}

	require.NoError(t, sale.Validate(snap, intent.Lines))
	res, err := sale.Commit(snap, intent, time.Now())
	require.NoError(t, err)

	require.Len(t, res.UpdatedIngredients, 1)
	h := res.UpdatedIngredients[0]
	assert.True(t, ledger.TotalStock(h).Equal(dec("600")), "stock esperado 600, fue %s", ledger.TotalStock(h))
	assert.True(t, ledger.AverageCost(h).Equal(dec("0.05")),
		"el lote de consumo usa el mismo promedio, el costo no debe moverse")

	idx := recipe.NewIndex(res.UpdatedIngredients)
	assert.EqualValues(t, 3, recipe.SellableStock(pan().Recipe, idx))

	assert.True(t, res.Sale.Total.Equal(dec("120")))
	require.Len(t, res.Deductions, 1)
	assert.True(t, res.Deductions[0].Quantity.Equal(dec("400")))
	assert.True(t, res.Deductions[0].UnitCost.Equal(dec("0.05")))
}

// Atomicidad con insumo compartido: dos productos que llevan harina generan
// UN solo descuento con la cantidad combinada, aplicado exactamente una vez.
func TestCommit_IngredienteCompartido_DescuentoCombinado(t *testing.T) {
	galleta := &entity.Product{
		ID: "galleta", Name: "Galleta", SellPrice: dec("20"),
		Recipe: []entity.RecipeLine{{IngredientID: "harina", Quantity: dec("50")}},
	}
	snap := sale.NewSnapshot([]*entity.Ingredient{harina("1000", "0.05")}, []*entity.Product{pan(), galleta})
	intent := sale.Intent{
		Lines: []entity.CartLine{
			{ItemID: "pan", Kind: entity.LineKindProduct, UnitPrice: dec("60"), Quantity: dec("1")},
			{ItemID: "galleta", Kind: entity.LineKindProduct, UnitPrice: dec("20"), Quantity: dec("4")},
		},
	}

	res, err := sale.Commit(snap, intent, time.Now())
	require.NoError(t, err)

	require.Len(t, res.Deductions, 1, "los descuentos sobre el mismo insumo deben fusionarse")
	assert.True(t, res.Deductions[0].Quantity.Equal(dec("400")), "200 + 4*50 = 400")

	h := res.UpdatedIngredients[0]
	require.Len(t, h.Batches, 2, "un solo lote de consumo para toda la venta")
	assert.True(t, ledger.TotalStock(h).Equal(dec("600")))
}

// El costo de consumo se captura del snapshot al inicio de la venta: aunque
// la venta misma mueva el stock, todos los descuentos se valoran contra el
// promedio previo (sin deriva intra-venta).
func TestCommit_CostoCapturadoAlInicioDeLaVenta(t *testing.T) {
	ing := harina("1000", "0.05")
	snap := sale.NewSnapshot([]*entity.Ingredient{ing}, []*entity.Product{pan()})
	costoInicial := ledger.AverageCost(ing)

	intent := sale.Intent{
		Lines: []entity.CartLine{
			{ItemID: "pan", Kind: entity.LineKindProduct, UnitPrice: dec("60"), Quantity: dec("2")},
			{ItemID: "harina", Kind: entity.LineKindIngredient, UnitPrice: dec("1"), Quantity: dec("100")},
		},
	}
	res, err := sale.Commit(snap, intent, time.Now())
	require.NoError(t, err)

	for _, d := range res.Deductions {
		assert.True(t, d.UnitCost.Equal(costoInicial),
			"todo descuento de la venta se valora al promedio de inicio")
	}
}

// Venta directa de ingrediente ("extra"): lote negativo por la cantidad al
// promedio vigente; no genera comanda de cocina.
func TestCommit_VentaDirectaDeIngrediente(t *testing.T) {
	snap := sale.NewSnapshot([]*entity.Ingredient{harina("1000", "0.05")}, nil)
	intent := sale.Intent{
		Lines: []entity.CartLine{
			{ItemID: "harina", Kind: entity.LineKindIngredient, ItemName: "Harina", UnitPrice: dec("0.10"), Quantity: dec("250")},
		},
	}

	res, err := sale.Commit(snap, intent, time.Now())
	require.NoError(t, err)

	assert.True(t, ledger.TotalStock(res.UpdatedIngredients[0]).Equal(dec("750")))
	assert.Nil(t, res.KitchenOrder, "los extras no van a cocina")
}

// Id desconocido: la línea no aporta al libro pero la venta la conserva tal
// cual para auditoría (la pérdida queda visible en reportes, no se borra).
func TestCommit_IdDesconocido_SeConservaEnLaVenta(t *testing.T) {
	snap := sale.NewSnapshot([]*entity.Ingredient{harina("1000", "0.05")}, []*entity.Product{pan()})
	intent := sale.Intent{
		Lines: []entity.CartLine{
			{ItemID: "producto-borrado", Kind: entity.LineKindProduct, ItemName: "Torta", UnitPrice: dec("80"), Quantity: dec("1")},
		},
	}

	res, err := sale.Commit(snap, intent, time.Now())
	require.NoError(t, err)

	assert.Empty(t, res.UpdatedIngredients, "la referencia colgante no toca el libro")
	require.Len(t, res.Sale.Lines, 1)
	assert.Equal(t, "producto-borrado", res.Sale.Lines[0].ItemID)
	assert.Equal(t, "Torta", res.Sale.Lines[0].ItemName)
}

// La validación es previa al commit y revisa el descuento combinado.
func TestValidate_StockInsuficiente(t *testing.T) {
	snap := sale.NewSnapshot([]*entity.Ingredient{harina("300", "0.05")}, []*entity.Product{pan()})

	// 1 pan (200g) pasa solo; 2 panes (400g) no.
	ok := []entity.CartLine{{ItemID: "pan", Kind: entity.LineKindProduct, Quantity: dec("1")}}
	assert.NoError(t, sale.Validate(snap, ok))

	exceso := []entity.CartLine{{ItemID: "pan", Kind: entity.LineKindProduct, Quantity: dec("2")}}
	assert.ErrorIs(t, sale.Validate(snap, exceso), domain.ErrInsufficientStock)
}

// Commit no re-valida: un llamador administrativo puede dejar stock negativo
// a propósito (el libro representa discrepancias, no las prohíbe).
func TestCommit_SinValidacion_PermiteStockNegativo(t *testing.T) {
	snap := sale.NewSnapshot([]*entity.Ingredient{harina("100", "0.05")}, []*entity.Product{pan()})
	intent := sale.Intent{
		Lines: []entity.CartLine{{ItemID: "pan", Kind: entity.LineKindProduct, Quantity: dec("1")}},
	}

	res, err := sale.Commit(snap, intent, time.Now())
	require.NoError(t, err)
	assert.True(t, ledger.TotalStock(res.UpdatedIngredients[0]).Equal(dec("-100")))
}

// Una venta con al menos un producto con receta genera comanda de cocina.
func TestCommit_GeneraComanda(t *testing.T) {
	snap := sale.NewSnapshot([]*entity.Ingredient{harina("1000", "0.05")}, []*entity.Product{pan()})
	intent := sale.Intent{
		Lines: []entity.CartLine{
			{ItemID: "pan", Kind: entity.LineKindProduct, ItemName: "Pan", UnitPrice: dec("60"), Quantity: dec("2")},
			{ItemID: "harina", Kind: entity.LineKindIngredient, UnitPrice: dec("0.10"), Quantity: dec("50")},
		},
	}

	res, err := sale.Commit(snap, intent, time.Now())
	require.NoError(t, err)

	require.NotNil(t, res.KitchenOrder)
	assert.Equal(t, entity.KitchenStatusPending, res.KitchenOrder.Status)
	assert.Equal(t, res.Sale.ID, res.KitchenOrder.SaleID)
	require.Len(t, res.KitchenOrder.Items, 1, "los extras no entran a la comanda")
	assert.Equal(t, "Pan", res.KitchenOrder.Items[0].ProductName)
}
