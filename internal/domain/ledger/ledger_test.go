package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/ledger"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ingrediente de prueba con lotes (qty, costo) en orden cronológico.
func ingrediente(batches ...[2]string) *entity.Ingredient {
	ing := &entity.Ingredient{ID: "ing-1", Name: "Harina", Unit: "g"}
	for _, b := range batches {
		ing.Batches = append(ing.Batches, entity.StockBatch{
			IngredientID: ing.ID,
			Quantity:     dec(b[0]),
			UnitCost:     dec(b[1]),
			Origin:       entity.BatchOriginRestock,
		})
	}
	return ing
}

// Historial vacío: stock 0 y costo 0, sin casos de error.
func TestTotalStock_HistorialVacio(t *testing.T) {
	ing := ingrediente()
	assert.True(t, ledger.TotalStock(ing).IsZero(), "historial vacío debe dar stock 0")
	assert.True(t, ledger.AverageCost(ing).IsZero(), "historial vacío debe dar costo 0")
}

// El promedio es ponderado por cantidad, no el promedio simple de los costos.
func TestAverageCost_PromedioPonderado(t *testing.T) {
	ing := ingrediente([2]string{"100", "0.05"}, [2]string{"300", "0.09"})
	// (100*0.05 + 300*0.09) / 400 = 32/400 = 0.08
	assert.True(t, ledger.AverageCost(ing).Equal(dec("0.08")),
		"promedio ponderado esperado 0.08, fue %s", ledger.AverageCost(ing))
}

// Con stock neto <= 0 el promedio es 0 aunque existan costos en el historial
// (evita un costo promedio sin sentido en estado de stock negativo).
func TestAverageCost_StockNoPositivo_RetornaCero(t *testing.T) {
	ing := ingrediente([2]string{"100", "0.05"}, [2]string{"-100", "0.05"})
	assert.True(t, ledger.AverageCost(ing).IsZero(), "stock neto 0 debe dar costo 0")

	ing = ingrediente([2]string{"100", "0.05"}, [2]string{"-150", "0.05"})
	assert.True(t, ledger.TotalStock(ing).Equal(dec("-50")))
	assert.True(t, ledger.AverageCost(ing).IsZero(), "stock negativo debe dar costo 0")
}

// Propiedad: con stock > 0 el promedio queda dentro de [min, max] de los
// costos de los lotes positivos.
func TestAverageCost_DentroDeCotas(t *testing.T) {
	ing := ingrediente(
		[2]string{"500", "0.04"},
		[2]string{"200", "0.10"},
		[2]string{"-300", "0.0571428571428571"},
		[2]string{"100", "0.06"},
	)
	require.True(t, ledger.TotalStock(ing).GreaterThan(decimal.Zero))
	avg := ledger.AverageCost(ing)
	assert.True(t, avg.GreaterThanOrEqual(dec("0.04")), "promedio %s por debajo del mínimo", avg)
	assert.True(t, avg.LessThanOrEqual(dec("0.10")), "promedio %s por encima del máximo", avg)
}

// AppendBatch es puro: el ingrediente original no cambia.
func TestAppendBatch_NoMutaElOriginal(t *testing.T) {
	orig := ingrediente([2]string{"1000", "0.05"})
	now := time.Now()

	out, err := ledger.AppendBatch(orig, dec("-400"), dec("0.05"), entity.BatchOriginSale, now)
	require.NoError(t, err)

	assert.Len(t, orig.Batches, 1, "el original no debe mutar")
	assert.Len(t, out.Batches, 2)
	assert.True(t, ledger.TotalStock(orig).Equal(dec("1000")))
	assert.True(t, ledger.TotalStock(out).Equal(dec("600")))
	assert.Equal(t, entity.BatchOriginSale, out.Batches[1].Origin)
}

func TestAppendBatch_CostoNegativo_Rechazado(t *testing.T) {
	ing := ingrediente([2]string{"10", "1"})
	_, err := ledger.AppendBatch(ing, dec("5"), dec("-1"), entity.BatchOriginRestock, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unitCost negativo debe rechazarse sin efecto")
}

// Propiedad de conservación: vender y reponer la misma cantidad al mismo
// costo devuelve stock y promedio a sus valores previos.
func TestLedger_Conservacion(t *testing.T) {
	ing := ingrediente([2]string{"800", "0.05"}, [2]string{"200", "0.10"})
	now := time.Now()

	stockAntes := ledger.TotalStock(ing)
	costoAntes := ledger.AverageCost(ing)

	vendido, err := ledger.AppendBatch(ing, dec("-250"), costoAntes, entity.BatchOriginSale, now)
	require.NoError(t, err)
	repuesto, err := ledger.AppendBatch(vendido, dec("250"), costoAntes, entity.BatchOriginRestock, now)
	require.NoError(t, err)

	assert.True(t, ledger.TotalStock(repuesto).Equal(stockAntes),
		"el stock debe conservarse: antes %s, después %s", stockAntes, ledger.TotalStock(repuesto))
	assert.True(t, ledger.AverageCost(repuesto).Equal(costoAntes),
		"el promedio debe conservarse: antes %s, después %s", costoAntes, ledger.AverageCost(repuesto))
}

// ResetHistory colapsa todo el historial en un único lote sintético.
func TestResetHistory_ColapsaEnUnLote(t *testing.T) {
	ing := ingrediente([2]string{"1000", "0.05"}, [2]string{"-400", "0.05"})
	now := time.Now()

	out := ledger.ResetHistory(ing, dec("550"), dec("0.05"), now)

	require.Len(t, out.Batches, 1)
	assert.Equal(t, entity.BatchOriginCountReset, out.Batches[0].Origin)
	assert.True(t, ledger.TotalStock(out).Equal(dec("550")))
	assert.True(t, ledger.AverageCost(out).Equal(dec("0.05")))
	assert.Len(t, ing.Batches, 2, "el original conserva su historial")
}
