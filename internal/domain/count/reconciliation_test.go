package count_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/count"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/ledger"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func harinaConHistorial() *entity.Ingredient {
	return &entity.Ingredient{
		ID: "harina", Name: "Harina", Unit: "g",
		Batches: []entity.StockBatch{
			{IngredientID: "harina", Quantity: dec("1000"), UnitCost: dec("0.05"), Origin: entity.BatchOriginInitial},
			{IngredientID: "harina", Quantity: dec("-400"), UnitCost: dec("0.05"), Origin: entity.BatchOriginSale},
		},
	}
}

// El borrador pre-llena esperado = totalStock y costo = averageCost, con el
// actual sin capturar.
func TestNewDraft_PrellenaEsperados(t *testing.T) {
	sc := count.NewDraft([]*entity.Ingredient{harinaConHistorial()}, "admin-1", time.Now())

	assert.Equal(t, entity.CountStatusDraft, sc.Status)
	require.Len(t, sc.Lines, 1)
	assert.True(t, sc.Lines[0].ExpectedStock.Equal(dec("600")))
	assert.True(t, sc.Lines[0].UnitCostAtCount.Equal(dec("0.05")))
	assert.Nil(t, sc.Lines[0].ActualStock, "el actual arranca sin capturar")
}

// Escenario de referencia: esperado 600, actual 550 a 0.05 → varianza -2.50.
// Aplicar reinicia Harina a un único lote {550, 0.05}.
func TestFinalizeYApply_EscenarioHarina(t *testing.T) {
	ing := harinaConHistorial()
	now := time.Now()

	sc := count.NewDraft([]*entity.Ingredient{ing}, "admin-1", now)
	sc, err := count.SetActual(sc, "harina", dec("550"))
	require.NoError(t, err)

	fin, err := count.Finalize(sc, now)
	require.NoError(t, err)
	assert.Equal(t, entity.CountStatusFinalized, fin.Status)
	assert.True(t, fin.TotalVarianceValue.Equal(dec("-2.5")),
		"varianza esperada -2.50, fue %s", fin.TotalVarianceValue)

	applied, updated, err := count.Apply(fin, []*entity.Ingredient{ing}, now)
	require.NoError(t, err)
	assert.Equal(t, entity.CountStatusApplied, applied.Status)
	require.Len(t, updated, 1)
	require.Len(t, updated[0].Batches, 1, "el historial colapsa en un solo lote")
	assert.True(t, ledger.TotalStock(updated[0]).Equal(dec("550")))
	assert.True(t, ledger.AverageCost(updated[0]).Equal(dec("0.05")))
}

// Un actual sin capturar se asume igual al esperado: varianza cero. "No se
// contó" nunca debe registrarse como una merma total.
func TestFinalize_ActualSinCapturar_VarianzaCero(t *testing.T) {
	sc := count.NewDraft([]*entity.Ingredient{harinaConHistorial()}, "admin-1", time.Now())

	fin, err := count.Finalize(sc, time.Now())
	require.NoError(t, err)

	require.NotNil(t, fin.Lines[0].ActualStock)
	assert.True(t, fin.Lines[0].ActualStock.Equal(dec("600")))
	assert.True(t, fin.TotalVarianceValue.IsZero())
}

// Idempotencia: actuales iguales a esperados dan varianza total 0 y aplicar
// deja stock y promedio de cada ingrediente exactamente como estaban.
func TestReconciliacion_Idempotencia(t *testing.T) {
	ing := harinaConHistorial()
	now := time.Now()

	sc := count.NewDraft([]*entity.Ingredient{ing}, "admin-1", now)
	sc, err := count.SetActual(sc, "harina", ledger.TotalStock(ing))
	require.NoError(t, err)

	fin, err := count.Finalize(sc, now)
	require.NoError(t, err)
	assert.True(t, fin.TotalVarianceValue.IsZero())

	_, updated, err := count.Apply(fin, []*entity.Ingredient{ing}, now)
	require.NoError(t, err)
	assert.True(t, ledger.TotalStock(updated[0]).Equal(ledger.TotalStock(ing)))
	assert.True(t, ledger.AverageCost(updated[0]).Equal(ledger.AverageCost(ing)))
}

// El registro finalizado es inmutable: no admite más capturas ni re-finalizar.
func TestFinalizado_EsInmutable(t *testing.T) {
	sc := count.NewDraft([]*entity.Ingredient{harinaConHistorial()}, "admin-1", time.Now())
	fin, err := count.Finalize(sc, time.Now())
	require.NoError(t, err)

	_, err = count.SetActual(fin, "harina", dec("1"))
	assert.ErrorIs(t, err, domain.ErrCountFinalized)
	_, err = count.Finalize(fin, time.Now())
	assert.ErrorIs(t, err, domain.ErrCountFinalized)
}

// Aplicar exige conteo finalizado (segunda confirmación explícita).
func TestApply_SinFinalizar_Falla(t *testing.T) {
	ing := harinaConHistorial()
	sc := count.NewDraft([]*entity.Ingredient{ing}, "admin-1", time.Now())

	_, _, err := count.Apply(sc, []*entity.Ingredient{ing}, time.Now())
	assert.ErrorIs(t, err, domain.ErrCountNotFinalized)
}

// Un ingrediente creado después de abrir el conteo no tiene renglón y se deja
// intacto al aplicar.
func TestApply_IngredienteSinRenglon_QuedaIntacto(t *testing.T) {
	ing := harinaConHistorial()
	nuevo := &entity.Ingredient{
		ID: "sal", Name: "Sal", Unit: "g",
		Batches: []entity.StockBatch{{IngredientID: "sal", Quantity: dec("100"), UnitCost: dec("0.01")}},
	}
	now := time.Now()

	sc := count.NewDraft([]*entity.Ingredient{ing}, "admin-1", now)
	fin, err := count.Finalize(sc, now)
	require.NoError(t, err)

	_, updated, err := count.Apply(fin, []*entity.Ingredient{ing, nuevo}, now)
	require.NoError(t, err)
	require.Len(t, updated, 1, "solo los contados se reinician")
	assert.Equal(t, "harina", updated[0].ID)
}
