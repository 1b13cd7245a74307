package timeclock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/pos-cocina/internal/application/timeclock"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// Turno de 8 horas con tarifa diaria 120: 8 × (120/12) = 80.
func TestLaborCost_TurnoNormal(t *testing.T) {
	in := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	out := in.Add(8 * time.Hour)

	cost := timeclock.LaborCost(in, out, dec("120"))
	assert.True(t, cost.Equal(dec("80")), "esperado 80, fue %s", cost)
}

// El pago se topa en 12 horas: un turno de 15h devenga igual que uno de 12h
// (la tarifa diaria completa).
func TestLaborCost_TurnoLargo_TopeDoceHoras(t *testing.T) {
	in := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	tarifa := dec("120")

	quince := timeclock.LaborCost(in, in.Add(15*time.Hour), tarifa)
	doce := timeclock.LaborCost(in, in.Add(12*time.Hour), tarifa)

	assert.True(t, quince.Equal(doce), "más de 12h no devenga extra")
	assert.True(t, doce.Equal(tarifa), "12 horas = tarifa diaria completa")
}

// Un clock-out anterior al clock-in (reloj corregido) no devenga negativo.
func TestLaborCost_DuracionNegativa_Cero(t *testing.T) {
	in := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	cost := timeclock.LaborCost(in, in.Add(-time.Hour), dec("120"))
	assert.True(t, cost.IsZero())
}
