// Package ledger implementa el libro de lotes por ingrediente (servicio de
// dominio puro). Todas las funciones operan sobre snapshots inmutables: nunca
// mutan el ingrediente recibido, devuelven una copia con el cambio aplicado.
// El que llama es dueño de la persistencia del resultado, lo que hace al
// paquete trivial de probar y seguro desde cualquier contexto de concurrencia.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
)

// TotalStock devuelve la suma de cantidades de todos los lotes.
// Historial vacío = 0. No hay casos de error.
func TotalStock(ing *entity.Ingredient) decimal.Decimal {
	total := decimal.Zero
	for _, b := range ing.Batches {
		total = total.Add(b.Quantity)
	}
	return total
}

// AverageCost devuelve el costo promedio ponderado del ingrediente:
//
//	Σ(cantidad × costoUnitario) / Σ(cantidad)
//
// calculado sobre TODOS los lotes (positivos y negativos), es decir el costo
// base neto, no solo el de adquisiciones. Si el stock neto es <= 0 devuelve 0
// (protege la división por cero y el estado degenerado de stock negativo).
func AverageCost(ing *entity.Ingredient) decimal.Decimal {
	netQty := TotalStock(ing)
	if netQty.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	basis := decimal.Zero
	for _, b := range ing.Batches {
		basis = basis.Add(b.Quantity.Mul(b.UnitCost))
	}
	return basis.Div(netQty)
}

// AppendBatch devuelve una copia del ingrediente con un lote nuevo al final.
// quantity puede ser negativa (consumo) o positiva (adquisición); unitCost
// debe ser >= 0 o se rechaza con ErrInvalidInput sin efecto parcial.
func AppendBatch(ing *entity.Ingredient, quantity, unitCost decimal.Decimal, origin string, now time.Time) (*entity.Ingredient, error) {
	if unitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	out := clone(ing)
	out.Batches = append(out.Batches, entity.StockBatch{
		IngredientID: ing.ID,
		Timestamp:    now,
		Quantity:     quantity,
		UnitCost:     unitCost,
		Origin:       origin,
	})
	out.UpdatedAt = now
	return out, nil
}

// ResetHistory reemplaza el historial completo por un único lote sintético.
// Es la única operación autorizada a destruir historia y la usa exclusivamente
// la aplicación de un conteo físico: el costo base de los lotes anteriores se
// descarta a cambio de un punto de partida limpio con el último promedio.
func ResetHistory(ing *entity.Ingredient, newQuantity, unitCost decimal.Decimal, now time.Time) *entity.Ingredient {
	out := clone(ing)
	out.Batches = []entity.StockBatch{{
		IngredientID: ing.ID,
		Timestamp:    now,
		Quantity:     newQuantity,
		UnitCost:     unitCost,
		Origin:       entity.BatchOriginCountReset,
	}}
	out.UpdatedAt = now
	return out
}

// clone copia el ingrediente y su slice de lotes para no compartir backing array.
func clone(ing *entity.Ingredient) *entity.Ingredient {
	out := *ing
	out.Batches = make([]entity.StockBatch, len(ing.Batches))
	copy(out.Batches, ing.Batches)
	return &out
}
