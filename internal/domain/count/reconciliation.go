// Package count implementa la conciliación de conteos físicos contra el libro
// de lotes. Máquina de estados: DRAFT (actuales editables) → FINALIZED
// (registro inmutable) → opcionalmente APPLIED (reinicio del libro). Motor
// puro: recibe snapshots y devuelve valores nuevos.
package count

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/ledger"
)

// NewDraft abre un borrador de conteo con un renglón por ingrediente:
// esperado = totalStock, costo = averageCost, actual sin capturar.
func NewDraft(ingredients []*entity.Ingredient, createdBy string, now time.Time) *entity.StockCount {
	lines := make([]entity.StockCountLine, 0, len(ingredients))
	for _, ing := range ingredients {
		lines = append(lines, entity.StockCountLine{
			IngredientID:    ing.ID,
			IngredientName:  ing.Name,
			ExpectedStock:   ledger.TotalStock(ing),
			UnitCostAtCount: ledger.AverageCost(ing),
		})
	}
	return &entity.StockCount{
		ID:        uuid.New().String(),
		Status:    entity.CountStatusDraft,
		Lines:     lines,
		CreatedBy: createdBy,
		CreatedAt: now,
	}
}

// SetActual registra el conteo físico de un ingrediente en el borrador.
// Devuelve una copia; el borrador original no se toca. Falla con ErrConflict
// si el conteo ya no está en borrador y con ErrNotFound si el ingrediente no
// tiene renglón.
func SetActual(sc *entity.StockCount, ingredientID string, actual decimal.Decimal) (*entity.StockCount, error) {
	if sc.Status != entity.CountStatusDraft {
		return nil, domain.ErrCountFinalized
	}
	out := clone(sc)
	for i := range out.Lines {
		if out.Lines[i].IngredientID == ingredientID {
			v := actual
			out.Lines[i].ActualStock = &v
			return out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Finalize cierra el conteo: los actuales sin capturar se asumen iguales al
// esperado (varianza cero por defecto), se fija la varianza por renglón y
//
//	totalVarianceValue = Σ (actual − esperado) × costoAlContar.
//
// El resultado es el registro permanente de auditoría y no se edita después.
func Finalize(sc *entity.StockCount, now time.Time) (*entity.StockCount, error) {
	if sc.Status != entity.CountStatusDraft {
		return nil, domain.ErrCountFinalized
	}
	out := clone(sc)
	total := decimal.Zero
	for i := range out.Lines {
		line := &out.Lines[i]
		if line.ActualStock == nil {
			v := line.ExpectedStock
			line.ActualStock = &v
		}
		line.VarianceValue = line.ActualStock.Sub(line.ExpectedStock).Mul(line.UnitCostAtCount)
		total = total.Add(line.VarianceValue)
	}
	out.TotalVarianceValue = total
	out.Status = entity.CountStatusFinalized
	out.FinalizedAt = &now
	return out, nil
}

// Apply colapsa el historial de cada ingrediente contado en un único lote con
// el actual contado y el promedio conocido al contar. Operación de pérdida de
// información deliberada (se cambia granularidad de lotes por un punto de
// partida limpio); requiere conteo finalizado y confirmación explícita.
// No aplicar también es válido: el conteo queda como registro informativo.
func Apply(sc *entity.StockCount, ingredients []*entity.Ingredient, now time.Time) (*entity.StockCount, []*entity.Ingredient, error) {
	if sc.Status != entity.CountStatusFinalized {
		return nil, nil, domain.ErrCountNotFinalized
	}
	byID := make(map[string]entity.StockCountLine, len(sc.Lines))
	for _, l := range sc.Lines {
		byID[l.IngredientID] = l
	}
	updated := make([]*entity.Ingredient, 0, len(ingredients))
	for _, ing := range ingredients {
		line, ok := byID[ing.ID]
		if !ok {
			continue // ingrediente creado después de abrir el conteo: se deja intacto
		}
		updated = append(updated, ledger.ResetHistory(ing, *line.ActualStock, line.UnitCostAtCount, now))
	}
	out := clone(sc)
	out.Status = entity.CountStatusApplied
	out.AppliedAt = &now
	return out, updated, nil
}

func clone(sc *entity.StockCount) *entity.StockCount {
	out := *sc
	out.Lines = make([]entity.StockCountLine, len(sc.Lines))
	copy(out.Lines, sc.Lines)
	for i := range out.Lines {
		if sc.Lines[i].ActualStock != nil {
			v := *sc.Lines[i].ActualStock
			out.Lines[i].ActualStock = &v
		}
	}
	return &out
}
