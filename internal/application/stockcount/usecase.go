// Package stockcount contiene los casos de uso de conteo físico: borrador,
// captura de actuales, finalización (registro de auditoría) y aplicación
// opcional (reinicio del libro).
package stockcount

import (
	"context"
	"time"

	"github.com/tu-usuario/pos-cocina/internal/application/dto"
	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/count"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
)

// CountTxRunner corre la aplicación de un conteo como una sola transacción
// con las filas de ingredientes bloqueadas: aplicar y una venta concurrente
// jamás se entrelazan sobre el mismo ingrediente.
type CountTxRunner interface {
	RunCount(ctx context.Context, fn func(
		ingRepo repository.IngredientRepository,
		countRepo repository.StockCountRepository,
	) error) error
}

// UseCase casos de uso de conteos físicos.
type UseCase struct {
	txRunner  CountTxRunner
	ingRepo   repository.IngredientRepository
	countRepo repository.StockCountRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner CountTxRunner, ingRepo repository.IngredientRepository, countRepo repository.StockCountRepository) *UseCase {
	return &UseCase{txRunner: txRunner, ingRepo: ingRepo, countRepo: countRepo}
}

// CreateDraft abre un borrador con un renglón por ingrediente, esperado y
// costo pre-llenados desde el libro.
func (uc *UseCase) CreateDraft(ctx context.Context, createdBy string) (*dto.StockCountResponse, error) {
	ingredients, err := uc.ingRepo.List()
	if err != nil {
		return nil, err
	}
	sc := count.NewDraft(ingredients, createdBy, time.Now())
	if err := uc.countRepo.Create(sc); err != nil {
		return nil, err
	}
	return toStockCountResponse(sc), nil
}

// GetByID devuelve un conteo con sus renglones.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.StockCountResponse, error) {
	sc, err := uc.countRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, domain.ErrNotFound
	}
	return toStockCountResponse(sc), nil
}

// List devuelve el historial de conteos, más recientes primero.
func (uc *UseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.StockCountResponse, error) {
	page.DefaultPage()
	counts, err := uc.countRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.StockCountResponse, 0, len(counts))
	for _, sc := range counts {
		out = append(out, toStockCountResponse(sc))
	}
	return out, nil
}

// SetActual captura el conteo físico de un ingrediente en el borrador.
func (uc *UseCase) SetActual(ctx context.Context, id, ingredientID string, in dto.SetActualRequest) (*dto.StockCountResponse, error) {
	sc, err := uc.countRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, domain.ErrNotFound
	}
	updated, err := count.SetActual(sc, ingredientID, in.ActualStock)
	if err != nil {
		return nil, err
	}
	if err := uc.countRepo.Update(updated); err != nil {
		return nil, err
	}
	return toStockCountResponse(updated), nil
}

// Finalize cierra el conteo y lo vuelve el registro inmutable de auditoría.
func (uc *UseCase) Finalize(ctx context.Context, id string) (*dto.StockCountResponse, error) {
	sc, err := uc.countRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, domain.ErrNotFound
	}
	fin, err := count.Finalize(sc, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.countRepo.Update(fin); err != nil {
		return nil, err
	}
	return toStockCountResponse(fin), nil
}

// Apply reinicia el libro de cada ingrediente contado al actual contado con
// el promedio conocido al contar. Segunda confirmación explícita: exige el
// conteo ya finalizado y corre con todas las filas bloqueadas.
func (uc *UseCase) Apply(ctx context.Context, id string) (*dto.StockCountResponse, error) {
	var out *dto.StockCountResponse
	err := uc.txRunner.RunCount(ctx, func(
		ingRepo repository.IngredientRepository,
		countRepo repository.StockCountRepository,
	) error {
		sc, err := countRepo.GetByID(id)
		if err != nil {
			return err
		}
		if sc == nil {
			return domain.ErrNotFound
		}
		ingredients, err := ingRepo.ListForUpdate()
		if err != nil {
			return err
		}
		applied, updated, err := count.Apply(sc, ingredients, time.Now())
		if err != nil {
			return err
		}
		for _, ing := range updated {
			if err := ingRepo.ReplaceBatches(ing.ID, ing.Batches); err != nil {
				return err
			}
		}
		if err := countRepo.Update(applied); err != nil {
			return err
		}
		out = toStockCountResponse(applied)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toStockCountResponse(sc *entity.StockCount) *dto.StockCountResponse {
	resp := &dto.StockCountResponse{
		ID:                 sc.ID,
		Status:             sc.Status,
		TotalVarianceValue: sc.TotalVarianceValue,
		CreatedAt:          sc.CreatedAt,
		FinalizedAt:        sc.FinalizedAt,
		AppliedAt:          sc.AppliedAt,
	}
	for _, l := range sc.Lines {
		resp.Lines = append(resp.Lines, dto.StockCountLineDTO{
			IngredientID:    l.IngredientID,
			IngredientName:  l.IngredientName,
			ExpectedStock:   l.ExpectedStock,
			ActualStock:     l.ActualStock,
			UnitCostAtCount: l.UnitCostAtCount,
			VarianceValue:   l.VarianceValue,
		})
	}
	return resp
}
