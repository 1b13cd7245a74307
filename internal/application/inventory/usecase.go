// Package inventory contiene los casos de uso de gestión de ingredientes y
// su libro de lotes: creación, reposición, ajuste manual y borrado con
// limpieza ansiosa de recetas colgantes.
package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-cocina/internal/application/dto"
	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/ledger"
	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
)

// UseCase casos de uso de ingredientes.
type UseCase struct {
	txRunner TxRunner
	ingRepo  repository.IngredientRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, ingRepo repository.IngredientRepository) *UseCase {
	return &UseCase{txRunner: txRunner, ingRepo: ingRepo}
}

// Create valida y crea un ingrediente; si InitialStock > 0 abre el historial
// con un primer lote a InitialCost. Rechaza sin efecto parcial: nombre vacío,
// nombre duplicado (case-insensitive), stock inicial negativo o costo negativo.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Unit) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock.LessThan(decimal.Zero) || in.InitialCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.LowStockThreshold.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.ingRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	ing := &entity.Ingredient{
		ID:                uuid.New().String(),
		Name:              name,
		Unit:              strings.TrimSpace(in.Unit),
		SellPrice:         in.SellPrice,
		LowStockThreshold: in.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if in.InitialStock.GreaterThan(decimal.Zero) {
		withBatch, err := ledger.AppendBatch(ing, in.InitialStock, in.InitialCost, entity.BatchOriginInitial, now)
		if err != nil {
			return nil, err
		}
		ing = withBatch
	}
	if err := uc.ingRepo.Create(ing); err != nil {
		return nil, err
	}
	return toIngredientResponse(ing, true), nil
}

// List devuelve todos los ingredientes con stock y promedio derivados.
func (uc *UseCase) List(ctx context.Context) ([]*dto.IngredientResponse, error) {
	ings, err := uc.ingRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.IngredientResponse, 0, len(ings))
	for _, ing := range ings {
		out = append(out, toIngredientResponse(ing, false))
	}
	return out, nil
}

// GetByID devuelve un ingrediente con su historial de lotes completo.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.IngredientResponse, error) {
	ing, err := uc.ingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	return toIngredientResponse(ing, true), nil
}

// Update modifica la cabecera del ingrediente (nunca toca el historial).
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateIngredientRequest) (*dto.IngredientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || strings.TrimSpace(in.Unit) == "" || in.LowStockThreshold.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	ing, err := uc.ingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, domain.ErrNotFound
	}
	if !strings.EqualFold(ing.Name, name) {
		dup, err := uc.ingRepo.GetByName(name)
		if err != nil {
			return nil, err
		}
		if dup != nil {
			return nil, domain.ErrDuplicate
		}
	}
	ing.Name = name
	ing.Unit = strings.TrimSpace(in.Unit)
	ing.SellPrice = in.SellPrice
	ing.LowStockThreshold = in.LowStockThreshold
	ing.UpdatedAt = time.Now()
	if err := uc.ingRepo.Update(ing); err != nil {
		return nil, err
	}
	return toIngredientResponse(ing, false), nil
}

// Delete borra el ingrediente y, en la misma transacción, limpia los
// renglones de receta que lo referencian (las recetas no se rompen: el
// renglón colgante simplemente desaparece).
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		ingRepo repository.IngredientRepository,
		productRepo repository.ProductRepository,
	) error {
		ing, err := ingRepo.GetByID(id)
		if err != nil {
			return err
		}
		if ing == nil {
			return domain.ErrNotFound
		}
		if err := productRepo.StripIngredient(id); err != nil {
			return err
		}
		return ingRepo.Delete(id)
	})
}

// Restock agrega un lote positivo con el costo de compra. La fila del
// ingrediente queda bloqueada durante la transacción.
func (uc *UseCase) Restock(ctx context.Context, id string, in dto.RestockRequest) (*dto.IngredientResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) || in.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	return uc.appendBatchTx(ctx, id, in.Quantity, in.UnitCost, entity.BatchOriginRestock)
}

// AdjustStock aplica una corrección manual: delta con signo al costo indicado.
// Si el costo viene en cero se usa el promedio vigente, que es lo que un
// ajuste de merma debe registrar para no mover el costo base.
func (uc *UseCase) AdjustStock(ctx context.Context, id string, in dto.AdjustStockRequest) (*dto.IngredientResponse, error) {
	if in.Delta.IsZero() || in.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	return uc.appendBatchTx(ctx, id, in.Delta, in.UnitCost, entity.BatchOriginAdjustment)
}

func (uc *UseCase) appendBatchTx(ctx context.Context, id string, qty, unitCost decimal.Decimal, origin string) (*dto.IngredientResponse, error) {
	var out *dto.IngredientResponse
	err := uc.txRunner.Run(ctx, func(
		ingRepo repository.IngredientRepository,
		_ repository.ProductRepository,
	) error {
		ing, err := ingRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if ing == nil {
			return domain.ErrNotFound
		}
		cost := unitCost
		if cost.IsZero() && origin == entity.BatchOriginAdjustment {
			cost = ledger.AverageCost(ing)
		}
		updated, err := ledger.AppendBatch(ing, qty, cost, origin, time.Now())
		if err != nil {
			return err
		}
		newBatches := updated.Batches[len(ing.Batches):]
		if err := ingRepo.AppendBatches(id, newBatches); err != nil {
			return err
		}
		out = toIngredientResponse(updated, true)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// toIngredientResponse calcula los derivados desde el libro; el historial
// solo se incluye en lecturas de detalle.
func toIngredientResponse(ing *entity.Ingredient, withBatches bool) *dto.IngredientResponse {
	stock := ledger.TotalStock(ing)
	resp := &dto.IngredientResponse{
		ID:                ing.ID,
		Name:              ing.Name,
		Unit:              ing.Unit,
		SellPrice:         ing.SellPrice,
		LowStockThreshold: ing.LowStockThreshold,
		TotalStock:        stock,
		AverageCost:       ledger.AverageCost(ing),
		LowStock:          ing.LowStockThreshold.GreaterThan(decimal.Zero) && stock.LessThanOrEqual(ing.LowStockThreshold),
		CreatedAt:         ing.CreatedAt,
		UpdatedAt:         ing.UpdatedAt,
	}
	if withBatches {
		resp.Batches = make([]dto.StockBatchDTO, 0, len(ing.Batches))
		for _, b := range ing.Batches {
			resp.Batches = append(resp.Batches, dto.StockBatchDTO{
				Timestamp: b.Timestamp,
				Quantity:  b.Quantity,
				UnitCost:  b.UnitCost,
				Origin:    b.Origin,
			})
		}
	}
	return resp
}
