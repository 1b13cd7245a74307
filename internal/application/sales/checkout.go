// Package sales contiene el caso de uso de cierre de venta (checkout de caja)
// y las operaciones de comanda de cocina sobre la venta confirmada.
package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-cocina/internal/application/dto"
	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
	domsale "github.com/tu-usuario/pos-cocina/internal/domain/sale"
	"github.com/tu-usuario/pos-cocina/pkg/logger"
)

// CheckoutUseCase confirma ventas: valida disponibilidad contra el snapshot
// bloqueado, aplica los descuentos del motor de consumo y persiste venta,
// lotes y comanda en una sola transacción.
type CheckoutUseCase struct {
	txRunner SaleTxRunner
	log      *logger.Logger
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(txRunner SaleTxRunner, log *logger.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{txRunner: txRunner, log: log}
}

// Checkout valida la intención, toma el candado sobre el conjunto de
// ingredientes y confirma la venta. AllowNegative omite la validación de
// disponibilidad (corrección administrativa); la confirmación en sí nunca
// re-valida, igual que el motor.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, userID string, in dto.CheckoutRequest) (*dto.SaleResponse, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	switch in.PaymentMode {
	case entity.PaymentModeCash, entity.PaymentModeCard, entity.PaymentModeTransfer:
	default:
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.Lines {
		if !l.Quantity.GreaterThan(decimal.Zero) || l.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if l.Kind != entity.LineKindProduct && l.Kind != entity.LineKindIngredient {
			return nil, domain.ErrInvalidInput
		}
	}

	var out *dto.SaleResponse
	err := uc.txRunner.RunSale(ctx, func(
		ingRepo repository.IngredientRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		kitchenRepo repository.KitchenOrderRepository,
	) error {
		// Candado del contrato de serialización: el conjunto completo de
		// ingredientes queda bloqueado durante toda la sección crítica.
		ingredients, err := ingRepo.ListForUpdate()
		if err != nil {
			return err
		}
		products, err := productRepo.List()
		if err != nil {
			return err
		}
		snap := domsale.NewSnapshot(ingredients, products)

		lines := uc.resolveLines(snap, in.Lines)
		if !in.AllowNegative {
			if err := domsale.Validate(snap, lines); err != nil {
				return err
			}
		}

		res, err := domsale.Commit(snap, domsale.Intent{
			Lines:          lines,
			PaymentMode:    in.PaymentMode,
			IsEmployeeMeal: in.IsEmployeeMeal,
			CreatedBy:      userID,
		}, time.Now())
		if err != nil {
			return err
		}

		// Cada descuento dejó exactamente un lote nuevo al final del historial.
		for _, ing := range res.UpdatedIngredients {
			last := ing.Batches[len(ing.Batches)-1:]
			if err := ingRepo.AppendBatches(ing.ID, last); err != nil {
				return err
			}
		}
		if err := saleRepo.Create(res.Sale); err != nil {
			return err
		}
		if res.KitchenOrder != nil {
			if err := kitchenRepo.Create(res.KitchenOrder); err != nil {
				return err
			}
		}
		out = toSaleResponse(res.Sale, res.KitchenOrder)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// resolveLines completa nombre y precio desde el catálogo vigente. Las
// referencias colgantes se dejan pasar (aportan cero al libro) pero se
// registran en warn para que la pérdida sea visible.
func (uc *CheckoutUseCase) resolveLines(snap domsale.Snapshot, in []dto.CartLineRequest) []entity.CartLine {
	lines := make([]entity.CartLine, 0, len(in))
	for _, l := range in {
		line := entity.CartLine{
			ItemID:    l.ItemID,
			Kind:      l.Kind,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		}
		switch l.Kind {
		case entity.LineKindProduct:
			if p, ok := snap.Products[l.ItemID]; ok {
				line.ItemName = p.Name
				if line.UnitPrice.IsZero() {
					line.UnitPrice = p.SellPrice
				}
			} else {
				uc.log.Warn().Str("item_id", l.ItemID).Msg("línea de venta referencia un producto inexistente")
			}
		case entity.LineKindIngredient:
			if ing, ok := snap.Ingredients[l.ItemID]; ok {
				line.ItemName = ing.Name
				if line.UnitPrice.IsZero() && ing.SellPrice != nil {
					line.UnitPrice = *ing.SellPrice
				}
			} else {
				uc.log.Warn().Str("item_id", l.ItemID).Msg("línea de venta referencia un ingrediente inexistente")
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func toSaleResponse(s *entity.Sale, ko *entity.KitchenOrder) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:             s.ID,
		Timestamp:      s.Timestamp,
		PaymentMode:    s.PaymentMode,
		IsEmployeeMeal: s.IsEmployeeMeal,
		Total:          s.Total,
	}
	for _, l := range s.Lines {
		resp.Lines = append(resp.Lines, dto.CartLineDTO{
			ItemID:    l.ItemID,
			Kind:      l.Kind,
			ItemName:  l.ItemName,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}
	if ko != nil {
		resp.KitchenOrderID = ko.ID
	}
	return resp
}
