package sales

import (
	"context"
	"time"

	"github.com/tu-usuario/pos-cocina/internal/application/dto"
	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
)

// KitchenUseCase operaciones de la pantalla de cocina sobre comandas.
type KitchenUseCase struct {
	kitchenRepo repository.KitchenOrderRepository
}

// NewKitchenUseCase construye el caso de uso.
func NewKitchenUseCase(kitchenRepo repository.KitchenOrderRepository) *KitchenUseCase {
	return &KitchenUseCase{kitchenRepo: kitchenRepo}
}

// ListPending devuelve las comandas no entregadas, más viejas primero.
func (uc *KitchenUseCase) ListPending(ctx context.Context) ([]*dto.KitchenOrderResponse, error) {
	orders, err := uc.kitchenRepo.ListPending()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.KitchenOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toKitchenOrderResponse(o))
	}
	return out, nil
}

// UpdateStatus avanza la comanda PENDING → READY → DELIVERED. No admite
// retrocesos ni estados desconocidos.
func (uc *KitchenUseCase) UpdateStatus(ctx context.Context, id, status string) error {
	order, err := uc.kitchenRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if !validTransition(order.Status, status) {
		return domain.ErrConflict
	}
	return uc.kitchenRepo.UpdateStatus(id, status, time.Now())
}

func validTransition(from, to string) bool {
	switch from {
	case entity.KitchenStatusPending:
		return to == entity.KitchenStatusReady
	case entity.KitchenStatusReady:
		return to == entity.KitchenStatusDelivered
	}
	return false
}

func toKitchenOrderResponse(o *entity.KitchenOrder) *dto.KitchenOrderResponse {
	resp := &dto.KitchenOrderResponse{
		ID:        o.ID,
		SaleID:    o.SaleID,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, dto.KitchenOrderItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
		})
	}
	return resp
}
