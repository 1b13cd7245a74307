package repository

import (
	"time"

	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas confirmadas.
// Una venta es inmutable: solo Create y lecturas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// ListByWindow devuelve las ventas con timestamp en [from, to], con líneas.
	ListByWindow(from, to time.Time) ([]*entity.Sale, error)
}

// KitchenOrderRepository define el puerto para comandas de cocina.
type KitchenOrderRepository interface {
	Create(order *entity.KitchenOrder) error
	GetByID(id string) (*entity.KitchenOrder, error)
	ListPending() ([]*entity.KitchenOrder, error)
	UpdateStatus(id, status string, updatedAt time.Time) error
}
