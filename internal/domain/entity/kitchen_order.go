package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una comanda de cocina.
const (
	KitchenStatusPending   = "PENDING"
	KitchenStatusReady     = "READY"
	KitchenStatusDelivered = "DELIVERED"
)

// KitchenOrderItem es un renglón de comanda (solo líneas de producto con receta).
type KitchenOrderItem struct {
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
}

// KitchenOrder es la comanda generada al confirmar una venta que incluye al
// menos un producto con receta. Las ventas solo de "extras" no generan comanda.
type KitchenOrder struct {
	ID        string
	SaleID    string
	Status    string
	Items     []KitchenOrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}
