package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLineRequest una línea del carrito en el checkout.
type CartLineRequest struct {
	ItemID    string          `json:"item_id" validate:"required"`
	Kind      string          `json:"kind" validate:"required,oneof=PRODUCT INGREDIENT"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

// CheckoutRequest body para POST /api/sales/checkout.
// AllowNegative permite a un admin confirmar sin validación de disponibilidad
// (corrección administrativa: el libro puede quedar en negativo a propósito).
type CheckoutRequest struct {
	Lines          []CartLineRequest `json:"lines" validate:"required,min=1"`
	PaymentMode    string            `json:"payment_mode" validate:"required,oneof=CASH CARD TRANSFER"`
	IsEmployeeMeal bool              `json:"is_employee_meal"`
	AllowNegative  bool              `json:"allow_negative"`
}

// CartLineDTO una línea de venta en respuestas.
type CartLineDTO struct {
	ItemID    string          `json:"item_id"`
	Kind      string          `json:"kind"`
	ItemName  string          `json:"item_name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// SaleResponse salida de una venta confirmada.
type SaleResponse struct {
	ID             string          `json:"id"`
	Timestamp      time.Time       `json:"timestamp"`
	Lines          []CartLineDTO   `json:"lines"`
	PaymentMode    string          `json:"payment_mode"`
	IsEmployeeMeal bool            `json:"is_employee_meal"`
	Total          decimal.Decimal `json:"total"`
	KitchenOrderID string          `json:"kitchen_order_id,omitempty"`
}

// KitchenOrderItemDTO renglón de comanda.
type KitchenOrderItemDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// KitchenOrderResponse salida de una comanda de cocina.
type KitchenOrderResponse struct {
	ID        string                `json:"id"`
	SaleID    string                `json:"sale_id"`
	Status    string                `json:"status"`
	Items     []KitchenOrderItemDTO `json:"items"`
	CreatedAt time.Time             `json:"created_at"`
}
