package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de línea de carrito.
const (
	LineKindProduct    = "PRODUCT"    // producto con receta
	LineKindIngredient = "INGREDIENT" // venta directa de ingrediente ("extra")
)

// Modos de pago aceptados en caja.
const (
	PaymentModeCash     = "CASH"
	PaymentModeCard     = "CARD"
	PaymentModeTransfer = "TRANSFER"
)

// CartLine es una línea del carrito al momento de la venta.
// ItemName se copia al confirmar para que el registro de auditoría sobreviva
// al borrado del producto o ingrediente referenciado.
type CartLine struct {
	ItemID    string
	Kind      string // PRODUCT | INGREDIENT
	ItemName  string
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
}

// Sale es una venta confirmada: inmutable una vez registrada.
// Las líneas se conservan tal cual se recibieron aunque referencien ids ya
// inexistentes (la pérdida queda visible en reportes, no se borra de la
// historia).
type Sale struct {
	ID             string
	Timestamp      time.Time
	Lines          []CartLine
	PaymentMode    string
	IsEmployeeMeal bool // comida de empleado: excluida del ingreso en reportes
	Total          decimal.Decimal
	CreatedBy      string
	CreatedAt      time.Time
}
