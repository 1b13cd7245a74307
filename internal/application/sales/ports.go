package sales

import (
	"context"

	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
)

// SaleTxRunner ejecuta el cierre de una venta como una única transacción:
// las filas de todos los ingredientes quedan bloqueadas mientras se calculan
// y aplican los descuentos, se persiste la venta y se genera la comanda.
// O todo el efecto de la venta entra al libro o nada de él.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		ingRepo repository.IngredientRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		kitchenRepo repository.KitchenOrderRepository,
	) error) error
}
