package inventory

import (
	"context"

	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción con repos atados a
// ella. Es quien materializa el contrato de serialización del motor: cada
// mutación del libro (reposición, ajuste, borrado con limpieza de recetas)
// corre como una sola sección crítica con las filas bloqueadas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ingRepo repository.IngredientRepository,
		productRepo repository.ProductRepository,
	) error) error
}
