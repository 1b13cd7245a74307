package repository

import "github.com/tu-usuario/pos-cocina/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product y su receta.
// El costo y el stock vendible jamás se persisten: se derivan al leer.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error // cabecera + receta completa
	Delete(id string) error

	// StripIngredient elimina los renglones de receta que referencian al
	// ingrediente (limpieza ansiosa de referencias colgantes al borrarlo).
	StripIngredient(ingredientID string) error
}
