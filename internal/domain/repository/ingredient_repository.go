package repository

import "github.com/tu-usuario/pos-cocina/internal/domain/entity"

// IngredientRepository define el puerto de persistencia para Ingredient y su
// libro de lotes (DIP). Los lectores devuelven el ingrediente con el historial
// completo en orden cronológico.
type IngredientRepository interface {
	Create(ing *entity.Ingredient) error
	GetByID(id string) (*entity.Ingredient, error)
	GetByName(name string) (*entity.Ingredient, error) // case-insensitive
	List() ([]*entity.Ingredient, error)
	Update(ing *entity.Ingredient) error // solo campos de cabecera, no toca lotes
	Delete(id string) error

	// AppendBatches agrega lotes al final del historial (orden de inserción).
	AppendBatches(ingredientID string, batches []entity.StockBatch) error
	// ReplaceBatches reemplaza el historial completo (solo aplicación de conteo).
	ReplaceBatches(ingredientID string, batches []entity.StockBatch) error

	// GetForUpdate bloquea la fila del ingrediente (SELECT FOR UPDATE) para
	// serializar mutaciones de un solo ingrediente (reposición, ajuste).
	GetForUpdate(id string) (*entity.Ingredient, error)
	// ListForUpdate carga todos los ingredientes bloqueando sus filas
	// (SELECT FOR UPDATE). Es el candado del contrato de serialización: una
	// venta o una aplicación de conteo son una sola sección crítica sobre el
	// conjunto de ingredientes.
	ListForUpdate() ([]*entity.Ingredient, error)
}
