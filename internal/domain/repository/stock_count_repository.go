package repository

import "github.com/tu-usuario/pos-cocina/internal/domain/entity"

// StockCountRepository define el puerto de persistencia para conteos físicos.
// Update solo es legal mientras el conteo está en DRAFT (capturas de actuales)
// o para la transición de estado DRAFT→FINALIZED→APPLIED; los renglones de un
// conteo finalizado no cambian nunca.
type StockCountRepository interface {
	Create(sc *entity.StockCount) error
	GetByID(id string) (*entity.StockCount, error)
	List(limit, offset int) ([]*entity.StockCount, error)
	Update(sc *entity.StockCount) error
}
