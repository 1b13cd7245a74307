// Package usecase contiene los casos de uso de catálogo: productos con
// receta y empleados.
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-cocina/internal/application/dto"
	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/recipe"
	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
)

// ProductUseCase CRUD de productos. Toda respuesta lleva costo y stock
// vendible derivados del libro al momento de la lectura: jamás se persisten.
type ProductUseCase struct {
	prodRepo repository.ProductRepository
	ingRepo  repository.IngredientRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(prodRepo repository.ProductRepository, ingRepo repository.IngredientRepository) *ProductUseCase {
	return &ProductUseCase{prodRepo: prodRepo, ingRepo: ingRepo}
}

// Create valida y crea un producto con su receta.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.buildProduct(uuid.New().String(), in, time.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.prodRepo.Create(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p)
}

// GetByID devuelve un producto con sus derivados.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.prodRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(p)
}

// List devuelve el catálogo completo con derivados calculados contra un solo
// snapshot del libro (una lectura de ingredientes para toda la lista).
func (uc *ProductUseCase) List(ctx context.Context) ([]*dto.ProductResponse, error) {
	prods, err := uc.prodRepo.List()
	if err != nil {
		return nil, err
	}
	ings, err := uc.ingRepo.List()
	if err != nil {
		return nil, err
	}
	idx := recipe.NewIndex(ings)
	out := make([]*dto.ProductResponse, 0, len(prods))
	for _, p := range prods {
		out = append(out, toProductResponse(p, idx))
	}
	return out, nil
}

// Update reemplaza cabecera y receta completa del producto.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.prodRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	p, err := uc.buildProduct(id, in, time.Now())
	if err != nil {
		return nil, err
	}
	p.CreatedAt = existing.CreatedAt
	if err := uc.prodRepo.Update(p); err != nil {
		return nil, err
	}
	return uc.toResponse(p)
}

// Delete borra el producto. Las ventas pasadas conservan sus líneas: el
// reporte mostrará la referencia colgante con costo 0.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	p, err := uc.prodRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.prodRepo.Delete(id)
}

func (uc *ProductUseCase) buildProduct(id string, in dto.SaveProductRequest, now time.Time) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.SellPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	lines := make([]entity.RecipeLine, 0, len(in.Recipe))
	for _, rl := range in.Recipe {
		if rl.IngredientID == "" || !rl.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		lines = append(lines, entity.RecipeLine{IngredientID: rl.IngredientID, Quantity: rl.Quantity})
	}
	return &entity.Product{
		ID:        id,
		Name:      name,
		SellPrice: in.SellPrice,
		Recipe:    lines,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (uc *ProductUseCase) toResponse(p *entity.Product) (*dto.ProductResponse, error) {
	ings, err := uc.ingRepo.List()
	if err != nil {
		return nil, err
	}
	return toProductResponse(p, recipe.NewIndex(ings)), nil
}

func toProductResponse(p *entity.Product, idx recipe.Index) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SellPrice:     p.SellPrice,
		Cost:          recipe.Cost(p.Recipe, idx),
		SellableStock: recipe.SellableStock(p.Recipe, idx),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	for _, rl := range p.Recipe {
		resp.Recipe = append(resp.Recipe, dto.RecipeLineDTO{IngredientID: rl.IngredientID, Quantity: rl.Quantity})
	}
	return resp
}
