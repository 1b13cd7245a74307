package sales

import (
	"context"

	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
)

// ReceiptPDFGenerator es el puerto hacia el generador de tirillas.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale) ([]byte, error)
}

// ReceiptUseCase lee ventas confirmadas y produce su tirilla imprimible.
type ReceiptUseCase struct {
	saleRepo repository.SaleRepository
	pdfGen   ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(saleRepo repository.SaleRepository, pdfGen ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, pdfGen: pdfGen}
}

// GetSale devuelve una venta confirmada por id.
func (uc *ReceiptUseCase) GetSale(ctx context.Context, id string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

// ReceiptPDF genera la tirilla en PDF de una venta.
func (uc *ReceiptUseCase) ReceiptPDF(ctx context.Context, id string) ([]byte, error) {
	sale, err := uc.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateReceiptPDF(ctx, sale)
}
