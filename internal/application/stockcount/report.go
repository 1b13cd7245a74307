package stockcount

import (
	"context"

	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
)

// CountReportPDFGenerator es el puerto hacia el generador del informe de varianza.
type CountReportPDFGenerator interface {
	GenerateCountReportPDF(ctx context.Context, sc *entity.StockCount) ([]byte, error)
}

// ReportUseCase produce el informe imprimible de un conteo físico.
type ReportUseCase struct {
	countRepo repository.StockCountRepository
	pdfGen    CountReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(countRepo repository.StockCountRepository, pdfGen CountReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{countRepo: countRepo, pdfGen: pdfGen}
}

// ReportPDF genera el informe de varianza en PDF de un conteo.
func (uc *ReportUseCase) ReportPDF(ctx context.Context, id string) ([]byte, error) {
	sc, err := uc.countRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGen.GenerateCountReportPDF(ctx, sc)
}
