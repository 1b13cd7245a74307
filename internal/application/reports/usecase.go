package reports

import (
	"context"
	"time"

	"github.com/tu-usuario/pos-cocina/internal/application/dto"
	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/recipe"
	"github.com/tu-usuario/pos-cocina/internal/domain/repository"
)

// UseCase genera los reportes de rentabilidad. Solo lecturas: ningún camino
// de este caso de uso muta el libro.
type UseCase struct {
	saleRepo repository.SaleRepository
	costRepo repository.CostRecordRepository
	ingRepo  repository.IngredientRepository
	prodRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	saleRepo repository.SaleRepository,
	costRepo repository.CostRecordRepository,
	ingRepo repository.IngredientRepository,
	prodRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{saleRepo: saleRepo, costRepo: costRepo, ingRepo: ingRepo, prodRepo: prodRepo}
}

// GetProfitSummary hace el rollup para una ventana arbitraria [from, to].
func (uc *UseCase) GetProfitSummary(ctx context.Context, from, to time.Time) (*dto.ProfitSummaryDTO, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}

	// Cuatro lecturas independientes en paralelo, como el resto de reportes.
	type salesRes struct {
		sales []*entity.Sale
		err   error
	}
	type costsRes struct {
		costs []*entity.CostRecord
		err   error
	}
	type ingsRes struct {
		ings []*entity.Ingredient
		err  error
	}
	type prodsRes struct {
		prods []*entity.Product
		err   error
	}
	salesCh := make(chan salesRes, 1)
	costsCh := make(chan costsRes, 1)
	ingsCh := make(chan ingsRes, 1)
	prodsCh := make(chan prodsRes, 1)

	go func() {
		s, err := uc.saleRepo.ListByWindow(from, to)
		salesCh <- salesRes{s, err}
	}()
	go func() {
		c, err := uc.costRepo.ListByWindow(from, to)
		costsCh <- costsRes{c, err}
	}()
	go func() {
		i, err := uc.ingRepo.List()
		ingsCh <- ingsRes{i, err}
	}()
	go func() {
		p, err := uc.prodRepo.List()
		prodsCh <- prodsRes{p, err}
	}()

	sr, cr, ir, pr := <-salesCh, <-costsCh, <-ingsCh, <-prodsCh
	for _, err := range []error{sr.err, cr.err, ir.err, pr.err} {
		if err != nil {
			return nil, err
		}
	}

	prods := make(map[string]*entity.Product, len(pr.prods))
	for _, p := range pr.prods {
		prods[p.ID] = p
	}
	summary := Summarize(sr.sales, cr.costs, recipe.NewIndex(ir.ings), prods, from, to)
	return &summary, nil
}

// GetDashboard devuelve el resumen de hoy y del mes en curso.
func (uc *UseCase) GetDashboard(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Hoy: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := uc.GetProfitSummary(ctx, todayStart, todayEnd)
	if err != nil {
		return nil, err
	}
	month, err := uc.GetProfitSummary(ctx, monthStart, todayEnd)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummaryDTO{Today: *today, Month: *month}, nil
}
