// Package reports contiene la agregación de costeo: ingresos, costo de lo
// vendido, costos operativos y utilidad sobre una ventana de fechas.
// Consumidor de solo lectura del libro y del resolutor de recetas.
package reports

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-cocina/internal/application/dto"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/ledger"
	"github.com/tu-usuario/pos-cocina/internal/domain/recipe"
)

// Summarize hace el rollup puro de una ventana:
//
//	revenue     = Σ total de ventas que NO son comida de empleado
//	cogs        = Σ costo unitario actual × cantidad, por línea de venta
//	grossProfit = revenue − cogs
//	netProfit   = grossProfit − costos operativos en la ventana
//
// El costo unitario de un PRODUCT es recipe.Cost contra el libro ACTUAL, no
// el de la fecha de venta: simplificación heredada y deliberada — el margen
// histórico se re-valora a costo de hoy para que los números cuadren con los
// reportes originales del negocio. Las comidas de empleado no suman ingreso
// pero sí costo (consumieron inventario real).
func Summarize(
	sales []*entity.Sale,
	costs []*entity.CostRecord,
	ingredients recipe.Index,
	products map[string]*entity.Product,
	from, to time.Time,
) dto.ProfitSummaryDTO {
	out := dto.ProfitSummaryDTO{From: from, To: to}

	for _, s := range sales {
		if s.IsEmployeeMeal {
			out.EmployeeMealCount++
		} else {
			out.Revenue = out.Revenue.Add(s.Total)
			out.SaleCount++
		}
		for _, line := range s.Lines {
			out.CostOfGoodsSold = out.CostOfGoodsSold.Add(lineCost(line, ingredients, products))
		}
	}

	for _, rec := range costs {
		out.OperatingCosts = out.OperatingCosts.Add(rec.Amount)
		if rec.Kind == entity.CostKindLabor {
			out.LaborCost = out.LaborCost.Add(rec.Amount)
		}
	}

	out.GrossProfit = out.Revenue.Sub(out.CostOfGoodsSold)
	out.NetProfit = out.GrossProfit.Sub(out.OperatingCosts)
	return out
}

// lineCost valora una línea al costo actual. Referencias colgantes aportan 0
// (la línea sigue visible en la venta, su costo ya no es reconstruible).
func lineCost(line entity.CartLine, ingredients recipe.Index, products map[string]*entity.Product) decimal.Decimal {
	switch line.Kind {
	case entity.LineKindProduct:
		p, ok := products[line.ItemID]
		if !ok {
			return decimal.Zero
		}
		return recipe.Cost(p.Recipe, ingredients).Mul(line.Quantity)
	case entity.LineKindIngredient:
		ing, ok := ingredients[line.ItemID]
		if !ok {
			return decimal.Zero
		}
		return ledger.AverageCost(ing).Mul(line.Quantity)
	}
	return decimal.Zero
}
