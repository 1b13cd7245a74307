package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitSummaryDTO resumen de rentabilidad para una ventana de fechas.
// El COGS se re-valora al costo promedio ACTUAL (simplificación heredada:
// los reportes históricos usan el costo de hoy, no el de la venta).
type ProfitSummaryDTO struct {
	From             time.Time       `json:"from"`
	To               time.Time       `json:"to"`
	Revenue          decimal.Decimal `json:"revenue"`            // ventas sin comidas de empleado
	CostOfGoodsSold  decimal.Decimal `json:"cost_of_goods_sold"` // a costo promedio actual
	GrossProfit      decimal.Decimal `json:"gross_profit"`
	OperatingCosts   decimal.Decimal `json:"operating_costs"` // MISC + LABOR en la ventana
	LaborCost        decimal.Decimal `json:"labor_cost"`      // subtotal LABOR
	NetProfit        decimal.Decimal `json:"net_profit"`
	SaleCount        int             `json:"sale_count"`
	EmployeeMealCount int            `json:"employee_meal_count"`
}

// DashboardSummaryDTO resumen para la pantalla principal: hoy y mes en curso.
type DashboardSummaryDTO struct {
	Today ProfitSummaryDTO `json:"today"`
	Month ProfitSummaryDTO `json:"month"`
}
