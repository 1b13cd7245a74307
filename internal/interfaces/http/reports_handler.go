package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-cocina/internal/application/dto"
	"github.com/tu-usuario/pos-cocina/internal/application/reports"
)

// ReportsHandler maneja los reportes de rentabilidad (protegido, solo admin).
type ReportsHandler struct {
	uc *reports.UseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.UseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// GetProfitSummary godoc
// @Summary      Resumen de rentabilidad para una ventana de fechas
// @Description  Ingreso (sin comidas de empleado), COGS al costo promedio
//
//	actual, costos operativos y utilidad neta.
//
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "fecha inicial (YYYY-MM-DD o RFC3339); default: hoy"
// @Param        to    query  string  false  "fecha final; default: ahora"
// @Success      200   {object}  dto.ProfitSummaryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/profit [get]
func (h *ReportsHandler) GetProfitSummary(c *fiber.Ctx) error {
	from, to, err := parseWindow(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fechas inválidas"})
	}
	out, err := h.uc.GetProfitSummary(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetDashboard godoc
// @Summary      Resumen del día y del mes en curso para la pantalla principal
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/reports/dashboard [get]
func (h *ReportsHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
