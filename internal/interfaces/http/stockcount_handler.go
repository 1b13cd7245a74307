package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-cocina/internal/application/dto"
	"github.com/tu-usuario/pos-cocina/internal/application/stockcount"
	"github.com/tu-usuario/pos-cocina/internal/domain"
)

// StockCountHandler maneja los conteos físicos de inventario (protegido).
type StockCountHandler struct {
	uc     *stockcount.UseCase
	report *stockcount.ReportUseCase
}

// NewStockCountHandler construye el handler.
func NewStockCountHandler(uc *stockcount.UseCase, report *stockcount.ReportUseCase) *StockCountHandler {
	return &StockCountHandler{uc: uc, report: report}
}

// CreateDraft godoc
// @Summary      Abrir borrador de conteo (un renglón por ingrediente)
// @Tags         stock-counts
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.StockCountResponse
// @Router       /api/stock-counts [post]
func (h *StockCountHandler) CreateDraft(c *fiber.Ctx) error {
	out, err := h.uc.CreateDraft(c.Context(), GetUserID(c))
	if err != nil {
		return countError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar conteos (paginado, más recientes primero)
// @Tags         stock-counts
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máximo por página (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.StockCountResponse
// @Router       /api/stock-counts [get]
func (h *StockCountHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.List(c.Context(), page)
	if err != nil {
		return countError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener conteo por id
// @Tags         stock-counts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "UUID del conteo"
// @Success      200  {object}  dto.StockCountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-counts/{id} [get]
func (h *StockCountHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return countError(c, err)
	}
	return c.JSON(out)
}

// SetActual godoc
// @Summary      Capturar el conteo físico de un ingrediente (solo DRAFT)
// @Tags         stock-counts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id            path  string  true  "UUID del conteo"
// @Param        ingredientId  path  string  true  "UUID del ingrediente"
// @Param        body          body  dto.SetActualRequest  true  "actual_stock"
// @Success      200   {object}  dto.StockCountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-counts/{id}/lines/{ingredientId} [patch]
func (h *StockCountHandler) SetActual(c *fiber.Ctx) error {
	var in dto.SetActualRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetActual(c.Context(), c.Params("id"), c.Params("ingredientId"), in)
	if err != nil {
		return countError(c, err)
	}
	return c.JSON(out)
}

// Finalize godoc
// @Summary      Finalizar el conteo (fija varianzas; actuales sin capturar = esperado)
// @Tags         stock-counts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "UUID del conteo"
// @Success      200  {object}  dto.StockCountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock-counts/{id}/finalize [post]
func (h *StockCountHandler) Finalize(c *fiber.Ctx) error {
	out, err := h.uc.Finalize(c.Context(), c.Params("id"))
	if err != nil {
		return countError(c, err)
	}
	return c.JSON(out)
}

// Apply godoc
// @Summary      Aplicar el conteo al libro (reinicia historiales a un lote COUNT_RESET)
// @Tags         stock-counts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "UUID del conteo"
// @Success      200  {object}  dto.StockCountResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stock-counts/{id}/apply [post]
func (h *StockCountHandler) Apply(c *fiber.Ctx) error {
	out, err := h.uc.Apply(c.Context(), c.Params("id"))
	if err != nil {
		return countError(c, err)
	}
	return c.JSON(out)
}

// GetReportPDF godoc
// @Summary      Informe de varianza del conteo en PDF
// @Tags         stock-counts
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "UUID del conteo"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-counts/{id}/report [get]
func (h *StockCountHandler) GetReportPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.report.ReportPDF(c.Context(), c.Params("id"))
	if err != nil {
		return countError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `inline; filename="conteo.pdf"`)
	return c.Send(pdfBytes)
}

// countError mapea los sentinelas de conteo a estados HTTP.
func countError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conteo o ingrediente no encontrado"})
	case errors.Is(err, domain.ErrCountFinalized):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "COUNT_FINALIZED", Message: "el conteo ya no es editable"})
	case errors.Is(err, domain.ErrCountNotFinalized):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "COUNT_NOT_FINALIZED", Message: "el conteo debe finalizarse antes de aplicarse"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
