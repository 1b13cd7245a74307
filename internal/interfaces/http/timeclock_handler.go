package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-cocina/internal/application/dto"
	"github.com/tu-usuario/pos-cocina/internal/application/timeclock"
	"github.com/tu-usuario/pos-cocina/internal/domain"
)

// TimeclockHandler maneja el reloj de turnos y los costos operativos (protegido).
type TimeclockHandler struct {
	uc *timeclock.UseCase
}

// NewTimeclockHandler construye el handler.
func NewTimeclockHandler(uc *timeclock.UseCase) *TimeclockHandler {
	return &TimeclockHandler{uc: uc}
}

// ClockIn godoc
// @Summary      Abrir turno del usuario autenticado
// @Tags         timeclock
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.ShiftResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shifts/clock-in [post]
func (h *TimeclockHandler) ClockIn(c *fiber.Ctx) error {
	out, err := h.uc.ClockIn(c.Context(), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrShiftAlreadyOpen) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SHIFT_OPEN", Message: "ya hay un turno abierto"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleado no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ClockOut godoc
// @Summary      Cerrar turno y devengar el costo laboral
// @Tags         timeclock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ShiftResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/shifts/clock-out [post]
func (h *TimeclockHandler) ClockOut(c *fiber.Ctx) error {
	out, err := h.uc.ClockOut(c.Context(), GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrNoOpenShift) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_OPEN_SHIFT", Message: "no hay turno abierto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateCost godoc
// @Summary      Registrar costo operativo manual (MISC)
// @Tags         costs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCostRecordRequest  true  "description, amount, timestamp (opcional)"
// @Success      201   {object}  dto.CostRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/costs [post]
func (h *TimeclockHandler) CreateCost(c *fiber.Ctx) error {
	var in dto.CreateCostRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateCostRecord(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCosts godoc
// @Summary      Listar costos operativos en una ventana de fechas
// @Tags         costs
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "fecha inicial (YYYY-MM-DD o RFC3339); default: hoy"
// @Param        to    query  string  false  "fecha final; default: ahora"
// @Success      200   {array}  dto.CostRecordResponse
// @Router       /api/costs [get]
func (h *TimeclockHandler) ListCosts(c *fiber.Ctx) error {
	from, to, err := parseWindow(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "fechas inválidas"})
	}
	out, err := h.uc.ListCosts(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// parseWindow lee from/to del query. Acepta YYYY-MM-DD o RFC3339; por defecto
// la ventana es el día de hoy completo.
func parseWindow(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := now

	if s := c.Query("from"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		// Una fecha sin hora significa "ese día completo".
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		to = t
	}
	return from, to, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
