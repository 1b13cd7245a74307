package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-cocina/internal/application/dto"
	"github.com/tu-usuario/pos-cocina/internal/application/sales"
	"github.com/tu-usuario/pos-cocina/internal/domain"
)

// KitchenHandler maneja la cola de comandas de cocina (protegido).
type KitchenHandler struct {
	uc *sales.KitchenUseCase
}

// NewKitchenHandler construye el handler.
func NewKitchenHandler(uc *sales.KitchenUseCase) *KitchenHandler {
	return &KitchenHandler{uc: uc}
}

// ListPending godoc
// @Summary      Comandas no entregadas (cola de cocina)
// @Tags         kitchen
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.KitchenOrderResponse
// @Router       /api/kitchen/orders [get]
func (h *KitchenHandler) ListPending(c *fiber.Ctx) error {
	out, err := h.uc.ListPending(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Avanzar estado de una comanda (PENDING→READY→DELIVERED)
// @Tags         kitchen
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "UUID de la comanda"
// @Param        body  body  object{status=string}  true  "status destino"
// @Success      204   "sin contenido"
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/kitchen/orders/{id}/status [patch]
func (h *KitchenHandler) UpdateStatus(c *fiber.Ctx) error {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateStatus(c.Context(), c.Params("id"), in.Status); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "comanda no encontrada"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "transición de estado no permitida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
