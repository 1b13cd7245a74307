// Package sale implementa el motor de consumo: traduce las líneas de un
// carrito confirmado en lotes negativos sobre el libro de ingredientes,
// al costo promedio vigente al inicio de la venta. Máquina de estados por
// venta: PRICED → VALIDATED → COMMITTED. Todo opera sobre un snapshot
// inmutable; el que llama serializa las mutaciones por ingrediente (la venta
// completa es una sola sección crítica).
package sale

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/pos-cocina/internal/domain"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
	"github.com/tu-usuario/pos-cocina/internal/domain/ledger"
	"github.com/tu-usuario/pos-cocina/internal/domain/recipe"
)

// Intent es la intención de venta que envía la caja.
type Intent struct {
	Lines          []entity.CartLine
	PaymentMode    string
	IsEmployeeMeal bool
	CreatedBy      string
}

// Snapshot es el estado consistente de ingredientes y productos contra el que
// se valora y confirma una sola venta.
type Snapshot struct {
	Ingredients recipe.Index
	Products    map[string]*entity.Product
}

// NewSnapshot indexa ingredientes y productos.
func NewSnapshot(ingredients []*entity.Ingredient, products []*entity.Product) Snapshot {
	prods := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		prods[p.ID] = p
	}
	return Snapshot{Ingredients: recipe.NewIndex(ingredients), Products: prods}
}

// Deduction es el descuento neto de un ingrediente para una venta completa.
// UnitCost es el promedio capturado ANTES de aplicar cualquier descuento de la
// misma venta: todos los renglones se valoran contra el estado al inicio.
type Deduction struct {
	IngredientID string
	Quantity     decimal.Decimal // positiva; se aplica como lote -Quantity
	UnitCost     decimal.Decimal
}

// Result es el efecto completo de confirmar una venta.
type Result struct {
	UpdatedIngredients []*entity.Ingredient // solo los afectados, en orden de primer uso
	Deductions         []Deduction
	Sale               *entity.Sale
	KitchenOrder       *entity.KitchenOrder // nil si no hubo productos con receta
}

// Price valora el carrito: Σ unitPrice × quantity. Estado PRICED.
func Price(lines []entity.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.UnitPrice.Mul(l.Quantity))
	}
	return total
}

// Validate verifica disponibilidad contra el snapshot ANTES de confirmar
// (estado VALIDATED). Se valida el descuento combinado por ingrediente, no
// renglón a renglón, para que dos líneas que comparten insumo no pasen por
// separado y fallen juntas. Commit no re-valida: un llamador administrativo
// puede omitir este paso y dejar stock negativo a propósito.
func Validate(snap Snapshot, lines []entity.CartLine) error {
	for _, d := range computeDeductions(snap, lines) {
		ing := snap.Ingredients[d.IngredientID]
		if ledger.TotalStock(ing).LessThan(d.Quantity) {
			return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, ing.Name)
		}
	}
	return nil
}

// Commit aplica la venta contra el snapshot (estado COMMITTED): calcula
// primero TODOS los descuentos y luego los aplica como un solo bloque de
// mutaciones, devolviendo los ingredientes actualizados, la venta inmutable
// y la comanda de cocina si aplica. Líneas con ids desconocidos no aportan al
// libro pero se conservan en la venta para auditoría.
func Commit(snap Snapshot, intent Intent, now time.Time) (*Result, error) {
	deductions := computeDeductions(snap, intent.Lines)

	updated := make([]*entity.Ingredient, 0, len(deductions))
	for _, d := range deductions {
		ing, err := ledger.AppendBatch(snap.Ingredients[d.IngredientID], d.Quantity.Neg(), d.UnitCost, entity.BatchOriginSale, now)
		if err != nil {
			return nil, err
		}
		updated = append(updated, ing)
	}

	lines := make([]entity.CartLine, len(intent.Lines))
	copy(lines, intent.Lines)
	s := &entity.Sale{
		ID:             uuid.New().String(),
		Timestamp:      now,
		Lines:          lines,
		PaymentMode:    intent.PaymentMode,
		IsEmployeeMeal: intent.IsEmployeeMeal,
		Total:          Price(intent.Lines),
		CreatedBy:      intent.CreatedBy,
		CreatedAt:      now,
	}

	return &Result{
		UpdatedIngredients: updated,
		Deductions:         deductions,
		Sale:               s,
		KitchenOrder:       buildKitchenOrder(snap, s, now),
	}, nil
}

// computeDeductions expande las líneas del carrito a descuentos por
// ingrediente, fusionando los que comparten insumo para que la cantidad
// combinada se aplique exactamente una vez. El costo unitario se captura del
// snapshot (antes de cualquier descuento de esta venta).
func computeDeductions(snap Snapshot, lines []entity.CartLine) []Deduction {
	order := make([]string, 0, len(lines))
	merged := make(map[string]*Deduction, len(lines))

	add := func(ingredientID string, qty decimal.Decimal) {
		ing, ok := snap.Ingredients[ingredientID]
		if !ok {
			return // referencia colgante: aporta cero, queda en la venta para auditoría
		}
		d, ok := merged[ingredientID]
		if !ok {
			d = &Deduction{IngredientID: ingredientID, UnitCost: ledger.AverageCost(ing)}
			merged[ingredientID] = d
			order = append(order, ingredientID)
		}
		d.Quantity = d.Quantity.Add(qty)
	}

	for _, line := range lines {
		switch line.Kind {
		case entity.LineKindProduct:
			p, ok := snap.Products[line.ItemID]
			if !ok {
				continue
			}
			for _, rl := range p.Recipe {
				add(rl.IngredientID, rl.Quantity.Mul(line.Quantity))
			}
		case entity.LineKindIngredient:
			add(line.ItemID, line.Quantity)
		}
	}

	out := make([]Deduction, 0, len(order))
	for _, id := range order {
		out = append(out, *merged[id])
	}
	return out
}

// buildKitchenOrder genera la comanda con las líneas de producto con receta.
// Si la venta solo trae "extras" (o productos sin receta) no hay comanda.
func buildKitchenOrder(snap Snapshot, s *entity.Sale, now time.Time) *entity.KitchenOrder {
	var items []entity.KitchenOrderItem
	for _, line := range s.Lines {
		if line.Kind != entity.LineKindProduct {
			continue
		}
		p, ok := snap.Products[line.ItemID]
		if !ok || len(p.Recipe) == 0 {
			continue
		}
		items = append(items, entity.KitchenOrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    line.Quantity,
		})
	}
	if len(items) == 0 {
		return nil
	}
	return &entity.KitchenOrder{
		ID:        uuid.New().String(),
		SaleID:    s.ID,
		Status:    entity.KitchenStatusPending,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
