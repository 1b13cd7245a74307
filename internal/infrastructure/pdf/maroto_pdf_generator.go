// Package pdf implementa la generación de documentos imprimibles del punto
// de venta: la tirilla de una venta y el informe de varianza de un conteo
// físico de inventario.
//
// Layout de la tirilla (A4, media hoja útil):
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio │ N° venta+fecha │
//	│  ─────────────────────────────────────────  │
//	│  TABLA: Cant | Ítem | P.Unit | Subtotal      │
//	│  ─────────────────────────────────────────  │
//	│  TOTAL + modo de pago                       │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator genera los PDF del punto de venta usando Maroto v2.
type MarotoPDFGenerator struct {
	businessName string
}

// NewMarotoPDFGenerator construye el generador con el nombre del negocio.
func NewMarotoPDFGenerator(businessName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{businessName: businessName}
}

// GenerateReceiptPDF genera la tirilla de una venta y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReceiptPDF(_ context.Context, sale *entity.Sale) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(receiptHeaderRow(g.businessName, sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(receiptTableHeaderRow())
	for _, r := range receiptLineRows(sale.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(receiptTotalRow(sale))

	if sale.IsEmployeeMeal {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("COMIDA DE EMPLEADO — no genera ingreso", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Color: colorGray, Top: 1,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// GenerateCountReportPDF genera el informe de varianza de un conteo físico.
func (g *MarotoPDFGenerator) GenerateCountReportPDF(_ context.Context, sc *entity.StockCount) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Conteo físico de inventario", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(countHeaderRow(g.businessName, sc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(countTableHeaderRow())
	for _, r := range countLineRows(sc.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(countTotalRow(sc))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe de conteo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones de la tirilla ───────────────────────────────────────────────────

// receiptHeaderRow: nombre del negocio (izq), número corto y fecha (der).
func receiptHeaderRow(businessName string, sale *entity.Sale) core.Row {
	fecha := sale.Timestamp.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de venta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("VENTA "+shortID(sale.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func receiptTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Ítem", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// receiptLineRows: una fila por línea del carrito, tal cual se vendió.
func receiptLineRows(lines []entity.CartLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		subtotal := l.UnitPrice.Mul(l.Quantity)
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				l.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.ItemName,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+formatMoney(l.UnitPrice.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(subtotal.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

func receiptTotalRow(sale *entity.Sale) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Pago: "+paymentLabel(sale.PaymentMode), props.Text{
				Size: 9, Top: 3, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("TOTAL: $"+formatMoney(sale.Total.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// ── Secciones del informe de conteo ──────────────────────────────────────────

func countHeaderRow(businessName string, sc *entity.StockCount) core.Row {
	fecha := sc.CreatedAt.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Conteo físico de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CONTEO "+shortID(sc.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New(fmt.Sprintf("Fecha: %s   |   Estado: %s", fecha, sc.Status), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func countTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Ingrediente", 4, align.Left),
		h("Esperado", 2, align.Right),
		h("Contado", 2, align.Right),
		h("Costo Unit.", 2, align.Right),
		h("Varianza $", 2, align.Right),
	)
}

// countLineRows: una fila por renglón; varianza negativa (merma) en rojo.
func countLineRows(lines []entity.StockCountLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		actual := "—"
		if l.ActualStock != nil {
			actual = l.ActualStock.String()
		}
		varColor := colorGray
		if l.VarianceValue.IsNegative() {
			varColor = colorRed
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				l.IngredientName,
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.ExpectedStock.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(2).Add(text.New(
				actual,
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.UnitCostAtCount.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.VarianceValue.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Color: varColor},
			)),
		))
	}
	return result
}

func countTotalRow(sc *entity.StockCount) core.Row {
	varColor := colorPrimary
	if sc.TotalVarianceValue.IsNegative() {
		varColor = colorRed
	}
	return row.New(12).Add(
		col.New(6),
		col.New(6).Add(
			text.New("VARIANZA TOTAL: $"+sc.TotalVarianceValue.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: varColor, Top: 2,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// shortID toma el primer segmento del UUID como número corto imprimible.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func paymentLabel(mode string) string {
	switch mode {
	case entity.PaymentModeCash:
		return "Efectivo"
	case entity.PaymentModeCard:
		return "Tarjeta"
	case entity.PaymentModeTransfer:
		return "Transferencia"
	default:
		return mode
	}
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if neg {
		return "-" + string(buf)
	}
	return string(buf)
}
