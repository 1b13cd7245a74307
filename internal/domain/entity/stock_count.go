package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un conteo físico de inventario.
const (
	CountStatusDraft     = "DRAFT"     // actuales editables
	CountStatusFinalized = "FINALIZED" // registro inmutable de auditoría
	CountStatusApplied   = "APPLIED"   // además se reinició el libro de lotes
)

// StockCountLine es el renglón de un conteo para un ingrediente.
// ActualStock es nil mientras no se haya contado; al finalizar, un actual sin
// capturar se asume igual al esperado (varianza cero por defecto — "no se
// contó" nunca debe registrarse como una merma total).
type StockCountLine struct {
	IngredientID    string
	IngredientName  string
	ExpectedStock   decimal.Decimal  // totalStock al abrir el borrador
	ActualStock     *decimal.Decimal // conteo físico capturado
	UnitCostAtCount decimal.Decimal  // averageCost al abrir el borrador
	VarianceValue   decimal.Decimal  // (actual - esperado) * costo; se fija al finalizar
}

// StockCount es una foto puntual del inventario físico contra el libro.
// Una vez finalizado es el registro permanente de auditoría y no se edita.
type StockCount struct {
	ID                 string
	Status             string
	Lines              []StockCountLine
	TotalVarianceValue decimal.Decimal
	CreatedBy          string
	CreatedAt          time.Time
	FinalizedAt        *time.Time
	AppliedAt          *time.Time
}
