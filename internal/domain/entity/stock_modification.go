package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Motivos de corrección manual de stock. Son etiquetas de auditoría:
// la política numérica es la misma para todos (asignación absoluta).
const (
	ReasonRecount     = "RECUENTO"
	ReasonDamage      = "DANO"
	ReasonExpired     = "VENCIDO"
	ReasonTheft       = "ROBO"
	ReasonInternalUse = "USO_INTERNO"
)

// ValidReason indica si el motivo pertenece al conjunto permitido.
func ValidReason(reason string) bool {
	switch reason {
	case ReasonRecount, ReasonDamage, ReasonExpired, ReasonTheft, ReasonInternalUse:
		return true
	}
	return false
}

// StockModification representa una corrección manual de saldos de una variante.
// Quantity/Value son los valores absolutos fijados (no deltas); se conserva
// el saldo anterior como contexto de la transición. Append-only.
type StockModification struct {
	ID               string
	CompanyID        string
	VariantID        string
	Quantity         decimal.Decimal // nuevo ledger real fijado
	Value            decimal.Decimal
	PreviousQuantity decimal.Decimal // ledger real antes de la corrección
	PreviousValue    decimal.Decimal
	Reason           string // ver constantes Reason*
	Notes            string
	CreatedAt        time.Time
	CreatedBy        string // UserID
}
