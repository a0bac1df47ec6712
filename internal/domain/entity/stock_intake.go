package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockIntake representa una entrada de mercancía de un proveedor.
// Es un registro de auditoría append-only: nunca se actualiza ni se elimina.
type StockIntake struct {
	ID         string
	CompanyID  string
	VariantID  string
	Quantity   decimal.Decimal // siempre > 0; las bajas van por StockModification
	Value      decimal.Decimal // valor monetario de la entrada
	SupplierID string
	StaffID    *string // quién recibió la mercancía
	BranchID   *string // sucursal que recibe
	Reference  string  // remisión, orden de compra, etc.
	CreatedAt  time.Time
	CreatedBy  string // UserID
}
