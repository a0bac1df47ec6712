package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto operativo registrado por una sucursal.
type Expense struct {
	ID          string
	CompanyID   string
	BranchID    *string // nil = gasto a nivel empresa
	Category    string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CreatedBy   string // UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
