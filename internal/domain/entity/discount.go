package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento.
const (
	DiscountTypePercent = "PORCENTAJE"
	DiscountTypeFixed   = "FIJO"
)

// Discount representa un descuento aplicable en ventas, con ventana de vigencia.
type Discount struct {
	ID        string
	CompanyID string
	Name      string
	Type      string          // ver constantes DiscountType*
	Value     decimal.Decimal // porcentaje (0-100) o monto fijo según Type
	StartsAt  time.Time
	EndsAt    *time.Time // nil = sin vencimiento
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
