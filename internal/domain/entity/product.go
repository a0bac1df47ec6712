package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible del catálogo.
// VariantID enlaza opcionalmente a una variante de inventario para visibilidad
// de stock; el stock en sí se maneja en InventoryVariant.
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta
	TaxRate     decimal.Decimal // IVA: 0, 5 (5%), 19 (19%)
	VariantID   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
