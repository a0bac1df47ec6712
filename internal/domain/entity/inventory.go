package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados de una variante de stock. Nunca se asignan a mano:
// se recalculan con stock.DeriveStatus en cada mutación.
const (
	StatusOutOfStock = "OUT_OF_STOCK"
	StatusLowStock   = "LOW_STOCK"
	StatusAlarm      = "ALARM" // banda entre lowQuantity y lowQuantity+alarmQuantity
	StatusInStock    = "IN_STOCK"
)

// Inventory representa un artículo de stock (definición estática) con sus
// variantes compradas/consumibles embebidas. Debe tener al menos una variante.
type Inventory struct {
	ID        string
	CompanyID string
	Title     string // nombre del artículo, ej. "Leche"
	Packaging string // unidad de empaque, ej. "Caja"
	Variants  []InventoryVariant
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InventoryVariant representa una unidad comprable/consumible de un artículo.
//
// Lleva dos libros de saldos: el ledger real (ActualQuantity/ActualValue),
// que puede ir a negativo cuando hay sobreconsumo, y el saldo visible
// (Quantity/Value) que nunca se muestra por debajo de cero.
// Invariante tras cada mutación:
//
//	Quantity == max(ActualQuantity, 0)
//	Value    == max(ActualValue, 0)
//
// Todos los campos existen siempre; los defaults se aplican al construir.
type InventoryVariant struct {
	ID          string
	InventoryID string
	CompanyID   string
	Name        string // ej. "1L"
	FullName    string // derivado: título + empaque + nombre, primera letra en mayúscula

	// Saldos iniciales (solo escritura en la creación).
	StartingQuantity decimal.Decimal
	StartingValue    decimal.Decimal

	// Saldo visible (recortado a >= 0 para mostrar).
	Quantity decimal.Decimal
	Value    decimal.Decimal

	// Ledger real (fuente de verdad; puede ser negativo).
	ActualQuantity decimal.Decimal
	ActualValue    decimal.Decimal

	// Umbral de bajo stock; la banda ALARM se extiende alarmQuantity por encima.
	LowQuantity decimal.Decimal

	Status    string // ver constantes Status*
	CreatedAt time.Time
	UpdatedAt time.Time
}
