// Package stock contiene los servicios de dominio del motor de stock:
// derivación de estado y reconciliación de saldos (ledger real vs visible).
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// DeriveStatus deriva el estado de una variante a partir de su cantidad
// visible y sus umbrales. Función pura; debe usarse idéntica en todos los
// caminos que mutan una variante (creación, edición, entrada, corrección).
//
// Cortes (inclusivos por la derecha):
//
//	quantity <= 0                          -> OUT_OF_STOCK
//	0 < quantity <= low                    -> LOW_STOCK
//	low < quantity <= low + alarm          -> ALARM
//	quantity > low + alarm                 -> IN_STOCK
func DeriveStatus(quantity, lowQuantity, alarmQuantity decimal.Decimal) string {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return entity.StatusOutOfStock
	}
	if quantity.LessThanOrEqual(lowQuantity) {
		return entity.StatusLowStock
	}
	if quantity.LessThanOrEqual(lowQuantity.Add(alarmQuantity)) {
		return entity.StatusAlarm
	}
	return entity.StatusInStock
}
