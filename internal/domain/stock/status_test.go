package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/stock"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// ──────────────────────────────────────────────────────────────────────────────
// DeriveStatus: función total y determinista de (cantidad, low, alarm).
// Cortes exactos: 0, low, low+alarm (inclusivos por la derecha).
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveStatus_Cortes(t *testing.T) {
	low, alarm := d(5), d(3)

	cases := []struct {
		name     string
		quantity decimal.Decimal
		want     string
	}{
		{"cero es OUT_OF_STOCK", d(0), entity.StatusOutOfStock},
		{"uno es LOW_STOCK", d(1), entity.StatusLowStock},
		{"igual a low sigue LOW_STOCK", d(5), entity.StatusLowStock},
		{"low+1 entra en ALARM", d(6), entity.StatusAlarm},
		{"igual a low+alarm sigue ALARM", d(8), entity.StatusAlarm},
		{"low+alarm+1 es IN_STOCK", d(9), entity.StatusInStock},
		{"muy por encima es IN_STOCK", d(100), entity.StatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.DeriveStatus(tc.quantity, low, alarm))
		})
	}
}

// La cantidad visible nunca es negativa, pero el deriver debe ser total:
// cualquier valor <= 0 cae en OUT_OF_STOCK.
func TestDeriveStatus_NegativoEsOutOfStock(t *testing.T) {
	assert.Equal(t, entity.StatusOutOfStock, stock.DeriveStatus(d(-3), d(5), d(3)))
}

// Banda ALARM de ancho cero: se pasa directo de LOW_STOCK a IN_STOCK.
func TestDeriveStatus_AlarmCero(t *testing.T) {
	assert.Equal(t, entity.StatusLowStock, stock.DeriveStatus(d(5), d(5), d(0)))
	assert.Equal(t, entity.StatusInStock, stock.DeriveStatus(d(6), d(5), d(0)))
}

// Función pura: dos llamadas con la misma tripleta devuelven lo mismo.
func TestDeriveStatus_Idempotente(t *testing.T) {
	first := stock.DeriveStatus(d(7), d(5), d(3))
	second := stock.DeriveStatus(d(7), d(5), d(3))
	assert.Equal(t, first, second)
}

// Decimales no enteros: los cortes siguen siendo inclusivos por la derecha.
func TestDeriveStatus_Fraccionario(t *testing.T) {
	low, alarm := decimal.NewFromFloat(2.5), decimal.NewFromFloat(1.5)
	assert.Equal(t, entity.StatusLowStock, stock.DeriveStatus(decimal.NewFromFloat(2.5), low, alarm))
	assert.Equal(t, entity.StatusAlarm, stock.DeriveStatus(decimal.NewFromFloat(4), low, alarm))
	assert.Equal(t, entity.StatusInStock, stock.DeriveStatus(decimal.NewFromFloat(4.01), low, alarm))
}
