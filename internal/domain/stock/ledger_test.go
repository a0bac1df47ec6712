package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Comercio-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Balance.ApplyIntake: absorción de déficit y recorte del saldo visible.
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyIntake_SaldoPositivo(t *testing.T) {
	b := stock.Balance{Actual: d(10), Visible: d(10)}
	got := b.ApplyIntake(d(4))
	assert.True(t, got.Actual.Equal(d(14)))
	assert.True(t, got.Visible.Equal(d(14)))
}

// Ledger en -5 y entrada de 3: la entrada absorbe déficit, el visible sigue en 0.
func TestApplyIntake_AbsorcionParcialDeDeficit(t *testing.T) {
	b := stock.Balance{Actual: d(-5), Visible: d(0)}
	got := b.ApplyIntake(d(3))
	assert.True(t, got.Actual.Equal(d(-2)))
	assert.True(t, got.Visible.IsZero())
}

// Ledger en -5 y entrada de 8: el déficit se absorbe y quedan 3 visibles.
func TestApplyIntake_AbsorcionTotalDeDeficit(t *testing.T) {
	b := stock.Balance{Actual: d(-5), Visible: d(0)}
	got := b.ApplyIntake(d(8))
	assert.True(t, got.Actual.Equal(d(3)))
	assert.True(t, got.Visible.Equal(d(3)))
}

// El visible nunca es negativo, sin importar la secuencia de operaciones.
func TestApplyIntake_VisibleNuncaNegativo(t *testing.T) {
	b := stock.Balance{Actual: d(-100), Visible: d(0)}
	for _, delta := range []int64{1, 5, 20, 50} {
		b = b.ApplyIntake(d(delta))
		assert.False(t, b.Visible.IsNegative(), "visible debe mantenerse >= 0")
	}
	// -100 + 76 = -24: aún en déficit
	assert.True(t, b.Actual.Equal(d(-24)))
	assert.True(t, b.Visible.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Balance.Set: corrección absoluta, no aditiva.
// ──────────────────────────────────────────────────────────────────────────────

func TestSet_EsAbsolutoNoAditivo(t *testing.T) {
	b := stock.Balance{Actual: d(10), Visible: d(10)}
	got := b.Set(d(4))
	assert.True(t, got.Actual.Equal(d(4)), "4, no 14 ni 6")
	assert.True(t, got.Visible.Equal(d(4)))
}

// Un recuento negativo deja el ledger real en negativo y el visible en cero.
func TestSet_NegativoRecortaVisible(t *testing.T) {
	b := stock.Balance{Actual: d(10), Visible: d(10)}
	got := b.Set(d(-7))
	assert.True(t, got.Actual.Equal(d(-7)))
	assert.True(t, got.Visible.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildFullName
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildFullName(t *testing.T) {
	cases := []struct {
		title, packaging, name string
		want                   string
	}{
		{"Leche", "Caja", "1L", "Leche Caja 1L"},
		{"  leche ", " caja  ", "1L", "Leche caja 1L"}, // recorta, colapsa y capitaliza
		{"Milk", "Carton", "1L", "Milk Carton 1L"},
		{"", "", "", ""},
		{"ñame", "Bulto", "50kg", "Ñame Bulto 50kg"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stock.BuildFullName(tc.title, tc.packaging, tc.name))
	}
}
