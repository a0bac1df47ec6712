package stock

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Balance es el par ledger real / saldo visible de una variante (se usa
// tanto para cantidades como para valores monetarios).
//
// El ledger real es la fuente de verdad y puede ser negativo para representar
// sobreconsumo; el saldo visible nunca baja de cero.
type Balance struct {
	Actual  decimal.Decimal
	Visible decimal.Decimal
}

// ApplyIntake suma delta al ledger real. Si el ledger venía negativo, la
// entrada primero absorbe el déficit: el visible solo sube cuando el real
// vuelve a territorio positivo. Devuelve el balance resultante.
func (b Balance) ApplyIntake(delta decimal.Decimal) Balance {
	actual := b.Actual.Add(delta)
	return Balance{Actual: actual, Visible: clampZero(actual)}
}

// Set fija el ledger real en un valor absoluto (corrección manual); no es un
// delta. El visible queda recortado a >= 0.
func (b Balance) Set(target decimal.Decimal) Balance {
	return Balance{Actual: target, Visible: clampZero(target)}
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// BuildFullName arma el nombre completo de una variante: título del artículo,
// empaque y nombre de la variante, con espacios colapsados y la primera letra
// en mayúscula. Ej: ("Leche", "Caja", "1L") -> "Leche Caja 1L".
func BuildFullName(title, packaging, name string) string {
	joined := strings.Join(strings.Fields(title+" "+packaging+" "+name), " ")
	if joined == "" {
		return ""
	}
	runes := []rune(joined)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
