package stock

import (
	"context"

	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de stock:
// un lote de entradas entra completo o no entra (unidad de trabajo).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		variantRepo repository.VariantRepository,
		intakeRepo repository.StockIntakeRepository,
		modRepo repository.StockModificationRepository,
	) error) error
}
