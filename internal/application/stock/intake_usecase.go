package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
	"github.com/jhoicas/Comercio-api/internal/domain/stock"
)

// RecordIntakeUseCase registra lotes de entradas de mercancía de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) sobre cada variante
// y Commit/Rollback: o entran todas las líneas o ninguna.
type RecordIntakeUseCase struct {
	txRunner      TxRunner
	alarmQuantity decimal.Decimal
}

// NewRecordIntakeUseCase construye el caso de uso.
func NewRecordIntakeUseCase(txRunner TxRunner, alarmQuantity decimal.Decimal) *RecordIntakeUseCase {
	return &RecordIntakeUseCase{txRunner: txRunner, alarmQuantity: alarmQuantity}
}

// RecordIntake valida el lote y lo aplica línea a línea dentro de una sola
// transacción. Por cada línea: bloquea la variante, suma cantidad y valor al
// ledger real (absorbiendo primero cualquier déficit por sobreconsumo),
// recorta el saldo visible a >= 0, rederiva el estado y persiste la variante
// junto con su registro de auditoría.
//
// Las cantidades deben ser > 0: una entrada nunca decrementa; las bajas van
// por el camino de corrección.
func (uc *RecordIntakeUseCase) RecordIntake(ctx context.Context, companyID, userID string, in dto.RecordIntakeRequest) error {
	if len(in.Lines) == 0 {
		return domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.VariantID == "" || line.SupplierID == "" {
			return domain.ErrInvalidInput
		}
		if !line.Quantity.GreaterThan(decimal.Zero) || line.Value.IsNegative() {
			return domain.ErrInvalidInput
		}
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		variantRepo repository.VariantRepository,
		intakeRepo repository.StockIntakeRepository,
		_ repository.StockModificationRepository,
	) error {
		for _, line := range in.Lines {
			// Bloquea la fila de la variante para evitar lost updates entre
			// lotes concurrentes sobre la misma variante.
			v, err := variantRepo.GetForUpdate(line.VariantID)
			if err != nil {
				return err
			}
			if v == nil {
				return domain.ErrNotFound
			}
			if v.CompanyID != companyID {
				return domain.ErrForbidden
			}

			qty := stock.Balance{Actual: v.ActualQuantity, Visible: v.Quantity}.ApplyIntake(line.Quantity)
			val := stock.Balance{Actual: v.ActualValue, Visible: v.Value}.ApplyIntake(line.Value)
			v.ActualQuantity, v.Quantity = qty.Actual, qty.Visible
			v.ActualValue, v.Value = val.Actual, val.Visible
			v.Status = stock.DeriveStatus(v.Quantity, v.LowQuantity, uc.alarmQuantity)
			v.UpdatedAt = now

			if err := variantRepo.UpdateBalances(v); err != nil {
				return err
			}
			intake := &entity.StockIntake{
				ID:         uuid.New().String(),
				CompanyID:  companyID,
				VariantID:  v.ID,
				Quantity:   line.Quantity,
				Value:      line.Value,
				SupplierID: line.SupplierID,
				StaffID:    line.StaffID,
				BranchID:   line.BranchID,
				Reference:  line.Reference,
				CreatedAt:  now,
				CreatedBy:  userID,
			}
			if err := intakeRepo.Create(intake); err != nil {
				return err
			}
		}
		return nil
	})
}
