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

// RecordCorrectionUseCase aplica correcciones manuales absolutas al saldo de
// una variante (recuento, daño, vencido, robo, uso interno) y deja el registro
// de auditoría con la transición anterior → nueva.
type RecordCorrectionUseCase struct {
	txRunner      TxRunner
	alarmQuantity decimal.Decimal
}

// NewRecordCorrectionUseCase construye el caso de uso.
func NewRecordCorrectionUseCase(txRunner TxRunner, alarmQuantity decimal.Decimal) *RecordCorrectionUseCase {
	return &RecordCorrectionUseCase{txRunner: txRunner, alarmQuantity: alarmQuantity}
}

// RecordCorrection fija los saldos de la variante en los valores absolutos
// recibidos (no son deltas): el ledger real toma el valor tal cual — puede
// quedar en negativo para representar sobreconsumo pendiente — y el visible
// queda recortado a >= 0. El motivo es etiqueta de auditoría; no cambia la
// política numérica. Corre en la misma disciplina transaccional que las
// entradas (bloqueo de fila + Commit/Rollback).
func (uc *RecordCorrectionUseCase) RecordCorrection(ctx context.Context, companyID, userID string, in dto.RecordCorrectionRequest) error {
	if in.VariantID == "" || !entity.ValidReason(in.Reason) {
		return domain.ErrInvalidInput
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		variantRepo repository.VariantRepository,
		_ repository.StockIntakeRepository,
		modRepo repository.StockModificationRepository,
	) error {
		v, err := variantRepo.GetForUpdate(in.VariantID)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}
		if v.CompanyID != companyID {
			return domain.ErrForbidden
		}

		prevQty, prevVal := v.ActualQuantity, v.ActualValue

		qty := stock.Balance{Actual: v.ActualQuantity, Visible: v.Quantity}.Set(in.Quantity)
		val := stock.Balance{Actual: v.ActualValue, Visible: v.Value}.Set(in.Value)
		v.ActualQuantity, v.Quantity = qty.Actual, qty.Visible
		v.ActualValue, v.Value = val.Actual, val.Visible
		v.Status = stock.DeriveStatus(v.Quantity, v.LowQuantity, uc.alarmQuantity)
		v.UpdatedAt = now

		if err := variantRepo.UpdateBalances(v); err != nil {
			return err
		}
		mod := &entity.StockModification{
			ID:               uuid.New().String(),
			CompanyID:        companyID,
			VariantID:        v.ID,
			Quantity:         in.Quantity,
			Value:            in.Value,
			PreviousQuantity: prevQty,
			PreviousValue:    prevVal,
			Reason:           in.Reason,
			Notes:            in.Notes,
			CreatedAt:        now,
			CreatedBy:        userID,
		}
		return modRepo.Create(mod)
	})
}
