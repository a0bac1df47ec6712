package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/jhoicas/Comercio-api/internal/application/stock"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

func newCorrectionFixture(vs ...entity.InventoryVariant) (*appstock.RecordCorrectionUseCase, *fakeVariantRepo, *fakeModRepo) {
	variantRepo := newFakeVariantRepo(vs...)
	modRepo := &fakeModRepo{}
	tx := &fakeTxRunner{variantRepo: variantRepo, intakeRepo: &fakeIntakeRepo{}, modRepo: modRepo}
	return appstock.NewRecordCorrectionUseCase(tx, alarm()), variantRepo, modRepo
}

// La corrección es una asignación absoluta: con 10 en mano, corregir a 4 deja
// 4 (no 14 ni 6).
func TestRecordCorrection_EsAbsolutaNoAditiva(t *testing.T) {
	uc, variantRepo, _ := newCorrectionFixture(newVariant("var-1", 10, 5000))
	err := uc.RecordCorrection(context.Background(), testCompanyID, testUserID, dto.RecordCorrectionRequest{
		VariantID: "var-1",
		Quantity:  d(4),
		Value:     d(2000),
		Reason:    entity.ReasonRecount,
	})
	require.NoError(t, err)

	v, _ := variantRepo.GetByID("var-1")
	assert.True(t, v.ActualQuantity.Equal(d(4)))
	assert.True(t, v.Quantity.Equal(d(4)))
	assert.True(t, v.ActualValue.Equal(d(2000)))
	// 4 <= low (5)
	assert.Equal(t, entity.StatusLowStock, v.Status)
}

// Un recuento negativo deja el ledger real en déficit y el visible en cero.
func TestRecordCorrection_NegativaDejaDeficit(t *testing.T) {
	uc, variantRepo, _ := newCorrectionFixture(newVariant("var-1", 10, 5000))
	err := uc.RecordCorrection(context.Background(), testCompanyID, testUserID, dto.RecordCorrectionRequest{
		VariantID: "var-1",
		Quantity:  d(-7),
		Value:     d(-3500),
		Reason:    entity.ReasonInternalUse,
	})
	require.NoError(t, err)

	v, _ := variantRepo.GetByID("var-1")
	assert.True(t, v.ActualQuantity.Equal(d(-7)))
	assert.True(t, v.Quantity.IsZero(), "el visible nunca es negativo")
	assert.Equal(t, entity.StatusOutOfStock, v.Status)
}

// El registro de auditoría conserva la transición anterior → nueva.
func TestRecordCorrection_GuardaTransicion(t *testing.T) {
	uc, _, modRepo := newCorrectionFixture(newVariant("var-1", 10, 5000))
	err := uc.RecordCorrection(context.Background(), testCompanyID, testUserID, dto.RecordCorrectionRequest{
		VariantID: "var-1",
		Quantity:  d(4),
		Value:     d(2000),
		Reason:    entity.ReasonDamage,
		Notes:     "caja aplastada en bodega",
	})
	require.NoError(t, err)

	require.Len(t, modRepo.created, 1)
	mod := modRepo.created[0]
	assert.True(t, mod.PreviousQuantity.Equal(d(10)))
	assert.True(t, mod.PreviousValue.Equal(d(5000)))
	assert.True(t, mod.Quantity.Equal(d(4)))
	assert.Equal(t, entity.ReasonDamage, mod.Reason)
	assert.Equal(t, "caja aplastada en bodega", mod.Notes)
	assert.Equal(t, testUserID, mod.CreatedBy)
}

func TestRecordCorrection_MotivoInvalido(t *testing.T) {
	uc, _, _ := newCorrectionFixture(newVariant("var-1", 10, 5000))
	err := uc.RecordCorrection(context.Background(), testCompanyID, testUserID, dto.RecordCorrectionRequest{
		VariantID: "var-1",
		Quantity:  d(4),
		Reason:    "CAPRICHO",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordCorrection_VarianteDeOtroTenant(t *testing.T) {
	ajena := newVariant("var-ajena", 10, 1000)
	ajena.CompanyID = "otra-empresa"
	uc, _, _ := newCorrectionFixture(ajena)
	err := uc.RecordCorrection(context.Background(), testCompanyID, testUserID, dto.RecordCorrectionRequest{
		VariantID: "var-ajena",
		Quantity:  d(1),
		Reason:    entity.ReasonRecount,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
