package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/jhoicas/Comercio-api/internal/application/stock"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

func newVariant(id string, actualQty, actualVal int64) entity.InventoryVariant {
	now := time.Now()
	v := entity.InventoryVariant{
		ID:             id,
		InventoryID:    "inv-1",
		CompanyID:      testCompanyID,
		Name:           "1L",
		FullName:       "Leche Caja 1L",
		ActualQuantity: d(actualQty),
		ActualValue:    d(actualVal),
		LowQuantity:    d(5),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	// Visible = max(real, 0), como tras cualquier mutación.
	v.Quantity = d(actualQty)
	if v.Quantity.IsNegative() {
		v.Quantity = d(0)
	}
	v.Value = d(actualVal)
	if v.Value.IsNegative() {
		v.Value = d(0)
	}
	return v
}

func newIntakeFixture(vs ...entity.InventoryVariant) (*appstock.RecordIntakeUseCase, *fakeVariantRepo, *fakeIntakeRepo) {
	variantRepo := newFakeVariantRepo(vs...)
	intakeRepo := &fakeIntakeRepo{}
	tx := &fakeTxRunner{variantRepo: variantRepo, intakeRepo: intakeRepo, modRepo: &fakeModRepo{}}
	return appstock.NewRecordIntakeUseCase(tx, alarm()), variantRepo, intakeRepo
}

func oneLine(variantID string, qty, value int64) dto.RecordIntakeRequest {
	return dto.RecordIntakeRequest{Lines: []dto.StockIntakeLine{
		{VariantID: variantID, Quantity: d(qty), Value: d(value), SupplierID: "sup-1"},
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de punta a punta del motor de entradas (cantidades y estados).
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordIntake_EscenarioCompleto(t *testing.T) {
	uc, variantRepo, _ := newIntakeFixture(newVariant("var-1", 0, 0))
	ctx := context.Background()

	// Arranque: 0 unidades -> OUT_OF_STOCK implícito al derivar.
	require.NoError(t, uc.RecordIntake(ctx, testCompanyID, testUserID, oneLine("var-1", 6, 9000)))
	v, _ := variantRepo.GetByID("var-1")
	assert.True(t, v.ActualQuantity.Equal(d(6)))
	assert.True(t, v.Quantity.Equal(d(6)))
	// 6 está en (5, 8]
	assert.Equal(t, entity.StatusAlarm, v.Status)

	// Segunda entrada: 8 == low+alarm sigue dentro de la banda ALARM (corte
	// inclusivo por la derecha).
	require.NoError(t, uc.RecordIntake(ctx, testCompanyID, testUserID, oneLine("var-1", 2, 3000)))
	v, _ = variantRepo.GetByID("var-1")
	assert.True(t, v.ActualQuantity.Equal(d(8)))
	assert.Equal(t, entity.StatusAlarm, v.Status)

	// Tercera entrada: 9 > 8 pasa a IN_STOCK.
	require.NoError(t, uc.RecordIntake(ctx, testCompanyID, testUserID, oneLine("var-1", 1, 1500)))
	v, _ = variantRepo.GetByID("var-1")
	assert.Equal(t, entity.StatusInStock, v.Status)
	assert.True(t, v.Value.Equal(d(13500)))
}

// Ledger real en -5: una entrada de 3 absorbe déficit sin mostrar saldo.
func TestRecordIntake_AbsorcionParcialDeDeficit(t *testing.T) {
	uc, variantRepo, _ := newIntakeFixture(newVariant("var-1", -5, -2500))
	err := uc.RecordIntake(context.Background(), testCompanyID, testUserID, oneLine("var-1", 3, 1500))
	require.NoError(t, err)

	v, _ := variantRepo.GetByID("var-1")
	assert.True(t, v.ActualQuantity.Equal(d(-2)))
	assert.True(t, v.Quantity.IsZero(), "el visible se queda en 0 mientras haya déficit")
	assert.Equal(t, entity.StatusOutOfStock, v.Status)
	assert.True(t, v.ActualValue.Equal(d(-1000)))
	assert.True(t, v.Value.IsZero())
}

// Ledger real en -5: una entrada de 8 salda el déficit y deja 3 visibles.
func TestRecordIntake_AbsorcionTotalDeDeficit(t *testing.T) {
	uc, variantRepo, _ := newIntakeFixture(newVariant("var-1", -5, 0))
	err := uc.RecordIntake(context.Background(), testCompanyID, testUserID, oneLine("var-1", 8, 4000))
	require.NoError(t, err)

	v, _ := variantRepo.GetByID("var-1")
	assert.True(t, v.ActualQuantity.Equal(d(3)))
	assert.True(t, v.Quantity.Equal(d(3)))
	assert.Equal(t, entity.StatusLowStock, v.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y aislamiento por tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordIntake_RechazaLoteVacio(t *testing.T) {
	uc, _, _ := newIntakeFixture()
	err := uc.RecordIntake(context.Background(), testCompanyID, testUserID, dto.RecordIntakeRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Una entrada nunca decrementa: cantidad <= 0 se rechaza (las bajas van por
// corrección).
func TestRecordIntake_RechazaCantidadNoPositiva(t *testing.T) {
	uc, _, _ := newIntakeFixture(newVariant("var-1", 10, 5000))
	ctx := context.Background()
	assert.ErrorIs(t, uc.RecordIntake(ctx, testCompanyID, testUserID, oneLine("var-1", 0, 100)), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.RecordIntake(ctx, testCompanyID, testUserID, oneLine("var-1", -4, 100)), domain.ErrInvalidInput)
}

func TestRecordIntake_VarianteInexistente(t *testing.T) {
	uc, _, _ := newIntakeFixture()
	err := uc.RecordIntake(context.Background(), testCompanyID, testUserID, oneLine("no-existe", 5, 100))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordIntake_VarianteDeOtroTenant(t *testing.T) {
	ajena := newVariant("var-ajena", 10, 1000)
	ajena.CompanyID = "otra-empresa"
	uc, _, _ := newIntakeFixture(ajena)
	err := uc.RecordIntake(context.Background(), testCompanyID, testUserID, oneLine("var-ajena", 5, 100))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auditoría y atomicidad del lote
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordIntake_PersisteRegistroDeAuditoria(t *testing.T) {
	uc, _, intakeRepo := newIntakeFixture(newVariant("var-1", 0, 0))
	in := dto.RecordIntakeRequest{Lines: []dto.StockIntakeLine{
		{VariantID: "var-1", Quantity: d(6), Value: d(9000), SupplierID: "sup-1", Reference: "OC-042"},
	}}
	require.NoError(t, uc.RecordIntake(context.Background(), testCompanyID, testUserID, in))

	require.Len(t, intakeRepo.created, 1)
	rec := intakeRepo.created[0]
	assert.Equal(t, testCompanyID, rec.CompanyID)
	assert.Equal(t, "var-1", rec.VariantID)
	assert.Equal(t, "sup-1", rec.SupplierID)
	assert.Equal(t, "OC-042", rec.Reference)
	assert.Equal(t, testUserID, rec.CreatedBy)
	assert.True(t, rec.Quantity.Equal(d(6)))
}

// Si una línea del lote falla, ninguna línea queda aplicada (unidad de trabajo).
func TestRecordIntake_LoteAtomico(t *testing.T) {
	uc, variantRepo, intakeRepo := newIntakeFixture(newVariant("var-1", 2, 1000))
	in := dto.RecordIntakeRequest{Lines: []dto.StockIntakeLine{
		{VariantID: "var-1", Quantity: d(5), Value: d(2500), SupplierID: "sup-1"},
		{VariantID: "no-existe", Quantity: d(5), Value: d(2500), SupplierID: "sup-1"},
	}}
	err := uc.RecordIntake(context.Background(), testCompanyID, testUserID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	v, _ := variantRepo.GetByID("var-1")
	assert.True(t, v.ActualQuantity.Equal(d(2)), "la primera línea debe revertirse")
	assert.Empty(t, intakeRepo.created)
}
