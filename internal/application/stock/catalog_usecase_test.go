package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/jhoicas/Comercio-api/internal/application/stock"
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

const (
	testCompanyID = "00000000-0000-0000-0000-000000000001"
	testUserID    = "00000000-0000-0000-0000-000000000002"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func alarm() decimal.Decimal { return d(3) }

// ──────────────────────────────────────────────────────────────────────────────
// Creación del catálogo
// ──────────────────────────────────────────────────────────────────────────────

// Los saldos iniciales se copian tal cual a ambos libros y el estado se
// deriva de la cantidad inicial.
func TestCatalogCreate_CopiaSaldosIniciales(t *testing.T) {
	invRepo := newFakeInventoryRepo()
	uc := appstock.NewCatalogUseCase(invRepo, newFakeVariantRepo(), alarm())

	out, err := uc.Create(testCompanyID, dto.CreateInventoryRequest{
		Title:     "Leche",
		Packaging: "Caja",
		Variants: []dto.VariantInput{
			{Name: "1L", StartingQuantity: d(20), StartingValue: d(45000), LowQuantity: d(5)},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Variants, 1)

	v := out.Variants[0]
	assert.Equal(t, "Leche Caja 1L", v.FullName)
	assert.True(t, v.Quantity.Equal(d(20)))
	assert.True(t, v.ActualQuantity.Equal(d(20)))
	assert.True(t, v.Value.Equal(d(45000)))
	assert.True(t, v.ActualValue.Equal(d(45000)))
	// 20 > 5+3
	assert.Equal(t, entity.StatusInStock, v.Status)
}

// Estado inicial cuando la cantidad inicial cae dentro de cada banda.
func TestCatalogCreate_EstadoInicialPorBanda(t *testing.T) {
	cases := []struct {
		starting int64
		want     string
	}{
		{0, entity.StatusOutOfStock},
		{5, entity.StatusLowStock},
		{8, entity.StatusAlarm},
		{9, entity.StatusInStock},
	}
	for _, tc := range cases {
		uc := appstock.NewCatalogUseCase(newFakeInventoryRepo(), newFakeVariantRepo(), alarm())
		out, err := uc.Create(testCompanyID, dto.CreateInventoryRequest{
			Title:     "Arroz",
			Packaging: "Bulto",
			Variants: []dto.VariantInput{
				{Name: "25kg", StartingQuantity: d(tc.starting), LowQuantity: d(5)},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, tc.want, out.Variants[0].Status, "starting=%d", tc.starting)
	}
}

func TestCatalogCreate_RequiereVariantes(t *testing.T) {
	uc := appstock.NewCatalogUseCase(newFakeInventoryRepo(), newFakeVariantRepo(), alarm())
	_, err := uc.Create(testCompanyID, dto.CreateInventoryRequest{Title: "Leche", Packaging: "Caja"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogCreate_RechazaSaldosInicialesNegativos(t *testing.T) {
	uc := appstock.NewCatalogUseCase(newFakeInventoryRepo(), newFakeVariantRepo(), alarm())
	_, err := uc.Create(testCompanyID, dto.CreateInventoryRequest{
		Title:     "Leche",
		Packaging: "Caja",
		Variants:  []dto.VariantInput{{Name: "1L", StartingQuantity: d(-1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición del catálogo (sobrescritura del documento completo)
// ──────────────────────────────────────────────────────────────────────────────

func seedInventory(t *testing.T) (*fakeInventoryRepo, entity.InventoryVariant) {
	t.Helper()
	now := time.Now()
	v := entity.InventoryVariant{
		ID:               "var-1",
		InventoryID:      "inv-1",
		CompanyID:        testCompanyID,
		Name:             "1L",
		FullName:         "Leche Caja 1L",
		StartingQuantity: d(10),
		StartingValue:    d(20000),
		Quantity:         d(6),
		Value:            d(12000),
		ActualQuantity:   d(6),
		ActualValue:      d(12000),
		LowQuantity:      d(5),
		Status:           entity.StatusAlarm,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	inv := &entity.Inventory{
		ID:        "inv-1",
		CompanyID: testCompanyID,
		Title:     "Leche",
		Packaging: "Caja",
		Variants:  []entity.InventoryVariant{v},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return newFakeInventoryRepo(inv), v
}

// La edición conserva ledgers y saldos iniciales, recalcula el nombre completo
// y rederiva el estado desde la cantidad visible actual (no la inicial).
func TestCatalogUpdate_ConservaLedgerYRecalculaEstado(t *testing.T) {
	invRepo, _ := seedInventory(t)
	uc := appstock.NewCatalogUseCase(invRepo, newFakeVariantRepo(), alarm())

	// Sube el umbral: con cantidad visible 6 y low 10, pasa de ALARM a LOW_STOCK.
	out, err := uc.Update("inv-1", dto.UpdateInventoryRequest{
		Title:     "Leche entera",
		Packaging: "Caja",
		Variants: []dto.VariantInput{
			{ID: "var-1", Name: "1L", LowQuantity: d(10)},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Variants, 1)

	v := out.Variants[0]
	assert.Equal(t, "Leche entera Caja 1L", v.FullName)
	assert.True(t, v.Quantity.Equal(d(6)), "el saldo visible no se toca al editar")
	assert.True(t, v.ActualQuantity.Equal(d(6)))
	assert.True(t, v.StartingQuantity.Equal(d(10)), "los saldos iniciales no se tocan")
	assert.Equal(t, entity.StatusLowStock, v.Status)
}

// Una variante sin ID dentro de una edición se trata como en la creación.
func TestCatalogUpdate_VarianteNuevaEnEdicion(t *testing.T) {
	invRepo, _ := seedInventory(t)
	uc := appstock.NewCatalogUseCase(invRepo, newFakeVariantRepo(), alarm())

	out, err := uc.Update("inv-1", dto.UpdateInventoryRequest{
		Title:     "Leche",
		Packaging: "Caja",
		Variants: []dto.VariantInput{
			{ID: "var-1", Name: "1L", LowQuantity: d(5)},
			{Name: "2L", StartingQuantity: d(15), StartingValue: d(50000), LowQuantity: d(4)},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Variants, 2)

	nueva := out.Variants[1]
	assert.NotEmpty(t, nueva.ID)
	assert.Equal(t, "Leche Caja 2L", nueva.FullName)
	assert.True(t, nueva.Quantity.Equal(d(15)))
	assert.True(t, nueva.ActualQuantity.Equal(d(15)))
	assert.Equal(t, entity.StatusInStock, nueva.Status)
}

// ID desconocido -> nil (not-found suave, sin error).
func TestCatalogUpdate_NoEncontrado(t *testing.T) {
	uc := appstock.NewCatalogUseCase(newFakeInventoryRepo(), newFakeVariantRepo(), alarm())
	out, err := uc.Update("no-existe", dto.UpdateInventoryRequest{
		Title:     "Leche",
		Packaging: "Caja",
		Variants:  []dto.VariantInput{{Name: "1L"}},
	})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestGetVariant_NoExiste(t *testing.T) {
	uc := appstock.NewCatalogUseCase(newFakeInventoryRepo(), newFakeVariantRepo(), alarm())
	out, err := uc.GetVariant("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}
