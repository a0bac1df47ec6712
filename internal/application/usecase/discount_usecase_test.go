package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Doble en memoria del repositorio de descuentos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeDiscountRepo struct {
	discounts map[string]entity.Discount
}

func newFakeDiscountRepo() *fakeDiscountRepo {
	return &fakeDiscountRepo{discounts: make(map[string]entity.Discount)}
}

func (r *fakeDiscountRepo) Create(d *entity.Discount) error {
	r.discounts[d.ID] = *d
	return nil
}

func (r *fakeDiscountRepo) GetByID(id string) (*entity.Discount, error) {
	d, ok := r.discounts[id]
	if !ok {
		return nil, nil
	}
	cp := d
	return &cp, nil
}

func (r *fakeDiscountRepo) Update(d *entity.Discount) error {
	r.discounts[d.ID] = *d
	return nil
}

func (r *fakeDiscountRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Discount, error) {
	out := make([]*entity.Discount, 0)
	for _, d := range r.discounts {
		if d.CompanyID == companyID {
			cp := d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeDiscountRepo) Delete(id string) error {
	delete(r.discounts, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestDiscountCreate_Porcentaje(t *testing.T) {
	uc := usecase.NewDiscountUseCase(newFakeDiscountRepo())

	resp, err := uc.Create("empresa-1", dto.CreateDiscountRequest{
		Name:     "Aniversario",
		Type:     entity.DiscountTypePercent,
		Value:    decimal.NewFromInt(15),
		StartsAt: time.Now(),
	})

	require.NoError(t, err)
	assert.Equal(t, "empresa-1", resp.CompanyID)
	assert.True(t, resp.Active)
	assert.Nil(t, resp.EndsAt)
}

func TestDiscountCreate_PorcentajeFueraDeRango(t *testing.T) {
	uc := usecase.NewDiscountUseCase(newFakeDiscountRepo())

	casos := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-5),
		decimal.NewFromInt(101),
	}
	for _, valor := range casos {
		_, err := uc.Create("empresa-1", dto.CreateDiscountRequest{
			Name:     "Inválido",
			Type:     entity.DiscountTypePercent,
			Value:    valor,
			StartsAt: time.Now(),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "valor %s", valor)
	}
}

func TestDiscountCreate_VentanaInvertida(t *testing.T) {
	uc := usecase.NewDiscountUseCase(newFakeDiscountRepo())

	inicio := time.Now()
	fin := inicio.Add(-time.Hour)
	_, err := uc.Create("empresa-1", dto.CreateDiscountRequest{
		Name:     "Flash",
		Type:     entity.DiscountTypeFixed,
		Value:    decimal.NewFromInt(5000),
		StartsAt: inicio,
		EndsAt:   &fin,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDiscountCreate_TipoDesconocido(t *testing.T) {
	uc := usecase.NewDiscountUseCase(newFakeDiscountRepo())

	_, err := uc.Create("empresa-1", dto.CreateDiscountRequest{
		Name:     "Raro",
		Type:     "REGALO",
		Value:    decimal.NewFromInt(10),
		StartsAt: time.Now(),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento por empresa
// ──────────────────────────────────────────────────────────────────────────────

func TestDiscountGetByID_OtraEmpresa(t *testing.T) {
	uc := usecase.NewDiscountUseCase(newFakeDiscountRepo())

	resp, err := uc.Create("empresa-1", dto.CreateDiscountRequest{
		Name:     "Aniversario",
		Type:     entity.DiscountTypePercent,
		Value:    decimal.NewFromInt(15),
		StartsAt: time.Now(),
	})
	require.NoError(t, err)

	_, err = uc.GetByID("empresa-2", resp.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete("empresa-2", resp.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// La empresa dueña sigue viéndolo.
	got, err := uc.GetByID("empresa-1", resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestDiscountUpdate_CamposParciales(t *testing.T) {
	uc := usecase.NewDiscountUseCase(newFakeDiscountRepo())

	resp, err := uc.Create("empresa-1", dto.CreateDiscountRequest{
		Name:     "Aniversario",
		Type:     entity.DiscountTypePercent,
		Value:    decimal.NewFromInt(15),
		StartsAt: time.Now(),
	})
	require.NoError(t, err)

	nuevoValor := decimal.NewFromInt(20)
	inactivo := false
	got, err := uc.Update("empresa-1", resp.ID, dto.UpdateDiscountRequest{
		Value:  &nuevoValor,
		Active: &inactivo,
	})

	require.NoError(t, err)
	assert.True(t, got.Value.Equal(nuevoValor))
	assert.False(t, got.Active)
	// El nombre no cambió.
	assert.Equal(t, "Aniversario", got.Name)
}

func TestDiscountUpdate_ValorSegunTipoOriginal(t *testing.T) {
	uc := usecase.NewDiscountUseCase(newFakeDiscountRepo())

	resp, err := uc.Create("empresa-1", dto.CreateDiscountRequest{
		Name:     "Aniversario",
		Type:     entity.DiscountTypePercent,
		Value:    decimal.NewFromInt(15),
		StartsAt: time.Now(),
	})
	require.NoError(t, err)

	// 150 sería válido para FIJO, pero el tipo es PORCENTAJE y no se modifica.
	excesivo := decimal.NewFromInt(150)
	_, err = uc.Update("empresa-1", resp.ID, dto.UpdateDiscountRequest{Value: &excesivo})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDiscountUpdate_Inexistente(t *testing.T) {
	uc := usecase.NewDiscountUseCase(newFakeDiscountRepo())

	got, err := uc.Update("empresa-1", "no-existe", dto.UpdateDiscountRequest{})
	require.NoError(t, err)
	assert.Nil(t, got)
}
