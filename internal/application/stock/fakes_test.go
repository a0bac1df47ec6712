package stock_test

import (
	"context"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria para los casos de uso del motor de stock.
// fakeTxRunner emula el Rollback restaurando un snapshot cuando fn falla,
// para poder verificar la atomicidad del lote sin una base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeVariantRepo struct {
	variants map[string]entity.InventoryVariant
}

func newFakeVariantRepo(vs ...entity.InventoryVariant) *fakeVariantRepo {
	r := &fakeVariantRepo{variants: make(map[string]entity.InventoryVariant)}
	for _, v := range vs {
		r.variants[v.ID] = v
	}
	return r
}

func (r *fakeVariantRepo) GetByID(id string) (*entity.InventoryVariant, error) {
	v, ok := r.variants[id]
	if !ok {
		return nil, nil
	}
	cp := v
	return &cp, nil
}

func (r *fakeVariantRepo) GetForUpdate(id string) (*entity.InventoryVariant, error) {
	return r.GetByID(id)
}

func (r *fakeVariantRepo) UpdateBalances(v *entity.InventoryVariant) error {
	r.variants[v.ID] = *v
	return nil
}

func (r *fakeVariantRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.InventoryVariant, error) {
	out := make([]*entity.InventoryVariant, 0)
	for _, v := range r.variants {
		if v.CompanyID == companyID {
			cp := v
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeIntakeRepo struct {
	created []*entity.StockIntake
}

func (r *fakeIntakeRepo) Create(in *entity.StockIntake) error {
	cp := *in
	r.created = append(r.created, &cp)
	return nil
}

func (r *fakeIntakeRepo) ListByCompany(companyID, variantID string, limit, offset int) ([]*entity.StockIntake, error) {
	out := make([]*entity.StockIntake, 0)
	for _, in := range r.created {
		if in.CompanyID != companyID {
			continue
		}
		if variantID != "" && in.VariantID != variantID {
			continue
		}
		out = append(out, in)
	}
	return out, nil
}

type fakeModRepo struct {
	created []*entity.StockModification
}

func (r *fakeModRepo) Create(m *entity.StockModification) error {
	cp := *m
	r.created = append(r.created, &cp)
	return nil
}

func (r *fakeModRepo) ListByCompany(companyID, variantID string, limit, offset int) ([]*entity.StockModification, error) {
	out := make([]*entity.StockModification, 0)
	for _, m := range r.created {
		if m.CompanyID != companyID {
			continue
		}
		if variantID != "" && m.VariantID != variantID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fakeTxRunner struct {
	variantRepo *fakeVariantRepo
	intakeRepo  *fakeIntakeRepo
	modRepo     *fakeModRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	variantRepo repository.VariantRepository,
	intakeRepo repository.StockIntakeRepository,
	modRepo repository.StockModificationRepository,
) error) error {
	// Snapshot para emular Rollback si fn falla.
	snapshot := make(map[string]entity.InventoryVariant, len(r.variantRepo.variants))
	for k, v := range r.variantRepo.variants {
		snapshot[k] = v
	}
	intakesBefore := len(r.intakeRepo.created)
	modsBefore := len(r.modRepo.created)

	if err := fn(r.variantRepo, r.intakeRepo, r.modRepo); err != nil {
		r.variantRepo.variants = snapshot
		r.intakeRepo.created = r.intakeRepo.created[:intakesBefore]
		r.modRepo.created = r.modRepo.created[:modsBefore]
		return err
	}
	return nil
}

type fakeInventoryRepo struct {
	byID map[string]*entity.Inventory
}

func newFakeInventoryRepo(invs ...*entity.Inventory) *fakeInventoryRepo {
	r := &fakeInventoryRepo{byID: make(map[string]*entity.Inventory)}
	for _, inv := range invs {
		cp := *inv
		r.byID[inv.ID] = &cp
	}
	return r
}

func (r *fakeInventoryRepo) Create(inv *entity.Inventory) error {
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *fakeInventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	inv, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	cp.Variants = append([]entity.InventoryVariant(nil), inv.Variants...)
	return &cp, nil
}

func (r *fakeInventoryRepo) Update(inv *entity.Inventory) error {
	cp := *inv
	cp.Variants = append([]entity.InventoryVariant(nil), inv.Variants...)
	r.byID[inv.ID] = &cp
	return nil
}

func (r *fakeInventoryRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Inventory, error) {
	out := make([]*entity.Inventory, 0)
	for _, inv := range r.byID {
		if inv.CompanyID == companyID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}
