package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
// Update sobrescribe el documento completo, variantes incluidas; no hay
// actualización parcial de campos.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	Update(inv *entity.Inventory) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Inventory, error)
	Delete(id string) error
}

// VariantRepository expone las variantes de forma individual para el motor de
// stock. GetForUpdate bloquea la fila (SELECT FOR UPDATE) y solo debe usarse
// dentro de una transacción.
type VariantRepository interface {
	GetByID(id string) (*entity.InventoryVariant, error)
	GetForUpdate(id string) (*entity.InventoryVariant, error)
	UpdateBalances(v *entity.InventoryVariant) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.InventoryVariant, error)
}
