package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// StockModificationRepository persiste las correcciones de stock (append-only).
type StockModificationRepository interface {
	Create(mod *entity.StockModification) error
	// ListByCompany lista correcciones del tenant; variantID vacío = todas.
	ListByCompany(companyID, variantID string, limit, offset int) ([]*entity.StockModification, error)
}
