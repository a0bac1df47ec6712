package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// StockIntakeRepository persiste las entradas de stock (append-only).
type StockIntakeRepository interface {
	Create(intake *entity.StockIntake) error
	// ListByCompany lista entradas del tenant; variantID vacío = todas.
	ListByCompany(companyID, variantID string, limit, offset int) ([]*entity.StockIntake, error)
}
