package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// DiscountRepository define el puerto de persistencia para Discount (DIP).
type DiscountRepository interface {
	Create(discount *entity.Discount) error
	GetByID(id string) (*entity.Discount, error)
	Update(discount *entity.Discount) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Discount, error)
	Delete(id string) error
}
