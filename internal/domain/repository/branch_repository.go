package repository

import "github.com/jhoicas/Comercio-api/internal/domain/entity"

// BranchRepository define el puerto de persistencia para Branch (DIP).
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	Update(branch *entity.Branch) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Branch, error)
	Delete(id string) error
}
