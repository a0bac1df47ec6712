package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// BranchUseCase casos de uso de sucursales.
type BranchUseCase struct {
	branchRepo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso de sucursales.
func NewBranchUseCase(branchRepo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{branchRepo: branchRepo}
}

// Create registra una sucursal para la empresa autenticada.
func (uc *BranchUseCase) Create(companyID string, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      strings.TrimSpace(in.Name),
		Address:   in.Address,
		Phone:     in.Phone,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.branchRepo.Create(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// GetByID retorna la sucursal si pertenece a la empresa; nil si no existe.
func (uc *BranchUseCase) GetByID(companyID, id string) (*dto.BranchResponse, error) {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	if branch.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toBranchResponse(branch), nil
}

// Update aplica campos presentes (PATCH semántico sobre PUT).
func (uc *BranchUseCase) Update(companyID, id string, in dto.UpdateBranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	if branch.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		branch.Name = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		branch.Address = *in.Address
	}
	if in.Phone != nil {
		branch.Phone = *in.Phone
	}
	if in.Status != nil {
		branch.Status = *in.Status
	}
	branch.UpdatedAt = time.Now()
	if err := uc.branchRepo.Update(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// List retorna las sucursales de la empresa paginadas.
func (uc *BranchUseCase) List(companyID string, page dto.PageRequest) (*dto.BranchListResponse, error) {
	page.DefaultPage()
	branches, err := uc.branchRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(branches))
	for _, b := range branches {
		items = append(items, *toBranchResponse(b))
	}
	return &dto.BranchListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina la sucursal si pertenece a la empresa.
func (uc *BranchUseCase) Delete(companyID, id string) error {
	branch, err := uc.branchRepo.GetByID(id)
	if err != nil {
		return err
	}
	if branch == nil {
		return domain.ErrNotFound
	}
	if branch.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.branchRepo.Delete(id)
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{
		ID:        b.ID,
		CompanyID: b.CompanyID,
		Name:      b.Name,
		Address:   b.Address,
		Phone:     b.Phone,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
