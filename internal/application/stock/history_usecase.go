package stock

import (
	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// HistoryUseCase consulta el historial append-only de entradas y correcciones.
type HistoryUseCase struct {
	intakeRepo repository.StockIntakeRepository
	modRepo    repository.StockModificationRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(intakeRepo repository.StockIntakeRepository, modRepo repository.StockModificationRepository) *HistoryUseCase {
	return &HistoryUseCase{intakeRepo: intakeRepo, modRepo: modRepo}
}

// ListIntakes lista entradas del tenant; variantID vacío = todas.
func (uc *HistoryUseCase) ListIntakes(companyID, variantID string, limit, offset int) (*dto.StockIntakeListResponse, error) {
	list, err := uc.intakeRepo.ListByCompany(companyID, variantID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockIntakeResponse, 0, len(list))
	for _, in := range list {
		items = append(items, toIntakeResponse(in))
	}
	return &dto.StockIntakeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListModifications lista correcciones del tenant; variantID vacío = todas.
func (uc *HistoryUseCase) ListModifications(companyID, variantID string, limit, offset int) (*dto.StockModificationListResponse, error) {
	list, err := uc.modRepo.ListByCompany(companyID, variantID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockModificationResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toModificationResponse(m))
	}
	return &dto.StockModificationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toIntakeResponse(in *entity.StockIntake) dto.StockIntakeResponse {
	return dto.StockIntakeResponse{
		ID:         in.ID,
		CompanyID:  in.CompanyID,
		VariantID:  in.VariantID,
		Quantity:   in.Quantity,
		Value:      in.Value,
		SupplierID: in.SupplierID,
		StaffID:    in.StaffID,
		BranchID:   in.BranchID,
		Reference:  in.Reference,
		CreatedAt:  in.CreatedAt,
		CreatedBy:  in.CreatedBy,
	}
}

func toModificationResponse(m *entity.StockModification) dto.StockModificationResponse {
	return dto.StockModificationResponse{
		ID:               m.ID,
		CompanyID:        m.CompanyID,
		VariantID:        m.VariantID,
		Quantity:         m.Quantity,
		Value:            m.Value,
		PreviousQuantity: m.PreviousQuantity,
		PreviousValue:    m.PreviousValue,
		Reason:           m.Reason,
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
		CreatedBy:        m.CreatedBy,
	}
}
