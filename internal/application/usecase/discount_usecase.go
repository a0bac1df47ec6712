package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// DiscountUseCase casos de uso de descuentos.
type DiscountUseCase struct {
	discountRepo repository.DiscountRepository
}

// NewDiscountUseCase construye el caso de uso de descuentos.
func NewDiscountUseCase(discountRepo repository.DiscountRepository) *DiscountUseCase {
	return &DiscountUseCase{discountRepo: discountRepo}
}

// Create registra un descuento. PORCENTAJE exige valor en (0, 100].
func (uc *DiscountUseCase) Create(companyID string, in dto.CreateDiscountRequest) (*dto.DiscountResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateDiscountValue(in.Type, in.Value); err != nil {
		return nil, err
	}
	if in.EndsAt != nil && !in.EndsAt.After(in.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	discount := &entity.Discount{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      strings.TrimSpace(in.Name),
		Type:      in.Type,
		Value:     in.Value,
		StartsAt:  in.StartsAt,
		EndsAt:    in.EndsAt,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.discountRepo.Create(discount); err != nil {
		return nil, err
	}
	return toDiscountResponse(discount), nil
}

// GetByID retorna el descuento si pertenece a la empresa; nil si no existe.
func (uc *DiscountUseCase) GetByID(companyID, id string) (*dto.DiscountResponse, error) {
	discount, err := uc.discountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, nil
	}
	if discount.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toDiscountResponse(discount), nil
}

// Update aplica los campos presentes. El tipo no se modifica.
func (uc *DiscountUseCase) Update(companyID, id string, in dto.UpdateDiscountRequest) (*dto.DiscountResponse, error) {
	discount, err := uc.discountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, nil
	}
	if discount.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		discount.Name = strings.TrimSpace(*in.Name)
	}
	if in.Value != nil {
		if err := validateDiscountValue(discount.Type, *in.Value); err != nil {
			return nil, err
		}
		discount.Value = *in.Value
	}
	if in.StartsAt != nil {
		discount.StartsAt = *in.StartsAt
	}
	if in.EndsAt != nil {
		discount.EndsAt = in.EndsAt
	}
	if in.Active != nil {
		discount.Active = *in.Active
	}
	if discount.EndsAt != nil && !discount.EndsAt.After(discount.StartsAt) {
		return nil, domain.ErrInvalidInput
	}
	discount.UpdatedAt = time.Now()
	if err := uc.discountRepo.Update(discount); err != nil {
		return nil, err
	}
	return toDiscountResponse(discount), nil
}

// List retorna los descuentos de la empresa paginados.
func (uc *DiscountUseCase) List(companyID string, page dto.PageRequest) (*dto.DiscountListResponse, error) {
	page.DefaultPage()
	discounts, err := uc.discountRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DiscountResponse, 0, len(discounts))
	for _, d := range discounts {
		items = append(items, *toDiscountResponse(d))
	}
	return &dto.DiscountListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina el descuento si pertenece a la empresa.
func (uc *DiscountUseCase) Delete(companyID, id string) error {
	discount, err := uc.discountRepo.GetByID(id)
	if err != nil {
		return err
	}
	if discount == nil {
		return domain.ErrNotFound
	}
	if discount.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.discountRepo.Delete(id)
}

func validateDiscountValue(discountType string, value decimal.Decimal) error {
	switch discountType {
	case entity.DiscountTypePercent:
		if !value.IsPositive() || value.GreaterThan(decimal.NewFromInt(100)) {
			return domain.ErrInvalidInput
		}
	case entity.DiscountTypeFixed:
		if !value.IsPositive() {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

func toDiscountResponse(d *entity.Discount) *dto.DiscountResponse {
	return &dto.DiscountResponse{
		ID:        d.ID,
		CompanyID: d.CompanyID,
		Name:      d.Name,
		Type:      d.Type,
		Value:     d.Value,
		StartsAt:  d.StartsAt,
		EndsAt:    d.EndsAt,
		Active:    d.Active,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
