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

// ServiceUseCase casos de uso de servicios vendibles.
type ServiceUseCase struct {
	serviceRepo repository.ServiceRepository
}

// NewServiceUseCase construye el caso de uso de servicios.
func NewServiceUseCase(serviceRepo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{serviceRepo: serviceRepo}
}

// Create registra un servicio.
func (uc *ServiceUseCase) Create(companyID string, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	service := &entity.Service{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.serviceRepo.Create(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// GetByID retorna el servicio si pertenece a la empresa; nil si no existe.
func (uc *ServiceUseCase) GetByID(companyID, id string) (*dto.ServiceResponse, error) {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	if service.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toServiceResponse(service), nil
}

// Update aplica los campos presentes.
func (uc *ServiceUseCase) Update(companyID, id string, in dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, nil
	}
	if service.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		service.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		service.Price = *in.Price
	}
	if in.DurationMinutes != nil {
		service.DurationMinutes = *in.DurationMinutes
	}
	service.UpdatedAt = time.Now()
	if err := uc.serviceRepo.Update(service); err != nil {
		return nil, err
	}
	return toServiceResponse(service), nil
}

// List retorna los servicios de la empresa paginados.
func (uc *ServiceUseCase) List(companyID string, page dto.PageRequest) (*dto.ServiceListResponse, error) {
	page.DefaultPage()
	services, err := uc.serviceRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		items = append(items, *toServiceResponse(s))
	}
	return &dto.ServiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina el servicio si pertenece a la empresa.
func (uc *ServiceUseCase) Delete(companyID, id string) error {
	service, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if service == nil {
		return domain.ErrNotFound
	}
	if service.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.serviceRepo.Delete(id)
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:              s.ID,
		CompanyID:       s.CompanyID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
