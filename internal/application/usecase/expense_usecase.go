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

// ExpenseUseCase casos de uso de gastos operativos.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseUseCase construye el caso de uso de gastos.
func NewExpenseUseCase(expenseRepo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo}
}

// Create registra un gasto. El monto debe ser positivo.
func (uc *ExpenseUseCase) Create(companyID, userID string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if strings.TrimSpace(in.Category) == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	now := time.Now()
	expense := &entity.Expense{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		BranchID:    in.BranchID,
		Category:    strings.TrimSpace(in.Category),
		Description: in.Description,
		Amount:      in.Amount,
		Date:        date,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID retorna el gasto si pertenece a la empresa; nil si no existe.
func (uc *ExpenseUseCase) GetByID(companyID, id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	if expense.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return toExpenseResponse(expense), nil
}

// Update aplica los campos presentes.
func (uc *ExpenseUseCase) Update(companyID, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, nil
	}
	if expense.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if in.Category != nil {
		if strings.TrimSpace(*in.Category) == "" {
			return nil, domain.ErrInvalidInput
		}
		expense.Category = strings.TrimSpace(*in.Category)
	}
	if in.Description != nil {
		expense.Description = *in.Description
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		expense.Amount = *in.Amount
	}
	if in.Date != nil {
		expense.Date = *in.Date
	}
	expense.UpdatedAt = time.Now()
	if err := uc.expenseRepo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List retorna los gastos de la empresa paginados.
func (uc *ExpenseUseCase) List(companyID string, page dto.PageRequest) (*dto.ExpenseListResponse, error) {
	page.DefaultPage()
	expenses, err := uc.expenseRepo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, *toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina el gasto si pertenece a la empresa.
func (uc *ExpenseUseCase) Delete(companyID, id string) error {
	expense, err := uc.expenseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	if expense.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.expenseRepo.Delete(id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	return &dto.ExpenseResponse{
		ID:          e.ID,
		CompanyID:   e.CompanyID,
		BranchID:    e.BranchID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
