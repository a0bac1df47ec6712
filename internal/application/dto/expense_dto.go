package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	BranchID    *string         `json:"branch_id,omitempty"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}

// UpdateExpenseRequest body para PUT /api/expenses/:id (campos opcionales).
type UpdateExpenseRequest struct {
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *time.Time       `json:"date,omitempty"`
}

// ExpenseResponse representación pública de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	BranchID    *string         `json:"branch_id,omitempty"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ExpenseListResponse listado paginado de gastos.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
