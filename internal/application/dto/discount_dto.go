package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDiscountRequest body para POST /api/discounts.
type CreateDiscountRequest struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"` // PORCENTAJE | FIJO
	Value    decimal.Decimal `json:"value"`
	StartsAt time.Time       `json:"starts_at"`
	EndsAt   *time.Time      `json:"ends_at,omitempty"`
}

// UpdateDiscountRequest body para PUT /api/discounts/:id (campos opcionales).
type UpdateDiscountRequest struct {
	Name     *string          `json:"name,omitempty"`
	Value    *decimal.Decimal `json:"value,omitempty"`
	StartsAt *time.Time       `json:"starts_at,omitempty"`
	EndsAt   *time.Time       `json:"ends_at,omitempty"`
	Active   *bool            `json:"active,omitempty"`
}

// DiscountResponse representación pública de un descuento.
type DiscountResponse struct {
	ID        string          `json:"id"`
	CompanyID string          `json:"company_id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Value     decimal.Decimal `json:"value"`
	StartsAt  time.Time       `json:"starts_at"`
	EndsAt    *time.Time      `json:"ends_at,omitempty"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// DiscountListResponse listado paginado de descuentos.
type DiscountListResponse struct {
	Items []DiscountResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
