package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VariantInput variante dentro de un create/update de inventario.
// En updates, un ID vacío significa variante nueva (se trata como creación).
// StartingQuantity/StartingValue solo aplican a variantes nuevas; en las
// existentes los saldos no se tocan por este camino.
type VariantInput struct {
	ID               string          `json:"id,omitempty"`
	Name             string          `json:"name"`
	StartingQuantity decimal.Decimal `json:"starting_quantity"`
	StartingValue    decimal.Decimal `json:"starting_value"`
	LowQuantity      decimal.Decimal `json:"low_quantity"`
}

// CreateInventoryRequest body para POST /api/inventories.
type CreateInventoryRequest struct {
	Title     string         `json:"title"`
	Packaging string         `json:"packaging"`
	Variants  []VariantInput `json:"variants"`
}

// UpdateInventoryRequest body para PUT /api/inventories/:id.
// Sobrescribe el documento completo (título, empaque y arreglo de variantes).
type UpdateInventoryRequest struct {
	Title     string         `json:"title"`
	Packaging string         `json:"packaging"`
	Variants  []VariantInput `json:"variants"`
}

// VariantResponse representación pública de una variante.
type VariantResponse struct {
	ID               string          `json:"id"`
	InventoryID      string          `json:"inventory_id"`
	CompanyID        string          `json:"company_id"`
	Name             string          `json:"name"`
	FullName         string          `json:"full_name"`
	StartingQuantity decimal.Decimal `json:"starting_quantity"`
	StartingValue    decimal.Decimal `json:"starting_value"`
	Quantity         decimal.Decimal `json:"quantity"`
	Value            decimal.Decimal `json:"value"`
	ActualQuantity   decimal.Decimal `json:"actual_quantity"`
	ActualValue      decimal.Decimal `json:"actual_value"`
	LowQuantity      decimal.Decimal `json:"low_quantity"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// InventoryResponse representación pública de un artículo con sus variantes.
type InventoryResponse struct {
	ID        string            `json:"id"`
	CompanyID string            `json:"company_id"`
	Title     string            `json:"title"`
	Packaging string            `json:"packaging"`
	Variants  []VariantResponse `json:"variants"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// InventoryListResponse listado paginado de artículos.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// VariantListResponse listado paginado de variantes (aplanado entre artículos).
type VariantListResponse struct {
	Items []VariantResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
