package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockIntakeLine una línea de entrada dentro de un lote.
type StockIntakeLine struct {
	VariantID  string          `json:"variant_id"`
	Quantity   decimal.Decimal `json:"quantity"` // debe ser > 0
	Value      decimal.Decimal `json:"value"`    // debe ser >= 0
	SupplierID string          `json:"supplier_id"`
	StaffID    *string         `json:"staff_id,omitempty"`
	BranchID   *string         `json:"branch_id,omitempty"`
	Reference  string          `json:"reference,omitempty"`
}

// RecordIntakeRequest body para POST /api/stock/intakes.
// Todas las líneas se aplican en una sola transacción: o entran todas o ninguna.
type RecordIntakeRequest struct {
	Lines []StockIntakeLine `json:"lines"`
}

// RecordCorrectionRequest body para POST /api/stock/corrections.
// Quantity/Value son valores absolutos objetivo, no deltas.
type RecordCorrectionRequest struct {
	VariantID string          `json:"variant_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Value     decimal.Decimal `json:"value"`
	Reason    string          `json:"reason"` // RECUENTO | DANO | VENCIDO | ROBO | USO_INTERNO
	Notes     string          `json:"notes,omitempty"`
}

// StockIntakeResponse entrada registrada.
type StockIntakeResponse struct {
	ID         string          `json:"id"`
	CompanyID  string          `json:"company_id"`
	VariantID  string          `json:"variant_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	Value      decimal.Decimal `json:"value"`
	SupplierID string          `json:"supplier_id"`
	StaffID    *string         `json:"staff_id,omitempty"`
	BranchID   *string         `json:"branch_id,omitempty"`
	Reference  string          `json:"reference,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	CreatedBy  string          `json:"created_by"`
}

// StockIntakeListResponse listado paginado de entradas.
type StockIntakeListResponse struct {
	Items []StockIntakeResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// StockModificationResponse corrección registrada con contexto anterior → nuevo.
type StockModificationResponse struct {
	ID               string          `json:"id"`
	CompanyID        string          `json:"company_id"`
	VariantID        string          `json:"variant_id"`
	Quantity         decimal.Decimal `json:"quantity"`
	Value            decimal.Decimal `json:"value"`
	PreviousQuantity decimal.Decimal `json:"previous_quantity"`
	PreviousValue    decimal.Decimal `json:"previous_value"`
	Reason           string          `json:"reason"`
	Notes            string          `json:"notes,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	CreatedBy        string          `json:"created_by"`
}

// StockModificationListResponse listado paginado de correcciones.
type StockModificationListResponse struct {
	Items []StockModificationResponse `json:"items"`
	Page  PageResponse                `json:"page"`
}
