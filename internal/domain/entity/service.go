package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service representa un servicio vendible (sin inventario asociado).
type Service struct {
	ID              string
	CompanyID       string
	Name            string
	Description     string
	Price           decimal.Decimal
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
