package entity

import "time"

// Branch representa una sucursal o punto de venta de la empresa.
type Branch struct {
	ID        string
	CompanyID string
	Name      string
	Address   string
	Phone     string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
