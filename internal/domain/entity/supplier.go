package entity

import "time"

// Supplier representa un proveedor de mercancía; referenciado por las entradas de stock.
type Supplier struct {
	ID          string
	CompanyID   string
	Name        string
	NIT         string
	ContactName string
	Phone       string
	Email       string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
