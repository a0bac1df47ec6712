package entity

import "time"

// Roles disponibles para el personal.
const (
	RoleAdmin     = "admin"
	RoleBodeguero = "bodeguero"
	RoleVendedor  = "vendedor"
)

// User representa un miembro del personal con acceso al back-office.
type User struct {
	ID           string
	CompanyID    string
	BranchID     *string // sucursal asignada; nil = todas
	Email        string
	PasswordHash string
	Name         string
	Role         string // ver constantes Role*
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
