package entity

import "time"

// Company representa una organización/tenant del sistema. Todas las consultas
// de negocio se filtran por su ID; no hay almacenamiento físico separado.
type Company struct {
	ID        string
	Name      string
	NIT       string // NIT colombiano (con o sin dígito de verificación)
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
