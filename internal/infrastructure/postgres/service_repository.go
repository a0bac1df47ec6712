package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación del puerto ServiceRepository sobre PostgreSQL.
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador de persistencia para servicios.
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persiste un servicio nuevo.
func (r *ServiceRepo) Create(service *entity.Service) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO services (id, company_id, name, description, price, duration_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		service.ID, service.CompanyID, service.Name, service.Description,
		service.Price, service.DurationMinutes, service.CreatedAt, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID; nil si no existe.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	var s entity.Service
	err := r.q.QueryRow(context.Background(), `
		SELECT id, company_id, name, description, price, duration_minutes, created_at, updated_at
		FROM services WHERE id = $1`, id).Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.Description, &s.Price, &s.DurationMinutes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// Update actualiza un servicio existente.
func (r *ServiceRepo) Update(service *entity.Service) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE services SET name = $2, description = $3, price = $4, duration_minutes = $5, updated_at = $6
		WHERE id = $1`,
		service.ID, service.Name, service.Description, service.Price,
		service.DurationMinutes, service.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// ListByCompany lista servicios por empresa con paginación.
func (r *ServiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Service, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, company_id, name, description, price, duration_minutes, created_at, updated_at
		FROM services WHERE company_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.Description, &s.Price,
			&s.DurationMinutes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un servicio por ID.
func (r *ServiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
