package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.DiscountRepository = (*DiscountRepo)(nil)

// DiscountRepo implementación del puerto DiscountRepository sobre PostgreSQL.
type DiscountRepo struct {
	q Querier
}

// NewDiscountRepository construye el adaptador de persistencia para descuentos.
func NewDiscountRepository(q Querier) *DiscountRepo {
	return &DiscountRepo{q: q}
}

const discountColumns = `id, company_id, name, type, value, starts_at, ends_at, active, created_at, updated_at`

// Create persiste un descuento nuevo.
func (r *DiscountRepo) Create(discount *entity.Discount) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO discounts (`+discountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		discount.ID, discount.CompanyID, discount.Name, discount.Type, discount.Value,
		discount.StartsAt, discount.EndsAt, discount.Active, discount.CreatedAt, discount.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert discount: %w", err)
	}
	return nil
}

// GetByID obtiene un descuento por ID; nil si no existe.
func (r *DiscountRepo) GetByID(id string) (*entity.Discount, error) {
	var d entity.Discount
	err := r.q.QueryRow(context.Background(), `
		SELECT `+discountColumns+` FROM discounts WHERE id = $1`, id).Scan(
		&d.ID, &d.CompanyID, &d.Name, &d.Type, &d.Value,
		&d.StartsAt, &d.EndsAt, &d.Active, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get discount: %w", err)
	}
	return &d, nil
}

// Update actualiza un descuento existente. El tipo no se modifica.
func (r *DiscountRepo) Update(discount *entity.Discount) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE discounts SET name = $2, value = $3, starts_at = $4, ends_at = $5, active = $6, updated_at = $7
		WHERE id = $1`,
		discount.ID, discount.Name, discount.Value, discount.StartsAt,
		discount.EndsAt, discount.Active, discount.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update discount: %w", err)
	}
	return nil
}

// ListByCompany lista descuentos por empresa con paginación.
func (r *DiscountRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Discount, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT `+discountColumns+` FROM discounts WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list discounts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Discount
	for rows.Next() {
		var d entity.Discount
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name, &d.Type, &d.Value,
			&d.StartsAt, &d.EndsAt, &d.Active, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan discount: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina un descuento por ID.
func (r *DiscountRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM discounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete discount: %w", err)
	}
	return nil
}
