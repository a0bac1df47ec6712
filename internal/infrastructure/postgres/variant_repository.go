package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantRepo)(nil)

// VariantRepo acceso directo a variantes para el motor de stock. Pasar pool o tx (Querier).
type VariantRepo struct {
	q Querier
}

// NewVariantRepository construye el adaptador de persistencia para variantes.
func NewVariantRepository(q Querier) *VariantRepo {
	return &VariantRepo{q: q}
}

// GetByID obtiene una variante por ID; nil si no existe.
func (r *VariantRepo) GetByID(id string) (*entity.InventoryVariant, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la variante bloqueando la fila (SELECT ... FOR UPDATE).
// Solo tiene sentido con un Querier transaccional: el lock vive hasta el
// Commit/Rollback de la tx.
func (r *VariantRepo) GetForUpdate(id string) (*entity.InventoryVariant, error) {
	return r.get(id, true)
}

func (r *VariantRepo) get(id string, forUpdate bool) (*entity.InventoryVariant, error) {
	query := `
		SELECT ` + variantColumns + `
		FROM inventory_variants WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var v entity.InventoryVariant
	err := scanVariant(r.q.QueryRow(context.Background(), query, id), &v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

// UpdateBalances persiste saldos y estado de la variante tras una mutación de stock.
func (r *VariantRepo) UpdateBalances(v *entity.InventoryVariant) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE inventory_variants SET
			quantity = $2, value = $3,
			actual_quantity = $4, actual_value = $5,
			status = $6, updated_at = $7
		WHERE id = $1`,
		v.ID, v.Quantity, v.Value, v.ActualQuantity, v.ActualValue, v.Status, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update variant balances: %w", err)
	}
	return nil
}

// ListByCompany lista variantes por empresa con paginación.
func (r *VariantRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.InventoryVariant, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT `+variantColumns+`
		FROM inventory_variants WHERE company_id = $1 ORDER BY full_name ASC LIMIT $2 OFFSET $3`,
		companyID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryVariant
	for rows.Next() {
		var v entity.InventoryVariant
		if err := scanVariant(rows, &v); err != nil {
			return nil, err
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
