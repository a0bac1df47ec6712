package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.StockModificationRepository = (*StockModificationRepo)(nil)

// StockModificationRepo persistencia de correcciones de stock. Append-only. Pasar pool o tx (Querier).
type StockModificationRepo struct {
	q Querier
}

// NewStockModificationRepository construye el adaptador de persistencia para correcciones.
func NewStockModificationRepository(q Querier) *StockModificationRepo {
	return &StockModificationRepo{q: q}
}

// Create persiste una corrección manual.
func (r *StockModificationRepo) Create(mod *entity.StockModification) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO stock_modifications (id, company_id, variant_id, quantity, value, previous_quantity, previous_value, reason, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		mod.ID, mod.CompanyID, mod.VariantID, mod.Quantity, mod.Value,
		mod.PreviousQuantity, mod.PreviousValue, mod.Reason, mod.Notes,
		mod.CreatedAt, mod.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock modification: %w", err)
	}
	return nil
}

// ListByCompany lista correcciones del tenant, más recientes primero; variantID vacío = todas.
func (r *StockModificationRepo) ListByCompany(companyID, variantID string, limit, offset int) ([]*entity.StockModification, error) {
	query := `
		SELECT id, company_id, variant_id, quantity, value, previous_quantity, previous_value, reason, notes, created_at, created_by
		FROM stock_modifications
		WHERE company_id = $1 AND ($2 = '' OR variant_id = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, variantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock modifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockModification
	for rows.Next() {
		var m entity.StockModification
		if err := rows.Scan(
			&m.ID, &m.CompanyID, &m.VariantID, &m.Quantity, &m.Value,
			&m.PreviousQuantity, &m.PreviousValue, &m.Reason, &m.Notes,
			&m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan stock modification: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
