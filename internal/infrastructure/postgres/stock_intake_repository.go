package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.StockIntakeRepository = (*StockIntakeRepo)(nil)

// StockIntakeRepo persistencia de entradas de stock. Append-only: no hay
// UPDATE ni DELETE sobre esta tabla. Pasar pool o tx (Querier).
type StockIntakeRepo struct {
	q Querier
}

// NewStockIntakeRepository construye el adaptador de persistencia para entradas.
func NewStockIntakeRepository(q Querier) *StockIntakeRepo {
	return &StockIntakeRepo{q: q}
}

// Create persiste una entrada de mercancía.
func (r *StockIntakeRepo) Create(intake *entity.StockIntake) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO stock_intakes (id, company_id, variant_id, quantity, value, supplier_id, staff_id, branch_id, reference, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		intake.ID, intake.CompanyID, intake.VariantID, intake.Quantity, intake.Value,
		intake.SupplierID, intake.StaffID, intake.BranchID, intake.Reference,
		intake.CreatedAt, intake.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock intake: %w", err)
	}
	return nil
}

// ListByCompany lista entradas del tenant, más recientes primero; variantID vacío = todas.
func (r *StockIntakeRepo) ListByCompany(companyID, variantID string, limit, offset int) ([]*entity.StockIntake, error) {
	query := `
		SELECT id, company_id, variant_id, quantity, value, supplier_id, staff_id, branch_id, reference, created_at, created_by
		FROM stock_intakes
		WHERE company_id = $1 AND ($2 = '' OR variant_id = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, companyID, variantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock intakes: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockIntake
	for rows.Next() {
		var in entity.StockIntake
		if err := rows.Scan(
			&in.ID, &in.CompanyID, &in.VariantID, &in.Quantity, &in.Value,
			&in.SupplierID, &in.StaffID, &in.BranchID, &in.Reference,
			&in.CreatedAt, &in.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan stock intake: %w", err)
		}
		list = append(list, &in)
	}
	return list, rows.Err()
}
