package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementación del puerto ExpenseRepository sobre PostgreSQL.
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository construye el adaptador de persistencia para gastos.
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, company_id, branch_id, category, description, amount, date, created_by, created_at, updated_at`

// Create persiste un gasto nuevo.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO expenses (`+expenseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		expense.ID, expense.CompanyID, expense.BranchID, expense.Category, expense.Description,
		expense.Amount, expense.Date, expense.CreatedBy, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID; nil si no existe.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	var e entity.Expense
	err := r.q.QueryRow(context.Background(), `
		SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id).Scan(
		&e.ID, &e.CompanyID, &e.BranchID, &e.Category, &e.Description,
		&e.Amount, &e.Date, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// Update actualiza un gasto existente.
func (r *ExpenseRepo) Update(expense *entity.Expense) error {
	_, err := r.q.Exec(context.Background(), `
		UPDATE expenses SET category = $2, description = $3, amount = $4, date = $5, updated_at = $6
		WHERE id = $1`,
		expense.ID, expense.Category, expense.Description, expense.Amount,
		expense.Date, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// ListByCompany lista gastos por empresa con paginación, más recientes primero.
func (r *ExpenseRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Expense, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT `+expenseColumns+` FROM expenses WHERE company_id = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.BranchID, &e.Category, &e.Description,
			&e.Amount, &e.Date, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina un gasto por ID.
func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
