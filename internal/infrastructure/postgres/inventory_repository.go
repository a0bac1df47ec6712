package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL.
// Un Inventory se persiste en dos tablas: inventories (la definición) e
// inventory_variants (sus variantes). Pasar pool o tx (Querier).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia para artículos de stock.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const variantColumns = `id, inventory_id, company_id, name, full_name,
	starting_quantity, starting_value, quantity, value, actual_quantity, actual_value,
	low_quantity, status, created_at, updated_at`

// Create persiste el artículo y todas sus variantes.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	ctx := context.Background()
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventories (id, company_id, title, packaging, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		inv.ID, inv.CompanyID, inv.Title, inv.Packaging, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	for i := range inv.Variants {
		if err := r.insertVariant(ctx, &inv.Variants[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene el artículo con sus variantes; nil si no existe.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	ctx := context.Background()
	var inv entity.Inventory
	err := r.q.QueryRow(ctx, `
		SELECT id, company_id, title, packaging, created_at, updated_at
		FROM inventories WHERE id = $1`, id).Scan(
		&inv.ID, &inv.CompanyID, &inv.Title, &inv.Packaging, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	variants, err := r.variantsByInventory(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Variants = variants
	return &inv, nil
}

// Update sobrescribe el documento completo: actualiza la cabecera, hace upsert
// de cada variante recibida y elimina las que ya no vienen en la lista.
func (r *InventoryRepo) Update(inv *entity.Inventory) error {
	ctx := context.Background()
	cmd, err := r.q.Exec(ctx, `
		UPDATE inventories SET title = $2, packaging = $3, updated_at = $4
		WHERE id = $1`,
		inv.ID, inv.Title, inv.Packaging, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	keep := make([]string, 0, len(inv.Variants))
	for i := range inv.Variants {
		v := &inv.Variants[i]
		keep = append(keep, v.ID)
		if err := r.upsertVariant(ctx, v); err != nil {
			return err
		}
	}
	_, err = r.q.Exec(ctx, `
		DELETE FROM inventory_variants WHERE inventory_id = $1 AND id <> ALL($2)`,
		inv.ID, keep,
	)
	if err != nil {
		return fmt.Errorf("prune variants: %w", err)
	}
	return nil
}

// ListByCompany lista artículos por empresa con paginación, variantes incluidas.
func (r *InventoryRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Inventory, error) {
	ctx := context.Background()
	rows, err := r.q.Query(ctx, `
		SELECT id, company_id, title, packaging, created_at, updated_at
		FROM inventories WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		companyID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list inventories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.CompanyID, &inv.Title, &inv.Packaging, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, inv := range list {
		variants, err := r.variantsByInventory(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		inv.Variants = variants
	}
	return list, nil
}

// Delete elimina el artículo; las variantes caen por ON DELETE CASCADE.
func (r *InventoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepo) insertVariant(ctx context.Context, v *entity.InventoryVariant) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_variants (`+variantColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		v.ID, v.InventoryID, v.CompanyID, v.Name, v.FullName,
		v.StartingQuantity, v.StartingValue, v.Quantity, v.Value, v.ActualQuantity, v.ActualValue,
		v.LowQuantity, v.Status, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert variant: %w", err)
	}
	return nil
}

// upsertVariant inserta la variante o, si ya existe, actualiza solo los campos
// editables del catálogo. Los saldos y los iniciales no se tocan aquí: esos
// mutan únicamente vía VariantRepo.UpdateBalances dentro del motor de stock.
func (r *InventoryRepo) upsertVariant(ctx context.Context, v *entity.InventoryVariant) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO inventory_variants (`+variantColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			full_name = EXCLUDED.full_name,
			low_quantity = EXCLUDED.low_quantity,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`,
		v.ID, v.InventoryID, v.CompanyID, v.Name, v.FullName,
		v.StartingQuantity, v.StartingValue, v.Quantity, v.Value, v.ActualQuantity, v.ActualValue,
		v.LowQuantity, v.Status, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert variant: %w", err)
	}
	return nil
}

func (r *InventoryRepo) variantsByInventory(ctx context.Context, inventoryID string) ([]entity.InventoryVariant, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+variantColumns+`
		FROM inventory_variants WHERE inventory_id = $1 ORDER BY created_at ASC`,
		inventoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()
	var variants []entity.InventoryVariant
	for rows.Next() {
		var v entity.InventoryVariant
		if err := scanVariant(rows, &v); err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

func scanVariant(row pgx.Row, v *entity.InventoryVariant) error {
	if err := row.Scan(
		&v.ID, &v.InventoryID, &v.CompanyID, &v.Name, &v.FullName,
		&v.StartingQuantity, &v.StartingValue, &v.Quantity, &v.Value, &v.ActualQuantity, &v.ActualValue,
		&v.LowQuantity, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return fmt.Errorf("scan variant: %w", err)
	}
	return nil
}
