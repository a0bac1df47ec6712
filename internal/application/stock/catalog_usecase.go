package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/application/dto"
	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
	"github.com/jhoicas/Comercio-api/internal/domain/stock"
)

// CatalogUseCase administra el catálogo de artículos de stock y sus variantes:
// creación, edición (sobrescritura del documento completo), listados y borrado.
// Los saldos vivos de las variantes solo se mutan por entradas y correcciones;
// este caso de uso únicamente los inicializa en la creación.
type CatalogUseCase struct {
	invRepo       repository.InventoryRepository
	variantRepo   repository.VariantRepository
	alarmQuantity decimal.Decimal
}

// NewCatalogUseCase construye el caso de uso. alarmQuantity viene de la
// configuración (STOCK_ALARM_QUANTITY) y se inyecta para poder variarla por test.
func NewCatalogUseCase(invRepo repository.InventoryRepository, variantRepo repository.VariantRepository, alarmQuantity decimal.Decimal) *CatalogUseCase {
	return &CatalogUseCase{invRepo: invRepo, variantRepo: variantRepo, alarmQuantity: alarmQuantity}
}

// Create crea un artículo con al menos una variante. Para cada variante los
// saldos iniciales se copian tal cual a ambos libros (real y visible) y el
// estado se deriva de la cantidad inicial.
func (uc *CatalogUseCase) Create(companyID string, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if err := validateCatalogInput(in.Title, in.Packaging, in.Variants); err != nil {
		return nil, err
	}
	now := time.Now()
	inv := &entity.Inventory{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Title:     in.Title,
		Packaging: in.Packaging,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, vin := range in.Variants {
		inv.Variants = append(inv.Variants, uc.newVariant(inv, vin, now))
	}
	if err := uc.invRepo.Create(inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// Update sobrescribe el documento completo (título, empaque y arreglo de
// variantes) en una sola llamada. Las variantes con ID existente conservan sus
// saldos y valores iniciales; se les recalcula el nombre completo y el estado
// a partir de su cantidad visible *actual* (autocorrección tras editar
// umbrales). Las variantes sin ID se tratan como en la creación.
func (uc *CatalogUseCase) Update(id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	current, err := uc.invRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	if err := validateCatalogInput(in.Title, in.Packaging, in.Variants); err != nil {
		return nil, err
	}

	existing := make(map[string]entity.InventoryVariant, len(current.Variants))
	for _, v := range current.Variants {
		existing[v.ID] = v
	}

	now := time.Now()
	current.Title = in.Title
	current.Packaging = in.Packaging
	current.UpdatedAt = now
	current.Variants = current.Variants[:0]
	for _, vin := range in.Variants {
		prev, found := existing[vin.ID]
		if vin.ID == "" || !found {
			current.Variants = append(current.Variants, uc.newVariant(current, vin, now))
			continue
		}
		prev.Name = vin.Name
		prev.LowQuantity = vin.LowQuantity
		prev.FullName = stock.BuildFullName(in.Title, in.Packaging, vin.Name)
		prev.Status = stock.DeriveStatus(prev.Quantity, prev.LowQuantity, uc.alarmQuantity)
		prev.UpdatedAt = now
		current.Variants = append(current.Variants, prev)
	}

	if err := uc.invRepo.Update(current); err != nil {
		return nil, err
	}
	return toInventoryResponse(current), nil
}

// GetByID obtiene un artículo con sus variantes.
func (uc *CatalogUseCase) GetByID(id string) (*dto.InventoryResponse, error) {
	inv, err := uc.invRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	return toInventoryResponse(inv), nil
}

// List lista artículos por empresa con paginación.
func (uc *CatalogUseCase) List(companyID string, limit, offset int) (*dto.InventoryListResponse, error) {
	list, err := uc.invRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInventoryResponse(inv))
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un artículo y sus variantes embebidas.
func (uc *CatalogUseCase) Delete(id string) error {
	return uc.invRepo.Delete(id)
}

// ListVariants lista las variantes del tenant aplanadas entre artículos.
func (uc *CatalogUseCase) ListVariants(companyID string, limit, offset int) (*dto.VariantListResponse, error) {
	list, err := uc.variantRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VariantResponse, 0, len(list))
	for _, v := range list {
		items = append(items, toVariantResponse(*v))
	}
	return &dto.VariantListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetVariant obtiene una variante por ID; nil si no existe.
func (uc *CatalogUseCase) GetVariant(id string) (*dto.VariantResponse, error) {
	v, err := uc.variantRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	resp := toVariantResponse(*v)
	return &resp, nil
}

// newVariant construye una variante nueva: saldos iniciales copiados a ambos
// libros y estado derivado de la cantidad inicial.
func (uc *CatalogUseCase) newVariant(inv *entity.Inventory, in dto.VariantInput, now time.Time) entity.InventoryVariant {
	return entity.InventoryVariant{
		ID:               uuid.New().String(),
		InventoryID:      inv.ID,
		CompanyID:        inv.CompanyID,
		Name:             in.Name,
		FullName:         stock.BuildFullName(inv.Title, inv.Packaging, in.Name),
		StartingQuantity: in.StartingQuantity,
		StartingValue:    in.StartingValue,
		Quantity:         in.StartingQuantity,
		Value:            in.StartingValue,
		ActualQuantity:   in.StartingQuantity,
		ActualValue:      in.StartingValue,
		LowQuantity:      in.LowQuantity,
		Status:           stock.DeriveStatus(in.StartingQuantity, in.LowQuantity, uc.alarmQuantity),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func validateCatalogInput(title, packaging string, variants []dto.VariantInput) error {
	if title == "" || packaging == "" {
		return domain.ErrInvalidInput
	}
	if len(variants) == 0 {
		return domain.ErrInvalidInput
	}
	for _, v := range variants {
		if v.Name == "" {
			return domain.ErrInvalidInput
		}
		if v.StartingQuantity.IsNegative() || v.StartingValue.IsNegative() || v.LowQuantity.IsNegative() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func toVariantResponse(v entity.InventoryVariant) dto.VariantResponse {
	return dto.VariantResponse{
		ID:               v.ID,
		InventoryID:      v.InventoryID,
		CompanyID:        v.CompanyID,
		Name:             v.Name,
		FullName:         v.FullName,
		StartingQuantity: v.StartingQuantity,
		StartingValue:    v.StartingValue,
		Quantity:         v.Quantity,
		Value:            v.Value,
		ActualQuantity:   v.ActualQuantity,
		ActualValue:      v.ActualValue,
		LowQuantity:      v.LowQuantity,
		Status:           v.Status,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	if inv == nil {
		return nil
	}
	variants := make([]dto.VariantResponse, 0, len(inv.Variants))
	for _, v := range inv.Variants {
		variants = append(variants, toVariantResponse(v))
	}
	return &dto.InventoryResponse{
		ID:        inv.ID,
		CompanyID: inv.CompanyID,
		Title:     inv.Title,
		Packaging: inv.Packaging,
		Variants:  variants,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}
