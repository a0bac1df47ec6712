package stock

import (
	"context"

	"github.com/jhoicas/Comercio-api/internal/domain"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
	"github.com/jhoicas/Comercio-api/internal/domain/repository"
)

// Tope de filas en reportes; evita cargar catálogos enteros sin límite.
const reportMaxRows = 1000

// StockReportGenerator genera la representación PDF del reporte de valoración
// de stock (puerto implementado en infrastructure/pdf).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, company *entity.Company, variants []*entity.InventoryVariant) ([]byte, error)
}

// IntakeLedgerExporter serializa el historial de entradas como XML canónico y
// devuelve además el digest de auditoría (puerto implementado en
// infrastructure/xmlexport).
type IntakeLedgerExporter interface {
	Export(company *entity.Company, intakes []*entity.StockIntake) (canonical []byte, digest string, err error)
}

// ReportUseCase produce los reportes de stock: PDF de valoración y export XML
// del ledger de entradas.
type ReportUseCase struct {
	companyRepo repository.CompanyRepository
	variantRepo repository.VariantRepository
	intakeRepo  repository.StockIntakeRepository
	pdfGen      StockReportGenerator
	xmlExporter IntakeLedgerExporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	companyRepo repository.CompanyRepository,
	variantRepo repository.VariantRepository,
	intakeRepo repository.StockIntakeRepository,
	pdfGen StockReportGenerator,
	xmlExporter IntakeLedgerExporter,
) *ReportUseCase {
	return &ReportUseCase{
		companyRepo: companyRepo,
		variantRepo: variantRepo,
		intakeRepo:  intakeRepo,
		pdfGen:      pdfGen,
		xmlExporter: xmlExporter,
	}
}

// StockReportPDF genera el PDF de valoración de stock del tenant: una fila por
// variante con saldo visible, valor y estado.
func (uc *ReportUseCase) StockReportPDF(ctx context.Context, companyID string) ([]byte, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	variants, err := uc.variantRepo.ListByCompany(companyID, reportMaxRows, 0)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateStockReport(ctx, company, variants)
}

// ExportIntakesXML exporta el historial de entradas como XML canónico con su
// digest SHA-256 (para conciliación contable externa).
func (uc *ReportUseCase) ExportIntakesXML(companyID string) ([]byte, string, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, "", err
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}
	intakes, err := uc.intakeRepo.ListByCompany(companyID, "", reportMaxRows, 0)
	if err != nil {
		return nil, "", err
	}
	return uc.xmlExporter.Export(company, intakes)
}
