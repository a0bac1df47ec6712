package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Comercio-api/internal/application/auth"
	appstock "github.com/jhoicas/Comercio-api/internal/application/stock"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
	"github.com/jhoicas/Comercio-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CompanyUC  *usecase.CompanyUseCase
	BranchUC   *usecase.BranchUseCase
	SupplierUC *usecase.SupplierUseCase
	ProductUC  *usecase.ProductUseCase
	ServiceUC  *usecase.ServiceUseCase
	DiscountUC *usecase.DiscountUseCase
	ExpenseUC  *usecase.ExpenseUseCase

	CatalogUC    *appstock.CatalogUseCase
	IntakeUC     *appstock.RecordIntakeUseCase
	CorrectionUC *appstock.RecordCorrectionUseCase
	HistoryUC    *appstock.HistoryUseCase
	ReportUC     *appstock.ReportUseCase

	JWTSecret string
}

// Router registra las rutas de la API.
// Política de roles: las mutaciones de stock exigen admin o bodeguero; las
// eliminaciones y la gestión de descuentos, admin. El resto solo pide token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdmin)
	warehouse := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (creación pública para el onboarding)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Branches
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Post("/", adminOnly, branchHandler.Create)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", adminOnly, branchHandler.Update)
	branches.Delete("/:id", adminOnly, branchHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", warehouse, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", warehouse, supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", warehouse, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", warehouse, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Services
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", adminOnly, serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", adminOnly, serviceHandler.Update)
	services.Delete("/:id", adminOnly, serviceHandler.Delete)

	// Discounts
	discounts := protected.Group("/discounts")
	discountHandler := NewDiscountHandler(deps.DiscountUC)
	discounts.Post("/", adminOnly, discountHandler.Create)
	discounts.Get("/", discountHandler.List)
	discounts.Get("/:id", discountHandler.GetByID)
	discounts.Put("/:id", adminOnly, discountHandler.Update)
	discounts.Delete("/:id", adminOnly, discountHandler.Delete)

	// Expenses
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", adminOnly, expenseHandler.Update)
	expenses.Delete("/:id", adminOnly, expenseHandler.Delete)

	// Inventories (catálogo de artículos de stock)
	inventories := protected.Group("/inventories")
	inventoryHandler := NewInventoryHandler(deps.CatalogUC)
	inventories.Post("/", warehouse, inventoryHandler.Create)
	inventories.Get("/", inventoryHandler.List)
	inventories.Get("/:id", inventoryHandler.GetByID)
	inventories.Put("/:id", warehouse, inventoryHandler.Update)
	inventories.Delete("/:id", adminOnly, inventoryHandler.Delete)

	// Stock (motor de saldos)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.CatalogUC, deps.IntakeUC, deps.CorrectionUC, deps.HistoryUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	stockGroup.Post("/intakes", warehouse, stockHandler.RecordIntake)
	stockGroup.Get("/intakes", stockHandler.ListIntakes)
	stockGroup.Get("/intakes/export", reportHandler.ExportIntakes)
	stockGroup.Post("/corrections", warehouse, stockHandler.RecordCorrection)
	stockGroup.Get("/corrections", stockHandler.ListCorrections)
	stockGroup.Get("/variants", stockHandler.ListVariants)
	stockGroup.Get("/variants/:id", stockHandler.GetVariant)
	stockGroup.Get("/report", reportHandler.StockReport)
}
