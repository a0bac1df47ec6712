package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comercio-api/internal/application/auth"
	appstock "github.com/jhoicas/Comercio-api/internal/application/stock"
	"github.com/jhoicas/Comercio-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Comercio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Comercio-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Comercio-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/Comercio-api/internal/interfaces/http"
	"github.com/jhoicas/Comercio-api/pkg/config"
	"github.com/jhoicas/Comercio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Int("alarm_quantity", cfg.Stock.AlarmQuantity).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	discountRepo := postgres.NewDiscountRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	variantRepo := postgres.NewVariantRepository(pool)
	intakeRepo := postgres.NewStockIntakeRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	alarmQty := decimal.NewFromInt(int64(cfg.Stock.AlarmQuantity))

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	discountUC := usecase.NewDiscountUseCase(discountRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)

	catalogUC := appstock.NewCatalogUseCase(inventoryRepo, variantRepo, alarmQty)
	intakeUC := appstock.NewRecordIntakeUseCase(txRunner, alarmQty)
	correctionUC := appstock.NewRecordCorrectionUseCase(txRunner, alarmQty)
	historyUC := appstock.NewHistoryUseCase(intakeRepo, postgres.NewStockModificationRepository(pool))

	pdfGenerator := infrapdf.NewMarotoStockReport()
	ledgerExporter := xmlexport.NewIntakeExporter()
	reportUC := appstock.NewReportUseCase(companyRepo, variantRepo, intakeRepo, pdfGenerator, ledgerExporter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Comercio Suite API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CompanyUC:  companyUC,
		BranchUC:   branchUC,
		SupplierUC: supplierUC,
		ProductUC:  productUC,
		ServiceUC:  serviceUC,
		DiscountUC: discountUC,
		ExpenseUC:  expenseUC,

		CatalogUC:    catalogUC,
		IntakeUC:     intakeUC,
		CorrectionUC: correctionUC,
		HistoryUC:    historyUC,
		ReportUC:     reportUC,

		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
