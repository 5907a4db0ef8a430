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
	"github.com/tu-usuario/pdv-estoque/internal/application/auth"
	appledger "github.com/tu-usuario/pdv-estoque/internal/application/ledger"
	"github.com/tu-usuario/pdv-estoque/internal/application/receipt"
	"github.com/tu-usuario/pdv-estoque/internal/application/usecase"
	infrapdf "github.com/tu-usuario/pdv-estoque/internal/infrastructure/pdf"
	"github.com/tu-usuario/pdv-estoque/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/pdv-estoque/internal/interfaces/http"
	"github.com/tu-usuario/pdv-estoque/pkg/config"
	"github.com/tu-usuario/pdv-estoque/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	entryRepo := postgres.NewStockEntryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	locationRepo := postgres.NewStockLocationRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Motor de stock: todas las escrituras de movimientos pasan por el TxRunner.
	entryEngine := appledger.NewStockEntryUseCase(txRunner)
	saleEngine := appledger.NewSaleUseCase(txRunner, customerRepo)

	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	catalogUC := usecase.NewCatalogUseCase(categoryRepo, unitRepo, locationRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	entryQuery := usecase.NewStockEntryQueryUseCase(entryRepo, productRepo)
	saleQuery := usecase.NewSaleQueryUseCase(saleRepo, customerRepo)

	// PDF: recibo de venta
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := receipt.NewReceiptUseCase(saleRepo, customerRepo, productRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PDV Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		SupplierUC:  supplierUC,
		CatalogUC:   catalogUC,
		DashboardUC: dashboardUC,
		EntryEngine: entryEngine,
		SaleEngine:  saleEngine,
		EntryQuery:  entryQuery,
		SaleQuery:   saleQuery,
		ReceiptUC:   receiptUC,
		JWTSecret:   cfg.JWT.Secret,
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
