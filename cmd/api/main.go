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
	"github.com/tu-usuario/pos-cocina/internal/application/auth"
	"github.com/tu-usuario/pos-cocina/internal/application/inventory"
	"github.com/tu-usuario/pos-cocina/internal/application/reports"
	"github.com/tu-usuario/pos-cocina/internal/application/sales"
	"github.com/tu-usuario/pos-cocina/internal/application/stockcount"
	"github.com/tu-usuario/pos-cocina/internal/application/timeclock"
	"github.com/tu-usuario/pos-cocina/internal/application/usecase"
	infrapdf "github.com/tu-usuario/pos-cocina/internal/infrastructure/pdf"
	"github.com/tu-usuario/pos-cocina/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/pos-cocina/internal/interfaces/http"
	"github.com/tu-usuario/pos-cocina/pkg/config"
	"github.com/tu-usuario/pos-cocina/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	// Repositorios sobre el pool (lecturas fuera de transacción)
	ingredientRepo := postgres.NewIngredientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	kitchenRepo := postgres.NewKitchenOrderRepository(pool)
	countRepo := postgres.NewStockCountRepository(pool)
	costRepo := postgres.NewCostRecordRepository(pool)
	shiftRepo := postgres.NewShiftRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// PDF: tirillas de venta e informes de conteo
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)

	// Casos de uso
	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	ingredientUC := inventory.NewUseCase(txRunner, ingredientRepo)
	productUC := usecase.NewProductUseCase(productRepo, ingredientRepo)
	checkoutUC := sales.NewCheckoutUseCase(txRunner, log)
	receiptUC := sales.NewReceiptUseCase(saleRepo, pdfGenerator)
	kitchenUC := sales.NewKitchenUseCase(kitchenRepo)
	stockCountUC := stockcount.NewUseCase(txRunner, ingredientRepo, countRepo)
	countReportUC := stockcount.NewReportUseCase(countRepo, pdfGenerator)
	timeclockUC := timeclock.NewUseCase(shiftRepo, costRepo, userRepo)
	reportsUC := reports.NewUseCase(saleRepo, costRepo, ingredientRepo, productRepo)

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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		IngredientUC: ingredientUC,
		ProductUC:    productUC,
		CheckoutUC:   checkoutUC,
		ReceiptUC:    receiptUC,
		KitchenUC:    kitchenUC,
		StockCountUC: stockCountUC,
		CountReport:  countReportUC,
		TimeclockUC:  timeclockUC,
		ReportsUC:    reportsUC,
		JWTSecret:    cfg.JWT.Secret,
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
