// Package http registra las rutas Fiber del punto de venta y mapea los
// errores de dominio a estados HTTP.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-cocina/internal/application/auth"
	"github.com/tu-usuario/pos-cocina/internal/application/inventory"
	"github.com/tu-usuario/pos-cocina/internal/application/reports"
	"github.com/tu-usuario/pos-cocina/internal/application/sales"
	"github.com/tu-usuario/pos-cocina/internal/application/stockcount"
	"github.com/tu-usuario/pos-cocina/internal/application/timeclock"
	"github.com/tu-usuario/pos-cocina/internal/application/usecase"
	"github.com/tu-usuario/pos-cocina/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	IngredientUC *inventory.UseCase
	ProductUC    *usecase.ProductUseCase
	CheckoutUC   *sales.CheckoutUseCase
	ReceiptUC    *sales.ReceiptUseCase
	KitchenUC    *sales.KitchenUseCase
	StockCountUC *stockcount.UseCase
	CountReport  *stockcount.ReportUseCase
	TimeclockUC  *timeclock.UseCase
	ReportsUC    *reports.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	caja := RequireRole(entity.RoleAdmin, entity.RoleCajero)
	cocina := RequireRole(entity.RoleAdmin, entity.RoleCocinero)

	// Empleados (solo admin)
	users := protected.Group("/users", adminOnly)
	users.Post("/", authHandler.Register)
	users.Get("/", authHandler.ListUsers)
	users.Get("/:id", authHandler.GetUser)
	users.Delete("/:id", authHandler.DeactivateUser)

	// Ingredientes: lectura para todos, mutaciones solo admin
	ingredients := protected.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Get("/:id", ingredientHandler.GetByID)
	ingredients.Post("/", adminOnly, ingredientHandler.Create)
	ingredients.Put("/:id", adminOnly, ingredientHandler.Update)
	ingredients.Delete("/:id", adminOnly, ingredientHandler.Delete)
	ingredients.Post("/:id/restock", adminOnly, ingredientHandler.Restock)
	ingredients.Post("/:id/adjust", adminOnly, ingredientHandler.AdjustStock)

	// Productos: lectura para todos, mutaciones solo admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Ventas (caja)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CheckoutUC, deps.ReceiptUC)
	salesGroup.Post("/checkout", caja, saleHandler.Checkout)
	salesGroup.Get("/:id/receipt", saleHandler.GetReceiptPDF)

	// Cocina
	kitchen := protected.Group("/kitchen")
	kitchenHandler := NewKitchenHandler(deps.KitchenUC)
	kitchen.Get("/orders", kitchenHandler.ListPending)
	kitchen.Patch("/orders/:id/status", cocina, kitchenHandler.UpdateStatus)

	// Conteos físicos (solo admin)
	counts := protected.Group("/stock-counts", adminOnly)
	countHandler := NewStockCountHandler(deps.StockCountUC, deps.CountReport)
	counts.Post("/", countHandler.CreateDraft)
	counts.Get("/", countHandler.List)
	counts.Get("/:id", countHandler.GetByID)
	counts.Patch("/:id/lines/:ingredientId", countHandler.SetActual)
	counts.Post("/:id/finalize", countHandler.Finalize)
	counts.Post("/:id/apply", countHandler.Apply)
	counts.Get("/:id/report", countHandler.GetReportPDF)

	// Reloj de turnos (cualquier rol autenticado) y costos (solo admin)
	timeclockHandler := NewTimeclockHandler(deps.TimeclockUC)
	protected.Post("/shifts/clock-in", timeclockHandler.ClockIn)
	protected.Post("/shifts/clock-out", timeclockHandler.ClockOut)
	costs := protected.Group("/costs", adminOnly)
	costs.Post("/", timeclockHandler.CreateCost)
	costs.Get("/", timeclockHandler.ListCosts)

	// Reportes (solo admin)
	reportsGroup := protected.Group("/reports", adminOnly)
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	reportsGroup.Get("/profit", reportsHandler.GetProfitSummary)
	reportsGroup.Get("/dashboard", reportsHandler.GetDashboard)
}
