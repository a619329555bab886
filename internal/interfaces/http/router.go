package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mobileshop/pos-api/internal/application/auth"
	"github.com/mobileshop/pos-api/internal/application/billing"
	"github.com/mobileshop/pos-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	ProductCSVUC    *usecase.ProductCSVUseCase
	CustomerUC      *usecase.CustomerUseCase
	DistributorUC   *usecase.DistributorUseCase
	CategoryUC      *usecase.CategoryUseCase
	PaymentMethodUC *usecase.PaymentMethodUseCase
	ServiceUC       *usecase.ServiceUseCase
	DashboardUC     *usecase.DashboardUseCase
	CreateBill      *billing.CreateBillUseCase
	BillPDF         *billing.PDFUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
	SessionTTL      time.Duration
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth: login is public, me/logout need a session
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionTTL)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Everything else requires a session (Bearer token or pos_token cookie)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ProductCSVUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	// fixed paths before the :id wildcard
	products.Get("/export", productHandler.Export)
	products.Get("/template", productHandler.Template)
	products.Post("/import", productHandler.Import)
	products.Put("/stock", productHandler.AdjustStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	distributors := protected.Group("/distributors")
	distributorHandler := NewDistributorHandler(deps.DistributorUC)
	distributors.Post("/", distributorHandler.Create)
	distributors.Get("/", distributorHandler.List)
	distributors.Put("/:id", distributorHandler.Update)
	distributors.Delete("/:id", distributorHandler.Delete)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	paymentMethods := protected.Group("/payment-methods")
	paymentMethodHandler := NewPaymentMethodHandler(deps.PaymentMethodUC)
	paymentMethods.Post("/", paymentMethodHandler.Create)
	paymentMethods.Get("/", paymentMethodHandler.List)
	paymentMethods.Put("/:id", paymentMethodHandler.Update)
	paymentMethods.Delete("/:id", paymentMethodHandler.Delete)

	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	bills := protected.Group("/bills")
	billHandler := NewBillHandler(deps.CreateBill, deps.BillPDF)
	bills.Post("/", billHandler.Create)
	bills.Get("/", billHandler.List)
	bills.Get("/:id", billHandler.GetByID)
	bills.Get("/:id/pdf", billHandler.DownloadPDF)

	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
}
