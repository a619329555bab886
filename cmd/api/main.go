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
	"github.com/mobileshop/pos-api/internal/application/auth"
	"github.com/mobileshop/pos-api/internal/application/billing"
	"github.com/mobileshop/pos-api/internal/application/usecase"
	infracache "github.com/mobileshop/pos-api/internal/infrastructure/cache"
	infrapdf "github.com/mobileshop/pos-api/internal/infrastructure/pdf"
	"github.com/mobileshop/pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/mobileshop/pos-api/internal/interfaces/http"
	"github.com/mobileshop/pos-api/pkg/config"
	"github.com/mobileshop/pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	distributorRepo := postgres.NewDistributorRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	paymentMethodRepo := postgres.NewPaymentMethodRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Dashboard cache: Redis when configured, otherwise recompute every hit
	var statsCache usecase.StatsCache = infracache.NewNoopCache()
	if cfg.Redis.Addr != "" {
		redisCache := infracache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis unreachable, dashboard cache disabled")
		} else {
			statsCache = redisCache
			defer redisCache.Close()
		}
	}

	createBillUC := billing.NewCreateBillUseCase(txRunner, billRepo, customerRepo, paymentMethodRepo)
	pdfGenerator := infrapdf.NewMarotoBillGenerator()
	billPDFUC := billing.NewPDFUseCase(createBillUC, pdfGenerator, billing.ShopInfo{
		Name:    cfg.Shop.Name,
		Address: cfg.Shop.Address,
		Phone:   cfg.Shop.Phone,
	})

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, distributorRepo)
	productCSVUC := usecase.NewProductCSVUseCase(productRepo, categoryRepo, distributorRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	distributorUC := usecase.NewDistributorUseCase(distributorRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	paymentMethodUC := usecase.NewPaymentMethodUseCase(paymentMethodRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, customerRepo)
	dashboardUC := usecase.NewDashboardUseCase(statsRepo, statsCache, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mobile Shop POS API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:       productUC,
		ProductCSVUC:    productCSVUC,
		CustomerUC:      customerUC,
		DistributorUC:   distributorUC,
		CategoryUC:      categoryUC,
		PaymentMethodUC: paymentMethodUC,
		ServiceUC:       serviceUC,
		DashboardUC:     dashboardUC,
		CreateBill:      createBillUC,
		BillPDF:         billPDFUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
		SessionTTL:      time.Duration(cfg.JWT.Expiration) * time.Minute,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
