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

	appcatalog "github.com/nirs/shop-api/internal/application/catalog"
	"github.com/nirs/shop-api/internal/application/media"
	"github.com/nirs/shop-api/internal/application/stock"
	"github.com/nirs/shop-api/internal/application/usecase"
	"github.com/nirs/shop-api/internal/infrastructure/postgres"
	httpRouter "github.com/nirs/shop-api/internal/interfaces/http"
	"github.com/nirs/shop-api/pkg/config"
	"github.com/nirs/shop-api/pkg/logger"
	"github.com/nirs/shop-api/pkg/rabbitmq"
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

	productRepo := postgres.NewProductRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	imageRepo := postgres.NewImageRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Publisher AMQP opcional: sin RABBITMQ_URL los ajustes no emiten eventos.
	var publisher stock.EventPublisher
	if cfg.MQ.Enabled() {
		mq, err := rabbitmq.NewPublisher(cfg.MQ.URL, cfg.MQ.Queue)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer mq.Close()
		publisher = mq
	} else {
		log.Warn().Msg("RABBITMQ_URL no definido, eventos de stock deshabilitados")
	}

	searchUC := appcatalog.NewSearchUseCase(productRepo, imageRepo, stockRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, txRunner, searchUC)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo)
	stockUC := stock.NewStockUseCase(stockRepo, productRepo, storeRepo, txRunner, publisher, log)
	imageUC := media.NewImageUseCase(imageRepo, productRepo, txRunner)

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
		Title:    "Shop API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		StoreUC:    storeUC,
		CategoryUC: categoryUC,
		StatsUC:    statsUC,
		SearchUC:   searchUC,
		StockUC:    stockUC,
		ImageUC:    imageUC,
		JWTSecret:  cfg.JWT.Secret,
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
