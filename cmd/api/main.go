package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/atelier-service/internal/api/http"
	"github.com/spec-kit/atelier-service/internal/api/http/handlers"
	"github.com/spec-kit/atelier-service/internal/auth"
	"github.com/spec-kit/atelier-service/internal/config"
	"github.com/spec-kit/atelier-service/internal/events"
	"github.com/spec-kit/atelier-service/internal/observability"
	"github.com/spec-kit/atelier-service/internal/persistence"
	"github.com/spec-kit/atelier-service/internal/repository"
	"github.com/spec-kit/atelier-service/internal/service"
	"github.com/spec-kit/atelier-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var revocations auth.RevocationStore
	if strings.EqualFold(cfg.Auth.RevocationBackend, "redis") {
		revocations = auth.NewRedisRevocationList(redis.Client, cfg.Auth.AccessTokenTTL())
		logger.Info("using redis revocation store")
	} else {
		revocations = auth.NewMemoryRevocationList()
		logger.Info("using in-memory revocation store",
			zap.String("note", "revocations are lost on restart and not shared across instances"))
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	customizationRepo := repository.NewCustomizationRepository(pool)
	imageRepo := repository.NewImageRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	orderItemRepo := repository.NewOrderItemRepository(pool)
	medicationRepo := repository.NewMedicationRepository(pool)
	prescriptionRepo := repository.NewPrescriptionRepository(pool)
	historyRepo := repository.NewHistoryRepository(pool)

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL(), revocations)
	authService := service.NewAuthService(cfg.Auth, userRepo, tokens, dispatcher)
	catalogService := service.NewCatalogService(productRepo, customizationRepo, imageRepo)
	orderService := service.NewOrderService(service.OrderDependencies{
		ClientRepo:    clientRepo,
		OrderRepo:     orderRepo,
		OrderItemRepo: orderItemRepo,
		ProductRepo:   productRepo,
	}, dispatcher)
	pharmacyService := service.NewPharmacyService(service.PharmacyDependencies{
		MedicationRepo:   medicationRepo,
		PrescriptionRepo: prescriptionRepo,
		HistoryRepo:      historyRepo,
		UserRepo:         userRepo,
	}, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(tokens, logger, metrics)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(authService),
		Clients:        handlers.NewClientsHandler(orderService),
		Products:       handlers.NewProductsHandler(catalogService),
		Customizations: handlers.NewCustomizationsHandler(catalogService),
		Images:         handlers.NewImagesHandler(catalogService),
		Orders:         handlers.NewOrdersHandler(orderService),
		Medications:    handlers.NewMedicationsHandler(pharmacyService),
		Prescriptions:  handlers.NewPrescriptionsHandler(pharmacyService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
