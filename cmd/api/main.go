package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httphandlers "github.com/rafabene/vendas-api/internal/handlers/http"
	"github.com/rafabene/vendas-api/internal/handlers/middleware"
	"github.com/rafabene/vendas-api/internal/infrastructure/config"
	"github.com/rafabene/vendas-api/internal/infrastructure/i18n"
	"github.com/rafabene/vendas-api/internal/infrastructure/logging"
	"github.com/rafabene/vendas-api/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/vendas-api/internal/infrastructure/security"
	"github.com/rafabene/vendas-api/internal/services"
)

// @title						Vendas API
// @version					1.0
// @description				API de vendas: usuários, clientes, produtos e vendas.
// @host						localhost:3333
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Bearer <token>
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewZerologLogger(cfg.Env, cfg.Logging.Level)
	logger.Info("starting vendas api",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(db); err != nil {
			logger.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
		logger.Info("database migrated")
	}

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		os.Exit(1)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	addressRepo := postgres.NewAddressRepository(db)
	phoneRepo := postgres.NewPhoneNumberRepository(db)
	productRepo := postgres.NewProductRepository(db)
	saleRepo := postgres.NewSaleRepository(db)
	uow := postgres.NewUnitOfWork(db)

	hasher := security.NewBcryptHasher()
	tokens := security.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Inicializar services
	svc := httphandlers.Services{
		Auth:        services.NewAuthService(userRepo, hasher, tokens, logger),
		User:        services.NewUserService(userRepo, hasher, logger),
		Client:      services.NewClientService(clientRepo, addressRepo, phoneRepo, saleRepo, uow, logger),
		Address:     services.NewAddressService(clientRepo, addressRepo, logger),
		PhoneNumber: services.NewPhoneNumberService(clientRepo, phoneRepo, logger),
		Product:     services.NewProductService(productRepo, logger),
		Sale:        services.NewSaleService(clientRepo, productRepo, saleRepo, uow, logger),
	}

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:            cfg.Env,
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		DB:             db,
		Logger:         logger,
		I18n:           i18nService,
		Metrics:        middleware.NewMetrics("vendas_api"),
	}, svc)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}
