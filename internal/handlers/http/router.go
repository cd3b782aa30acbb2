package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/rafabene/vendas-api/docs"
	"github.com/rafabene/vendas-api/internal/domain/ports"
	"github.com/rafabene/vendas-api/internal/handlers/dto"
	"github.com/rafabene/vendas-api/internal/handlers/middleware"
	"github.com/rafabene/vendas-api/internal/handlers/validation"
	"github.com/rafabene/vendas-api/internal/infrastructure/i18n"
	"github.com/rafabene/vendas-api/internal/services"
)

// Services agrupa os serviços consumidos pelos handlers
type Services struct {
	Auth        *services.AuthService
	User        *services.UserService
	Client      *services.ClientService
	Address     *services.AddressService
	PhoneNumber *services.PhoneNumberService
	Product     *services.ProductService
	Sale        *services.SaleService
}

// RouterConfig reúne as dependências de infraestrutura do roteador
type RouterConfig struct {
	Env            string
	BaseURL        string
	AllowedOrigins string
	DB             *gorm.DB
	Logger         ports.Logger
	I18n           *i18n.Service
	Metrics        *middleware.Metrics
}

// newErrorResponder cria o conversor de erros compartilhado pelos handlers
func newErrorResponder(logger ports.Logger) errorResponder {
	return errorResponder{logger: logger}
}

// NewRouter monta o engine com a cadeia de middlewares e todas as rotas
func NewRouter(cfg RouterConfig, svc Services) *gin.Engine {
	validation.Install()

	if cfg.Metrics == nil {
		cfg.Metrics = middleware.NewMetrics("vendas_api")
	}

	responder := newErrorResponder(cfg.Logger)
	health := NewHealthHandler(cfg.DB, cfg.Env, cfg.Logger)
	authHandler := NewAuthHandler(svc.Auth, responder)
	userHandler := NewUserHandler(svc.User, responder)
	clientHandler := NewClientHandler(svc.Client, svc.Address, svc.PhoneNumber, responder)
	productHandler := NewProductHandler(svc.Product, responder)
	saleHandler := NewSaleHandler(svc.Sale, responder)
	auth := middleware.NewAuthMiddleware(svc.Auth, cfg.Logger)
	i18nMiddleware := middleware.NewI18nMiddleware(cfg.I18n)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	// base URL usada nos URIs de problem type
	router.Use(func(c *gin.Context) {
		c.Set(dto.BaseURLContextKey, cfg.BaseURL)
		c.Next()
	})

	router.Use(cfg.Metrics.Middleware())
	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(i18nMiddleware.DetectLanguage())

	router.GET("/health", health.Check)
	router.GET("/metrics", cfg.Metrics.Handler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	protected := router.Group("")
	protected.Use(auth.RequireAuth())
	{
		users := protected.Group("/user")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", userHandler.UpdateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		clients := protected.Group("/clients")
		{
			clients.GET("", clientHandler.ListClients)
			clients.POST("", clientHandler.CreateClient)
			clients.GET("/:id", clientHandler.GetClient)
			clients.PATCH("/:id", clientHandler.UpdateClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", clientHandler.DeleteClient)

			clients.POST("/:id/addresses", clientHandler.CreateAddress)
			clients.POST("/:id/phoneNumbers", clientHandler.CreatePhoneNumber)
			clients.PATCH("/:id/phoneNumbers/:phoneNumberId", clientHandler.UpdatePhoneNumber)
			clients.PUT("/:id/phoneNumbers/:phoneNumberId", clientHandler.UpdatePhoneNumber)
			clients.DELETE("/:id/phoneNumbers/:phoneNumberId", clientHandler.DeletePhoneNumber)
		}

		products := protected.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PATCH("/:id", productHandler.UpdateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.POST("/:id/restore", productHandler.RestoreProduct)
		}

		sales := protected.Group("/sales")
		{
			sales.GET("", saleHandler.ListSales)
			sales.POST("", saleHandler.CreateSale)
			sales.GET("/:id", saleHandler.GetSale)
		}
	}

	return router
}
