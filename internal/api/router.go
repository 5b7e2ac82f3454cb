package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sellhub/marketplace-api/internal/api/handler"
	"github.com/sellhub/marketplace-api/internal/api/middleware"
	"github.com/sellhub/marketplace-api/internal/core/domain"
	"github.com/sellhub/marketplace-api/internal/core/service"
	"github.com/sellhub/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/sellhub/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sellhub/marketplace-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb)

	authService := service.NewAuthService(userRepo, limiter, cfg.JWTSecret, cfg.TokenTTL, log)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth & user administration ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authRequired)
	auth.GET("/users", userHandler.List, authRequired, adminOnly)
	auth.PUT("/users/:id/role", userHandler.UpdateRole, authRequired, adminOnly)
	auth.DELETE("/users/:id", userHandler.Delete, authRequired, adminOnly)
	auth.GET("/stats", userHandler.Stats, authRequired, adminOnly)

	// --- Products (reads open, mutations authenticated) ---
	products := e.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/search", productHandler.Search)
	products.GET("/category/:category", productHandler.ListByCategory)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, authRequired)
	products.PUT("/:id", productHandler.Update, authRequired)
	products.DELETE("/:id", productHandler.Delete, authRequired)

	// --- Probes & metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
