package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adopet/account-service/internal/api/handler"
	"github.com/adopet/account-service/internal/api/middleware"
	"github.com/adopet/account-service/internal/core/service"
	"github.com/adopet/account-service/internal/infrastructure/config"
	mongodb "github.com/adopet/account-service/internal/infrastructure/db/mongo"
	redisdb "github.com/adopet/account-service/internal/infrastructure/db/redis"
	"github.com/adopet/account-service/internal/infrastructure/http/handlers"
	"github.com/adopet/account-service/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered, plus the
// activity dispatcher the caller must Start before serving.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("account"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	userFinder := redisdb.NewCachedUserFinder(rdb, userRepo, cfg.Redis.ProfileTTL)

	activityRepo := mongodb.NewActivityRepository(db)
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, service.NewActivityService(activityRepo, log), log)

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	accountService := service.NewAccountService(userRepo, hasher, tokens, dispatcher, userFinder, log)

	accountHandler := handler.NewAccountHandler(accountService)
	profileHandler := handler.NewProfileHandler(accountService)

	// --- Public routes ---
	e.GET("/", accountHandler.Hello)
	e.POST("/signup", accountHandler.Signup)
	e.POST("/login", accountHandler.Login)

	// --- Token-gated routes ---
	users := e.Group("/users", middleware.Auth(tokens), middleware.LoadUser(userFinder))
	users.GET("/:id", profileHandler.Get)
	users.PUT("/:id", profileHandler.Update)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
