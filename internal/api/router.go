package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/eladcrm/crm-api/docs"
	"github.com/eladcrm/crm-api/internal/api/handler"
	"github.com/eladcrm/crm-api/internal/api/middleware"
	"github.com/eladcrm/crm-api/internal/core/service"
	mongodb "github.com/eladcrm/crm-api/internal/infrastructure/db/mongo"
	redisdb "github.com/eladcrm/crm-api/internal/infrastructure/db/redis"
)

// Options carries the settings the router needs beyond its store handles.
type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
	PublicDir string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("crm"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	trainingRepo := mongodb.NewTrainingRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	tokenService := service.NewTokenService(opts.JWTSecret, opts.TokenTTL)
	throttle := redisdb.NewLoginThrottle(rdb)
	authService := service.NewAuthService(userRepo, tokenService, throttle)
	customerService := service.NewCustomerService(customerRepo)
	trainingService := service.NewTrainingService(trainingRepo)
	taskService := service.NewTaskService(taskRepo)
	paymentService := service.NewPaymentService(paymentRepo)
	financeService := service.NewFinanceService(paymentRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	trainingHandler := handler.NewTrainingHandler(trainingService)
	taskHandler := handler.NewTaskHandler(taskService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	financeHandler := handler.NewFinanceHandler(financeService)

	// --- Public routes ---
	e.POST("/api/login", authHandler.Login)

	// --- Authenticated routes ---
	authGate := middleware.Auth(tokenService, userRepo)
	g := e.Group("/api", authGate)

	g.GET("/me", authHandler.Me)

	g.POST("/users", userHandler.Create, middleware.Authorize(middleware.PermUsersManage))
	g.GET("/users", userHandler.List, middleware.Authorize(middleware.PermUsersManage))
	g.PUT("/users/:id", userHandler.Update, middleware.Authorize(middleware.PermUsersManage))
	g.DELETE("/users/:id", userHandler.Delete, middleware.Authorize(middleware.PermUsersManage))

	g.GET("/customers", customerHandler.List, middleware.Authorize(middleware.PermCustomersRead))
	g.GET("/customers/:id", customerHandler.Get, middleware.Authorize(middleware.PermCustomersRead))
	g.POST("/customers", customerHandler.Create, middleware.Authorize(middleware.PermCustomersWrite))
	g.PUT("/customers/:id", customerHandler.Update, middleware.Authorize(middleware.PermCustomersWrite))
	g.DELETE("/customers/:id", customerHandler.Delete, middleware.Authorize(middleware.PermCustomersWrite))

	g.GET("/trainings", trainingHandler.List, middleware.Authorize(middleware.PermTrainingsRead))
	g.GET("/trainings/:id", trainingHandler.Get, middleware.Authorize(middleware.PermTrainingsRead))
	g.POST("/trainings", trainingHandler.Create, middleware.Authorize(middleware.PermTrainingsWrite))
	g.PUT("/trainings/:id", trainingHandler.Update, middleware.Authorize(middleware.PermTrainingsWrite))
	g.DELETE("/trainings/:id", trainingHandler.Delete, middleware.Authorize(middleware.PermTrainingsWrite))

	g.GET("/tasks", taskHandler.List, middleware.Authorize(middleware.PermTasksRead))
	g.GET("/tasks/:id", taskHandler.Get, middleware.Authorize(middleware.PermTasksRead))
	g.POST("/tasks", taskHandler.Create, middleware.Authorize(middleware.PermTasksWrite))
	g.PUT("/tasks/:id", taskHandler.Update, middleware.Authorize(middleware.PermTasksWrite))
	g.DELETE("/tasks/:id", taskHandler.Delete, middleware.Authorize(middleware.PermTasksWrite))

	g.GET("/payments", paymentHandler.List, middleware.Authorize(middleware.PermPaymentsManage))
	g.POST("/payments", paymentHandler.Create, middleware.Authorize(middleware.PermPaymentsManage))
	g.DELETE("/payments/:id", paymentHandler.Delete, middleware.Authorize(middleware.PermPaymentsManage))

	g.GET("/finance/summary", financeHandler.Summary, middleware.Authorize(middleware.PermFinanceView))

	g.GET("/calendar", trainingHandler.Calendar, middleware.Authorize(middleware.PermCalendarRead))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Static front end ---
	if opts.PublicDir != "" {
		e.Static("/", opts.PublicDir)
	}

	return e
}
