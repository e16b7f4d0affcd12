package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arshalif/cashi/internal/pkg/config"
	"github.com/arshalif/cashi/internal/pkg/database"
	"github.com/arshalif/cashi/internal/pkg/health"
	"github.com/arshalif/cashi/internal/pkg/logger"
	"github.com/arshalif/cashi/internal/pkg/middleware"
	natspkg "github.com/arshalif/cashi/internal/pkg/nats"
	"github.com/arshalif/cashi/internal/pkg/server"
	"github.com/arshalif/cashi/services/payments/gateway"
	"github.com/arshalif/cashi/services/payments/handler"
	httpHandler "github.com/arshalif/cashi/services/payments/handler/http"
	"github.com/arshalif/cashi/services/payments/repository"
	"github.com/arshalif/cashi/services/payments/usecase"
)

func main() {
	appName := "payments-service"
	configPath := config.GetEnv("CONFIG_PATH", "config/payments.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Initialize repository
	transactionRepo := repository.NewTransactionRepo(configs, postgresClient.GetDB(), redisClient)

	// Initialize gateway
	paymentGW := gateway.NewPaymentGW(natsClient)

	// Initialize usecase
	paymentUC := usecase.NewPaymentUC(transactionRepo, paymentGW, configs)

	// Initialize handlers
	paymentHandler := httpHandler.NewPaymentHandler(paymentUC)
	Handler := handler.NewHandler(paymentHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Start server with graceful shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server terminated",
			logger.String("app", appName),
			logger.Err(err),
		)
	}
}
