package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/prasetyadi/temanku/internal/pkg/config"
	"github.com/prasetyadi/temanku/internal/pkg/database"
	"github.com/prasetyadi/temanku/internal/pkg/health"
	"github.com/prasetyadi/temanku/internal/pkg/logger"
	"github.com/prasetyadi/temanku/internal/pkg/middleware"
	"github.com/prasetyadi/temanku/internal/pkg/nsq"
	"github.com/prasetyadi/temanku/internal/pkg/server"
	"github.com/prasetyadi/temanku/internal/pkg/validator"
	"github.com/prasetyadi/temanku/services/audit"
	auditgateway "github.com/prasetyadi/temanku/services/audit/gateway"
	audithandler "github.com/prasetyadi/temanku/services/audit/handler"
	auditnsq "github.com/prasetyadi/temanku/services/audit/handler/nsq"
	auditrepo "github.com/prasetyadi/temanku/services/audit/repository"
	audituc "github.com/prasetyadi/temanku/services/audit/usecase"
	authgateway "github.com/prasetyadi/temanku/services/auth/gateway"
	authhandler "github.com/prasetyadi/temanku/services/auth/handler"
	authrepo "github.com/prasetyadi/temanku/services/auth/repository"
	authuc "github.com/prasetyadi/temanku/services/auth/usecase"
	datahandler "github.com/prasetyadi/temanku/services/data/handler"
	datarepo "github.com/prasetyadi/temanku/services/data/repository"
	datauc "github.com/prasetyadi/temanku/services/data/usecase"
)

const serviceName = "temanku-api"

func main() {
	cfg := config.InitConfig(".env")

	zapLogger, err := logger.InitZapLoggerFromConfig(cfg)
	if err != nil {
		panic(err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	if cfg.JWT.Secret == "" {
		zapLogger.Fatal("JWT_SECRET is required")
	}

	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer pgClient.Close()
	db := pgClient.GetDB()

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Repositories and gateways
	authRepo := authrepo.NewAuthRepo(cfg, db)
	revocations := authrepo.NewRevocationCache(redisClient)
	auditRepo := auditrepo.NewAuditRepo(cfg, db)
	dataRepo := datarepo.NewDataRepo(cfg, db)
	mailGW := authgateway.NewMailGateway(cfg.Mailer)

	// Audit pipeline: async through NSQ when an address is configured,
	// synchronous writes otherwise.
	var auditPublisher audit.AuditPublisher
	if cfg.NSQ.Address != "" {
		producer, err := nsq.NewProducer(cfg.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		defer producer.Stop()
		auditPublisher = auditgateway.NewAuditGateway(producer, cfg.NSQ.AuditTopic)

		auditConsumer, err := nsq.NewConsumer(
			cfg.NSQ.AuditTopic, auditnsq.AuditChannel, cfg.NSQ.Address,
			auditnsq.NewHandler(auditRepo).HandleMessage,
		)
		if err != nil {
			zapLogger.Fatal("Failed to start audit consumer", logger.Err(err))
		}
		defer auditConsumer.Stop()
	}

	// Usecases
	auditUC := audituc.NewAuditUC(cfg, auditRepo, auditPublisher)
	authUC := authuc.NewAuthUC(cfg, authRepo, authRepo, authRepo, revocations, mailGW, auditUC)
	dataUC := datauc.NewDataUC(cfg, dataRepo, auditUC)

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = server.HTTPErrorHandler
	e.Validator = validator.NewRequestValidator()
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, serviceName, cfg.App.Version,
		func() error { return db.Ping() },
		func() error { return redisClient.GetClient().Ping(context.Background()).Err() },
	)

	authhandler.RegisterRoutes(e, cfg, redisClient, authUC, revocations)
	datahandler.RegisterRoutes(e, cfg, dataUC, revocations)
	audithandler.RegisterRoutes(e, cfg, auditUC, revocations)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server error", logger.Err(err))
	}
}
