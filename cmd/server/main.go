package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/tenantbill/backend/docs"
	billingapp "github.com/tenantbill/backend/internal/application/billing"
	identityapp "github.com/tenantbill/backend/internal/application/identity"
	tenancyapp "github.com/tenantbill/backend/internal/application/tenancy"
	"github.com/tenantbill/backend/internal/infrastructure/auth"
	"github.com/tenantbill/backend/internal/infrastructure/cache"
	"github.com/tenantbill/backend/internal/infrastructure/config"
	"github.com/tenantbill/backend/internal/infrastructure/logger"
	"github.com/tenantbill/backend/internal/infrastructure/persistence"
	"github.com/tenantbill/backend/internal/infrastructure/telemetry"
	"github.com/tenantbill/backend/internal/interfaces/http/handler"
	"github.com/tenantbill/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

//	@title			Tenant Billing API
//	@version		1.0
//	@description	Tenant and bill management for rental properties: tenants, monthly bills, invoices, payments and extra services.

//	@contact.name	API Support
//	@contact.url	https://github.com/tenantbill/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := &logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	}
	log, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tel, err := telemetry.Setup(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	if tel.Logs.IsEnabled() {
		// Rebuild so every entry is also exported through OTLP
		if log, err = logger.New(logCfg, tel.Logs.ZapCore()); err != nil {
			panic("Failed to initialize logger: " + err.Error())
		}
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting tenant billing service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("base_path", cfg.HTTP.BasePath),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected successfully")

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := telemetry.NewDBTracingPlugin(cfg.Telemetry, "postgresql", log).Register(db.DB); err != nil {
			log.Warn("Failed to register database tracing", zap.Error(err))
		}
	}

	var dbMetrics *telemetry.DBMetrics
	var billingMetrics *telemetry.BillingMetrics
	if tel.Meter.IsEnabled() {
		meter := tel.Meter.Meter("tenantbill")
		sqlDB, err := db.DB.DB()
		if err != nil {
			log.Warn("Failed to get sql.DB for pool metrics", zap.Error(err))
		}
		if dbMetrics, err = telemetry.RegisterDBMetrics(db.DB, sqlDB, meter, log); err != nil {
			log.Warn("Failed to register database metrics", zap.Error(err))
		}
		if billingMetrics, err = telemetry.NewBillingMetrics(meter); err != nil {
			log.Warn("Failed to register billing metrics", zap.Error(err))
		}
	}

	stores, err := cache.NewStoreFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(!cfg.IsProduction()),
	).Create()
	if err != nil {
		log.Fatal("Failed to initialize token and idempotency stores", zap.Error(err))
	}

	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	billRepo := persistence.NewGormBillRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, stores.Blacklist, log)
	tenantService := tenancyapp.NewTenantService(tenantRepo, log)
	billService := billingapp.NewBillService(billRepo, log)
	if billingMetrics != nil {
		authService.SetBillingMetrics(billingMetrics)
		billService.SetBillingMetrics(billingMetrics)
	}

	created, err := authService.EnsureBootstrapUser(context.Background(), cfg.Auth.BootstrapUsername, cfg.Auth.BootstrapPassword)
	if err != nil {
		log.Fatal("Failed to create bootstrap user", zap.Error(err))
	}
	if created {
		log.Info("Bootstrap user created", zap.String("username", cfg.Auth.BootstrapUsername))
	}

	engine, stopLimiters := router.NewEngine(router.Dependencies{
		Config: cfg,
		Logger: log,
		Handlers: router.Handlers{
			Auth:   handler.NewAuthHandler(authService),
			Tenant: handler.NewTenantHandler(tenantService),
			Bill:   handler.NewBillHandler(billService),
			Health: handler.NewHealthHandler(db),
		},
		JWTService:       jwtService,
		TokenBlacklist:   stores.Blacklist,
		IdempotencyStore: stores.Idempotency,
		MeterProvider:    tel.Meter,
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	stopLimiters()
	if dbMetrics != nil {
		dbMetrics.Stop()
	}
	if err := stores.Close(); err != nil {
		log.Error("Error closing stores", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	if err := tel.Shutdown(ctx); err != nil {
		log.Error("Error shutting down telemetry", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
