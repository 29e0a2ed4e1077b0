package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/tenantbill/backend/internal/domain/shared"
	"github.com/tenantbill/backend/internal/infrastructure/auth"
	"github.com/tenantbill/backend/internal/infrastructure/config"
	"github.com/tenantbill/backend/internal/infrastructure/logger"
	"github.com/tenantbill/backend/internal/infrastructure/telemetry"
	"github.com/tenantbill/backend/internal/interfaces/http/dto"
	"github.com/tenantbill/backend/internal/interfaces/http/handler"
	"github.com/tenantbill/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted by NewEngine
type Handlers struct {
	Auth   *handler.AuthHandler
	Tenant *handler.TenantHandler
	Bill   *handler.BillHandler
	Health *handler.HealthHandler
}

// Dependencies holds everything NewEngine wires into the middleware stack.
// TokenBlacklist, IdempotencyStore and MeterProvider may be nil.
type Dependencies struct {
	Config           *config.Config
	Logger           *zap.Logger
	Handlers         Handlers
	JWTService       *auth.JWTService
	TokenBlacklist   auth.TokenBlacklist
	IdempotencyStore shared.IdempotencyStore
	MeterProvider    *telemetry.MeterProvider
}

// NewEngine builds the gin engine with the full middleware stack and every
// route. The returned stop function releases the rate limiters.
func NewEngine(deps Dependencies) (*gin.Engine, func()) {
	cfg := deps.Config
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Order matters: the request id must exist before anything logs
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Tracing(cfg.Telemetry.ServiceName, cfg.Telemetry.Enabled))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.HTTPMetrics(deps.MeterProvider, log))
	engine.Use(middleware.Profiling(cfg.Telemetry.ProfilingEnabled))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(middleware.CORSConfigFromHTTP(cfg.HTTP)))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.SpanErrorMarker())

	var limiters []*middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		rl := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		limiters = append(limiters, rl)
		engine.Use(middleware.RateLimit(rl))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponseWithRequestID(
			dto.ErrCodeNotFound, "Route not found", middleware.GetRequestID(c)))
	})

	r := NewRouter(engine, WithBasePath(cfg.HTTP.BasePath))
	basePath := r.BasePath()

	engine.GET("/health", deps.Handlers.Health.Check)

	jwtConfig := middleware.DefaultJWTConfig(deps.JWTService, basePath)
	jwtConfig.TokenBlacklist = deps.TokenBlacklist
	jwtConfig.Logger = log

	// The docs carry their own auth check, so they get a config without the swagger exemption
	swaggerAuthConfig := jwtConfig
	swaggerAuthConfig.SkipPathPrefixes = nil
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg.Swagger, middleware.JWTAuthMiddleware(swaggerAuthConfig)),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r.Use(middleware.JWTAuthMiddleware(jwtConfig), middleware.TracingAttributeInjector())

	idempotent := idempotencyMiddleware(deps, log)

	authRoutes := NewDomainGroup("auth", "")
	loginHandlers := []gin.HandlerFunc{deps.Handlers.Auth.Login}
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		limiters = append(limiters, authLimiter)
		loginHandlers = append([]gin.HandlerFunc{middleware.RateLimit(authLimiter)}, loginHandlers...)
	}
	authRoutes.POST("/login", loginHandlers...)
	authRoutes.POST("/logout", deps.Handlers.Auth.Logout)
	if basePath != "" {
		authRoutes.GET("/health", deps.Handlers.Health.Check)
	}

	tenantRoutes := NewDomainGroup("tenants", "/tenants")
	tenantRoutes.GET("", deps.Handlers.Tenant.List)
	tenantRoutes.POST("", append(idempotent, deps.Handlers.Tenant.Create)...)
	tenantRoutes.GET("/:id", deps.Handlers.Tenant.GetByID)
	tenantRoutes.PUT("/:id", deps.Handlers.Tenant.Update)
	tenantRoutes.DELETE("/:id", deps.Handlers.Tenant.Delete)
	tenantRoutes.GET("/:id/bills", deps.Handlers.Bill.ListByTenant)
	tenantRoutes.GET("/:id/bills/unpaid", deps.Handlers.Bill.ListUnpaidByTenant)
	tenantRoutes.GET("/:id/bills/totaldue", deps.Handlers.Bill.TotalDue)

	billRoutes := NewDomainGroup("bills", "/bills")
	billRoutes.GET("", deps.Handlers.Bill.List)
	billRoutes.POST("", append(idempotent, deps.Handlers.Bill.Create)...)
	billRoutes.GET("/overdue", deps.Handlers.Bill.ListOverdue)
	billRoutes.GET("/:id", deps.Handlers.Bill.GetByID)
	billRoutes.PUT("/:id", deps.Handlers.Bill.Update)
	billRoutes.DELETE("/:id", deps.Handlers.Bill.Delete)
	billRoutes.POST("/:id/pay", deps.Handlers.Bill.Pay)
	billRoutes.POST("/:id/payments", append(idempotent, deps.Handlers.Bill.RecordPayment)...)

	r.Register(authRoutes).
		Register(tenantRoutes).
		Register(billRoutes)
	r.Setup()

	stop := func() {
		for _, l := range limiters {
			l.Stop()
		}
	}
	return engine, stop
}

// idempotencyMiddleware returns the handlers to prepend to retryable POSTs,
// none when idempotency is off or no store is available
func idempotencyMiddleware(deps Dependencies, log *zap.Logger) []gin.HandlerFunc {
	cfg := deps.Config.Idempotency
	if !cfg.Enabled || deps.IdempotencyStore == nil {
		return nil
	}
	return []gin.HandlerFunc{middleware.Idempotency(deps.IdempotencyStore, cfg.TTL, log)}
}
