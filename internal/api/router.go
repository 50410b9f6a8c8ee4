package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/healthhub/gym-admin/internal/api/handler"
	"github.com/healthhub/gym-admin/internal/api/middleware"
	"github.com/healthhub/gym-admin/internal/core/domain"
	"github.com/healthhub/gym-admin/internal/core/service"
	mongodb "github.com/healthhub/gym-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/healthhub/gym-admin/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("gym_admin"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	gymRepo := mongodb.NewGymRepository(db)
	memberRepo := mongodb.NewMemberRepository(db)
	revoker := redisdb.NewRevokedTokenStore(rdb)

	authService := service.NewAuthService(authRepo, revoker, jwtSecret, tokenTTL)
	gymService := service.NewGymService(gymRepo, authRepo)
	memberService := service.NewMemberService(memberRepo, gymRepo)

	authHandler := handler.NewAuthHandler(authService)
	gymHandler := handler.NewGymHandler(gymService)
	memberHandler := handler.NewMemberHandler(memberService)

	authMiddleware := middleware.Auth(jwtSecret, revoker)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMiddleware)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)
	e.POST("/auth/register/admin", authHandler.RegisterAdmin,
		authMiddleware, middleware.RBAC(domain.RoleSuperadmin))

	// --- Gym routes ---
	gyms := e.Group("/gyms", authMiddleware, middleware.RBAC(domain.RoleSuperadmin, domain.RoleAdmin))
	gyms.POST("", gymHandler.Create)
	gyms.GET("", gymHandler.List)

	// --- Listing routes ---
	e.GET("/users", memberHandler.ListUsers,
		authMiddleware, middleware.RBAC(domain.RoleSuperadmin, domain.RoleAdmin))
	e.GET("/consultants", memberHandler.ListConsultants,
		authMiddleware, middleware.RBAC(domain.RoleSuperadmin, domain.RoleAdmin))

	// --- Dashboard overview ---
	e.GET("/dashboard/metrics", memberHandler.PlatformMetrics,
		authMiddleware, middleware.RBAC(domain.RoleSuperadmin))

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
