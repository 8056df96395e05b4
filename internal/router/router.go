package router

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/vladimirahmad90-oss/AccountManagement/internal/handler"
	accounthandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/account"
	assignmenthandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/assignment"
	authhandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/auth"
	backuphandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/backup"
	garansihandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/garansi"
	promhandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/prometheus"
	reporthandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/report"
	statshandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/stats"
	userhandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/user"
	whatsapphandler "github.com/vladimirahmad90-oss/AccountManagement/internal/handler/whatsapp"
	"github.com/vladimirahmad90-oss/AccountManagement/internal/middleware"
	"github.com/vladimirahmad90-oss/AccountManagement/pkg/logger"
)

type Handlers struct {
	Health     *handler.HealthHandler
	Auth       *authhandler.Handler
	Account    *accounthandler.Handler
	Assignment *assignmenthandler.Handler
	Garansi    *garansihandler.Handler
	Report     *reporthandler.Handler
	Whatsapp   *whatsapphandler.Handler
	User       *userhandler.Handler
	Stats      *statshandler.Handler
	Backup     *backuphandler.Handler
	Metrics    *promhandler.Handler
}

type Config struct {
	Logger     *logger.Logger
	RateLimit  rate.Limit
	RateBurst  int
	CORSConfig middleware.CORSConfig
}

type Router struct {
	engine   *gin.Engine
	auth     *middleware.AuthMiddleware
	handlers Handlers
}

func NewRouter(auth *middleware.AuthMiddleware, handlers Handlers, config Config) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(config.Logger),
		handlers.Metrics.Middleware(),
		middleware.CORS(config.CORSConfig),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return &Router{engine: engine, auth: auth, handlers: handlers}
}

func (r *Router) Setup() {
	r.engine.GET("/health", r.handlers.Health.HealthCheck)
	r.engine.GET("/metrics", r.handlers.Metrics.Handler())

	api := r.engine.Group("/api/v1")

	// Public routes
	r.handlers.Auth.RegisterRoutes(api)

	// Routes shared by operators and admins
	protected := api.Group("")
	protected.Use(r.auth.Authenticate())
	{
		r.handlers.Account.RegisterRoutes(protected)
		r.handlers.Assignment.RegisterRoutes(protected)
		r.handlers.Report.RegisterRoutes(protected)
		r.handlers.Whatsapp.RegisterRoutes(protected)
	}

	// Admin-only routes
	admin := api.Group("")
	admin.Use(r.auth.Authenticate(), r.auth.RequireAdmin())
	{
		r.handlers.Account.RegisterAdminRoutes(admin)
		r.handlers.Garansi.RegisterRoutes(admin)
		r.handlers.Report.RegisterAdminRoutes(admin)
		r.handlers.Whatsapp.RegisterAdminRoutes(admin)
		r.handlers.User.RegisterAdminRoutes(admin)
		r.handlers.Stats.RegisterAdminRoutes(admin)
		r.handlers.Backup.RegisterAdminRoutes(admin)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
