package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/exportbase/marketplace-api/docs"
	"github.com/exportbase/marketplace-api/internal/api/handler"
	"github.com/exportbase/marketplace-api/internal/api/middleware"
	"github.com/exportbase/marketplace-api/internal/core/domain"
	"github.com/exportbase/marketplace-api/internal/core/ports"
	"github.com/exportbase/marketplace-api/internal/core/service"
	"github.com/exportbase/marketplace-api/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router needs, constructed by the
// caller. Wiring stays explicit so tests can swap any piece.
type Dependencies struct {
	Log          zerolog.Logger
	AuthService  ports.AuthService
	Sessions     *service.SessionService
	Products     ports.ProductService
	Leads        ports.LeadService
	Campaigns    *service.CampaignService
	Training     *service.TrainingService
	Directory    *service.DirectoryService
	Analytics    *service.AnalyticsService
	Messages     []*domain.Message
	HealthChecks *handlers.HealthDependenciesHandler
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("exportbase"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Sessions)
	productHandler := handler.NewProductHandler(deps.Products)
	leadHandler := handler.NewLeadHandler(deps.Leads)
	campaignHandler := handler.NewCampaignHandler(deps.Campaigns)
	trainingHandler := handler.NewTrainingHandler(deps.Training)
	directoryHandler := handler.NewDirectoryHandler(deps.Directory)
	navigationHandler := handler.NewNavigationHandler()
	profileHandler := handler.NewProfileHandler(deps.AuthService)
	dashboardHandler := handler.NewDashboardHandler(deps.Analytics)
	adminHandler := handler.NewAdminHandler(deps.Analytics, deps.Campaigns, deps.Training, deps.Messages)
	contactHandler := handler.NewContactHandler(deps.Log)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"service": "exportbase-marketplace-api"})
	})

	auth := e.Group("/v1/auth")
	auth.POST("/signin", authHandler.Signin)
	auth.POST("/signup", authHandler.Signup)
	// Signing out without a session is a no-op and reading an absent
	// session answers user:null, so neither sits behind the guard.
	auth.POST("/signout", authHandler.Signout)
	auth.GET("/session", authHandler.Session)

	directory := e.Group("/v1/directory")
	directory.GET("/factories", directoryHandler.List)
	directory.GET("/factories/:id", directoryHandler.Get)

	e.POST("/v1/contact", contactHandler.Submit)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if deps.HealthChecks != nil {
		e.GET("/health/ready", deps.HealthChecks.Readiness)
	}

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Guarded routes ---
	guard := middleware.Guard(deps.Sessions)

	e.GET("/v1/navigation", navigationHandler.Menu, guard, middleware.RBAC())

	dashboard := e.Group("/v1/dashboard", guard)
	dashboard.GET("", dashboardHandler.Overview, rbacFor("/dashboard"))
	dashboard.GET("/analytics", dashboardHandler.Overview, rbacFor("/dashboard/analytics"))

	dashboard.GET("/products", productHandler.List, rbacFor("/dashboard/products"))
	dashboard.POST("/products", productHandler.Create, rbacFor("/dashboard/products"))
	dashboard.GET("/products/:id", productHandler.Get, rbacFor("/dashboard/products/:id"))
	dashboard.PATCH("/products/:id", productHandler.UpdateStatus, rbacFor("/dashboard/products/:id"))
	dashboard.DELETE("/products/:id", productHandler.Delete, rbacFor("/dashboard/products/:id"))

	dashboard.GET("/leads", leadHandler.List, rbacFor("/dashboard/leads"))
	dashboard.POST("/leads", leadHandler.Submit, rbacFor("/dashboard/leads"))
	dashboard.GET("/leads/:id", leadHandler.Get, rbacFor("/dashboard/leads/:id"))
	dashboard.PATCH("/leads/:id", leadHandler.UpdateStatus, rbacFor("/dashboard/leads/:id"))

	dashboard.GET("/profile", profileHandler.Get, rbacFor("/dashboard/profile"))
	dashboard.PUT("/profile", profileHandler.Update, rbacFor("/dashboard/profile"))
	dashboard.GET("/settings", profileHandler.Settings, rbacFor("/dashboard/settings"))
	dashboard.PUT("/settings", profileHandler.UpdateSettings, rbacFor("/dashboard/settings"))

	dashboard.GET("/training", trainingHandler.List, rbacFor("/dashboard/training"))
	dashboard.POST("/training/:id/complete", trainingHandler.Complete, rbacFor("/dashboard/training"))

	dashboard.GET("/campaigns", campaignHandler.List, rbacFor("/dashboard/campaigns"))
	dashboard.GET("/campaigns/:id", campaignHandler.Get, rbacFor("/dashboard/campaigns/:id"))

	dashboard.GET("/marketers", adminHandler.Marketers, rbacFor("/dashboard/marketers"))
	dashboard.GET("/factories", directoryHandler.List, rbacFor("/dashboard/factories"))
	dashboard.GET("/content", adminHandler.Content, rbacFor("/dashboard/content"))
	dashboard.GET("/messages", adminHandler.Messages, rbacFor("/dashboard/messages"))

	return e
}

// rbacFor looks up the role policy for a dashboard path in the navigation
// map. An unlisted path falls back to any-authenticated, matching the
// guard's default.
func rbacFor(path string) echo.MiddlewareFunc {
	roles, _ := domain.RolesFor(path)
	return middleware.RBAC(roles...)
}
