package api

import (
	"path/filepath"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/qalab/employee-directory/docs"
	"github.com/qalab/employee-directory/internal/api/handler"
	"github.com/qalab/employee-directory/internal/api/middleware"
	"github.com/qalab/employee-directory/internal/core/domain"
	"github.com/qalab/employee-directory/internal/core/ports"
)

// Dependencies are the process-scoped collaborators the router wires into
// handlers and middleware.
type Dependencies struct {
	Auth      ports.AuthService
	Employees ports.EmployeeService
	// Checkers back GET /health/ready.
	Checkers []handler.Checker
	Logger   zerolog.Logger

	// PublicDir holds the static frontend. Empty disables page routes.
	PublicDir string
	// BodyLimit caps request bodies, e.g. "200K".
	BodyLimit string
	// QAFaults enables the fault-injection middleware on /api.
	QAFaults bool
	// FaultRandom overrides the fault-rate draw; nil uses math/rand.
	FaultRandom func() float64
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// Each router gets its own registry for HTTP metrics; business counters
	// live on the default one.
	reg := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.AttachIdentity(deps.Auth, deps.Logger))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))
	if deps.BodyLimit != "" {
		e.Use(echomiddleware.BodyLimit(deps.BodyLimit))
	}
	if deps.QAFaults {
		e.Use(middleware.FaultInjection(middleware.FaultConfig{
			Prefix: "/api",
			Random: deps.FaultRandom,
			Logger: deps.Logger,
		}))
	}

	authHandler := handler.NewAuthHandler(deps.Auth)
	employeeHandler := handler.NewEmployeeHandler(deps.Employees)

	requireAuth := middleware.RequireAuthenticated()
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)
	singleID := middleware.SingleSegment("id")

	// --- Auth routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/login", authHandler.Login)
	apiGroup.POST("/logout", authHandler.Logout)
	apiGroup.GET("/me", authHandler.Me, requireAuth)

	// --- Employee routes ---
	// Route-level guards: a guarded group would also claim unknown
	// /api/employees/* paths and answer them 401 instead of 404.
	apiGroup.GET("/employees", employeeHandler.List, requireAuth)
	apiGroup.GET("/employees/:id", employeeHandler.Get, singleID, requireAuth)
	apiGroup.POST("/employees", employeeHandler.Create, requireAuth, requireAdmin)
	apiGroup.POST("/employees/bulk", employeeHandler.Bulk, requireAuth, requireAdmin)
	apiGroup.PUT("/employees/:id", employeeHandler.Update, singleID, requireAuth, requireAdmin)
	apiGroup.DELETE("/employees/:id", employeeHandler.Delete, singleID, requireAuth, requireAdmin)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(deps.Checkers...)
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{reg, prometheus.DefaultGatherer},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Frontend ---
	if deps.PublicDir != "" {
		registerPages(e, deps.PublicDir)
	}

	return e
}

// registerPages serves the static frontend. Page routes map to fixed HTML
// files; every other GET is looked up under dir. Misses end in the error
// handler's plain-text 404.
func registerPages(e *echo.Echo, dir string) {
	page := func(name string) echo.HandlerFunc {
		file := filepath.Join(dir, name)
		return func(c echo.Context) error {
			return c.File(file)
		}
	}

	e.GET("/", page("login.html"))
	e.GET("/employees", page("employees.html"))
	e.GET("/employees/:id", page("employee.html"), middleware.SingleSegment("id"))
	e.Static("/", dir)
}
