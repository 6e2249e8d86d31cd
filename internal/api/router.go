package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell/blog-api/internal/api/handler"
	"github.com/inkwell/blog-api/internal/api/middleware"
	"github.com/inkwell/blog-api/internal/core/ports"
	"github.com/inkwell/blog-api/internal/core/service"
)

// Deps carries everything the router needs. Repositories and the
// session store are built in main so startup tasks (index creation)
// and the router share the same instances.
type Deps struct {
	Users      ports.UserRepository
	Posts      ports.PostRepository
	Sessions   ports.SessionStore
	Activity   ports.ActivityRecorder
	Mongo      *mongo.Database
	Redis      *redis.Client
	SessionTTL time.Duration
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Services and handlers ---
	authService := service.NewAuthService(deps.Users, deps.Sessions, deps.Log)
	postService := service.NewPostService(deps.Posts, deps.Activity, deps.Log)

	authHandler := handler.NewAuthHandler(authService, deps.SessionTTL)
	postHandler := handler.NewPostHandler(postService)

	// --- API routes: every request resolves its session first ---
	api := e.Group("/api", middleware.LoadSession(deps.Sessions, deps.Log))

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/signin", authHandler.Signin)
	auth.POST("/signout", authHandler.Signout)
	auth.GET("/me", authHandler.Me)

	api.GET("/posts", postHandler.List)
	api.GET("/posts/:id", postHandler.Get)

	authed := api.Group("/posts", middleware.RequireSession())
	authed.POST("", postHandler.Create)
	authed.PUT("/:id", postHandler.Update)
	authed.DELETE("/:id", postHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
