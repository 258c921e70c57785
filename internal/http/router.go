// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, rate
// limiting, CORS, security headers, and cookie-session authentication.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Route-level auth guards stay thin: ownership and staff rules that
//     depend on the target resource live in the services
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/foodlog/go-recipe-backend/internal/config"
	"github.com/foodlog/go-recipe-backend/internal/http/handlers"
	"github.com/foodlog/go-recipe-backend/internal/http/middleware"
	"github.com/foodlog/go-recipe-backend/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS and security headers, session resolution, health and metrics
// endpoints, and then mounts the versioned public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. AccessLogger: structured logs with session-cookie masking
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. CurrentUser: resolve the session cookie once per request
//  8. Rate limiter (per user/IP)
//  9. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// Dependency injection: services ← db + config
	authSvc := &services.AuthService{DB: db, SessionTTL: cfg.Session.TTL}
	recipeSvc := &services.RecipeService{DB: db}
	catalogSvc := &services.CatalogService{DB: db, Feed: cfg.Feed}
	searchSvc := &services.SearchService{DB: db, PageSize: cfg.Feed.SearchPageSize}
	commentSvc := &services.CommentService{DB: db}
	ratingSvc := &services.RatingService{DB: db}
	likeSvc := &services.LikeService{DB: db}
	h := handlers.New(recipeSvc, catalogSvc, searchSvc, commentSvc, ratingSvc, likeSvc, authSvc, cfg.Session)

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging; the session cookie value never reaches the logs
	r.Use(middleware.AccessLogger(cfg.Session.CookieName))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Resolve the session cookie into the request's user
	r.Use(middleware.CurrentUser(authSvc, cfg.Session.CookieName))

	// 8) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture. Sessions ride on cookies, so credentials must be
	// allowed and a wildcard origin is only usable without them.
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Compress feed and search payloads.
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (opt-in)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Accounts
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)

		// Feeds and detail
		api.GET("/recipes/recent", h.RecentRecipes)
		api.GET("/recipes", h.ListRecipes)
		api.GET("/search", h.SearchRecipes)

		// Authoring. Ownership checks live in the service; these guards
		// only require a session.
		api.GET("/recipes/new", middleware.RequireStaff(), h.NewRecipe)
		api.POST("/recipes", middleware.RequireAuth(), h.CreateRecipe)
		api.GET("/recipes/:id", h.GetRecipe)
		api.PUT("/recipes/:id", middleware.RequireAuth(), h.UpdateRecipe)
		api.DELETE("/recipes/:id", middleware.RequireAuth(), h.DeleteRecipe)
		api.POST("/autosave", middleware.RequireAuth(), h.Autosave)

		// Categories
		api.GET("/categories", h.ListCategories)
		api.POST("/categories", middleware.RequireStaff(), h.CreateCategory)
		api.DELETE("/categories/:id", middleware.RequireStaff(), h.DeleteCategory)
		api.GET("/categories/:id/recipes", h.ListCategoryRecipes)

		// Comments. Moderation endpoints accept any session so the staff
		// rule in the service answers with 403 instead of a routing 404.
		api.POST("/recipes/:id/comments", middleware.RequireAuth(), h.AddComment)
		api.POST("/comments/:id/approve", middleware.RequireAuth(), h.ApproveComment)
		api.POST("/comments/:id/reject", middleware.RequireAuth(), h.RejectComment)
		api.DELETE("/comments/:id", middleware.RequireAuth(), h.DeleteComment)

		// Interactions
		api.POST("/recipes/:id/rating", middleware.RequireAuth(), h.RateRecipe)
		api.POST("/recipes/:id/like", middleware.RequireAuth(), h.ToggleLike)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the
// cap cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
