package router

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/cache"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/di"
)

// Router はルート定義を管理します
type Router struct {
	echo        *echo.Echo
	handlers    *di.Handlers
	middlewares *di.Middlewares
	registry    *prometheus.Registry
}

// NewRouter は新しいRouterを作成します
// registry が nil の場合 /metrics は公開しません
func NewRouter(e *echo.Echo, handlers *di.Handlers, middlewares *di.Middlewares, registry *prometheus.Registry) *Router {
	return &Router{
		echo:        e,
		handlers:    handlers,
		middlewares: middlewares,
		registry:    registry,
	}
}

// Setup は全てのルートを設定します
func (r *Router) Setup() {
	r.setupHealthRoutes()
	r.setupMetricsRoutes()
	r.setupAPIRoutes()
}

// setupHealthRoutes はヘルスチェックルートを設定します
func (r *Router) setupHealthRoutes() {
	if r.handlers.Health == nil {
		return
	}
	r.echo.GET("/health", r.handlers.Health.Check)
	r.echo.GET("/ready", r.handlers.Health.Ready)
}

// setupMetricsRoutes はPrometheusのメトリクスルートを設定します
func (r *Router) setupMetricsRoutes() {
	if r.registry == nil {
		return
	}
	r.echo.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Registerer:                r.registry,
		DoNotUseRequestPathFor404: true,
		Skipper: func(c echo.Context) bool {
			switch c.Path() {
			case "/metrics", "/health", "/ready":
				return true
			}
			return false
		},
	}))
	r.echo.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: r.registry,
	}))
}

// setupAPIRoutes はAPIルートを設定します
func (r *Router) setupAPIRoutes() {
	api := r.echo.Group("/api", r.middlewares.Audit.Inject())

	r.setupAuthRoutes(api)
	r.setupListingRoutes(api)
	r.setupCatalogRoutes(api)
}

// setupAuthRoutes は認証・ロール・プロファイル関連ルートを設定します
func (r *Router) setupAuthRoutes(api *echo.Group) {
	auth := api.Group("/auth")
	jwtAuth := r.middlewares.JWTAuth.Authenticate()
	require := r.middlewares.Permission.Require

	// Public
	auth.POST("/register", r.handlers.Auth.Register,
		r.middlewares.RateLimit.ByIP(cache.RateLimitAuthRegister))
	auth.POST("/login", r.handlers.Auth.Login,
		r.middlewares.RateLimit.ByIP(cache.RateLimitAuthLogin))
	auth.POST("/refresh", r.handlers.Auth.Refresh,
		r.middlewares.RateLimit.ByIP(cache.RateLimitAuthRefresh))

	// Authenticated
	authed := auth.Group("", jwtAuth, r.middlewares.RateLimit.ByUser(cache.RateLimitAPIDefault))
	authed.POST("/logout", r.handlers.Auth.Logout)
	authed.POST("/change-password", r.handlers.Auth.ChangePassword)
	authed.GET("/me", r.handlers.Auth.Me)
	authed.GET("/protected", r.handlers.Auth.Protected, require(authz.PolicyAuthenticated))
	authed.GET("/roles", r.handlers.Role.ListRoles, require(authz.PolicyAuthenticated))

	authed.GET("/profile", r.handlers.Profile.GetProfile)
	authed.PUT("/profile", r.handlers.Profile.UpdateProfile)
	authed.POST("/profile/verify", r.handlers.Profile.SubmitVerification)
	authed.POST("/profile/verify/:user_id/decision", r.handlers.Profile.DecideVerification,
		require(authz.PolicyAdminOrModerator))

	authed.POST("/assign-role", r.handlers.Role.AssignRole, require(authz.PolicyAdminOrModerator))
	authed.GET("/users/:id/role-history", r.handlers.Role.RoleHistory, require(authz.PolicyAdminOrModerator))
	authed.POST("/verify-broker/:id", r.handlers.Role.VerifyBroker, require(authz.PolicyStaff))

	authed.GET("/admin-or-moderator", r.handlers.Role.AdminOrModerator, require(authz.PolicyAdminOrModerator))
	authed.GET("/broker-or-ambassador", r.handlers.Role.BrokerOrAmbassador, require(authz.PolicyBrokerOrAmbassador))
}

// setupListingRoutes は物件ルートを設定します
func (r *Router) setupListingRoutes(api *echo.Group) {
	require := r.middlewares.Permission.Require

	objects := api.Group("/objects", r.middlewares.JWTAuth.OptionalAuth())
	objects.GET("", r.handlers.Listing.List, require(authz.PolicyPublic))
	objects.POST("", r.handlers.Listing.Create, require(authz.PolicyAdminOrBroker))
	objects.GET("/:id", r.handlers.Listing.Get, require(authz.PolicyPublic))
	objects.PUT("/:id", r.handlers.Listing.Update, require(authz.PolicyAdminOrBroker))
	objects.DELETE("/:id", r.handlers.Listing.Delete, require(authz.PolicyAdminOrBroker))
	objects.POST("/:id/assign-broker", r.handlers.Listing.AssignBroker, require(authz.PolicyListingDelegation))
}

// setupCatalogRoutes はカタログルートを設定します
func (r *Router) setupCatalogRoutes(api *echo.Group) {
	require := r.middlewares.Permission.Require

	catalogs := api.Group("/catalogs", r.middlewares.JWTAuth.OptionalAuth())
	catalogs.GET("", r.handlers.Catalog.List, require(authz.PolicyPublic))
	catalogs.POST("", r.handlers.Catalog.Create, require(authz.PolicyAdminOrBroker))
	catalogs.GET("/:id", r.handlers.Catalog.Get, require(authz.PolicyPublic))
	catalogs.PUT("/:id", r.handlers.Catalog.Update, require(authz.PolicyAdminOrBroker))
	catalogs.DELETE("/:id", r.handlers.Catalog.Delete, require(authz.PolicyAdminOrBroker))
}
