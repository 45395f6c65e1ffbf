package di

import (
	"github.com/mrewrin/LeadTransfer/internal/interface/handler"
)

// Handlers はアプリケーションのハンドラーを保持します
type Handlers struct {
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	Role    *handler.RoleHandler
	Profile *handler.ProfileHandler
	Listing *handler.ListingHandler
	Catalog *handler.CatalogHandler
}

// NewHandlers はContainerから全てのハンドラーを初期化します
func NewHandlers(c *Container) *Handlers {
	healthHandler := handler.NewHealthHandler()
	if c.PgClient != nil {
		healthHandler.RegisterChecker("postgres", c.PgClient)
	}
	if c.RedisClient != nil {
		healthHandler.RegisterChecker("redis", c.RedisClient)
	}

	h := NewHandlersForTest(c)
	h.Health = healthHandler
	return h
}

// NewHandlersForTest はテスト用にハンドラーを初期化します（依存サービスのチェッカーなし）
func NewHandlersForTest(c *Container) *Handlers {
	return &Handlers{
		Health: handler.NewHealthHandler(),
		Auth: handler.NewAuthHandler(
			c.Auth.Register,
			c.Auth.Login,
			c.Auth.RefreshToken,
			c.Auth.Logout,
			c.Auth.ChangePassword,
			c.Auth.GetUser,
		),
		Role: handler.NewRoleHandler(
			c.Authz.AssignRole,
			c.Authz.VerifyBroker,
			c.Authz.ListRoles,
			c.Authz.ListRoleHistory,
		),
		Profile: handler.NewProfileHandler(
			c.Profile.UpdateProfile,
			c.Profile.SubmitVerification,
			c.Profile.DecideVerification,
			c.Profile.GetProfile,
		),
		Listing: handler.NewListingHandler(
			c.Listing.Create,
			c.Listing.Update,
			c.Listing.Delete,
			c.Listing.AssignBroker,
			c.Listing.Get,
			c.Listing.List,
		),
		Catalog: handler.NewCatalogHandler(
			c.Catalog.Create,
			c.Catalog.Update,
			c.Catalog.Delete,
			c.Catalog.Get,
			c.Catalog.List,
		),
	}
}
