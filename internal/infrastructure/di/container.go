package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/service"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/audit"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/cache"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/database"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/metrics"
	infraRepo "github.com/mrewrin/LeadTransfer/internal/infrastructure/repository"
	"github.com/mrewrin/LeadTransfer/pkg/config"
	"github.com/mrewrin/LeadTransfer/pkg/jwt"
)

// Container はアプリケーションの依存関係を保持するDIコンテナです
type Container struct {
	// Infrastructure
	PgClient    *database.PostgresClient
	RedisClient *cache.RedisClient
	TxManager   *database.TxManager

	// Services
	JWTService    *jwt.JWTService
	JWTBlacklist  *cache.JWTBlacklist
	RateLimiter   *cache.RateLimiter
	Metrics       *metrics.Metrics
	AuditService  *audit.Service
	AccessService service.AccessService

	// Repositories
	UserRepo         repository.UserRepository
	SessionRepo      repository.SessionRepository
	UserProfileRepo  repository.UserProfileRepository
	VerificationRepo repository.UserVerificationRepository
	RoleRepo         repository.RoleRepository
	RoleHistoryRepo  repository.RoleAssignmentRepository
	PrincipalRepo    repository.PrincipalRepository
	ListingRepo      repository.ListingRepository
	CatalogRepo      repository.CatalogRepository
	AuditLogRepo     repository.AuditLogRepository

	// UseCases
	Auth    *AuthUseCases
	Authz   *AuthzUseCases
	Profile *ProfileUseCases
	Listing *ListingUseCases
	Catalog *CatalogUseCases

	config *config.Config
}

// NewContainer は新しいContainerを作成します
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	return NewContainerWithOptions(ctx, cfg, Options{})
}

// NewContainerWithOptions はオプションを指定してContainerを作成します
func NewContainerWithOptions(ctx context.Context, cfg *config.Config, opts Options) (*Container, error) {
	c := &Container{
		config: cfg,
	}

	// PostgreSQL
	if opts.PostgresPool != nil {
		c.TxManager = database.NewTxManager(opts.PostgresPool)
	} else {
		slog.Info("connecting to PostgreSQL...")
		dbConfig := database.DefaultDBConfig()
		if cfg.Database.MaxConns > 0 {
			dbConfig.MaxConns = cfg.Database.MaxConns
		}
		if cfg.Database.MinConns > 0 {
			dbConfig.MinConns = cfg.Database.MinConns
		}
		pgClient, err := database.NewPostgresClientWithConfig(ctx, cfg.Database.URL, dbConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		c.PgClient = pgClient
		c.TxManager = database.NewTxManager(pgClient.Pool())
		slog.Info("connected to PostgreSQL")
	}

	// Redis
	var redisClient *redis.Client
	if opts.RedisClient != nil {
		redisClient = opts.RedisClient
	} else {
		slog.Info("connecting to Redis...")
		redisConfig := cache.DefaultConfig()
		redisConfig.URL = cfg.Redis.URL
		client, err := cache.NewRedisClient(ctx, redisConfig)
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		c.RedisClient = client
		redisClient = client.Client()
		slog.Info("connected to Redis")
	}
	c.SessionRepo = cache.NewSessionStore(redisClient, cfg.JWT.RefreshTokenExpiry)
	c.JWTBlacklist = cache.NewJWTBlacklist(redisClient)
	c.RateLimiter = cache.NewRateLimiter(redisClient)

	// JWT Service
	jwtConfig := jwt.Config{
		SecretKey:          cfg.JWT.SecretKey,
		Issuer:             cfg.JWT.Issuer,
		Audience:           cfg.JWT.Audience,
		AccessTokenExpiry:  cfg.JWT.AccessTokenExpiry,
		RefreshTokenExpiry: cfg.JWT.RefreshTokenExpiry,
	}
	c.JWTService = jwt.NewJWTService(jwtConfig)

	// Metrics
	c.Metrics = metrics.New(cfg.Metrics.Namespace)

	// Repositories
	c.UserRepo = infraRepo.NewUserRepository(c.TxManager)
	c.UserProfileRepo = infraRepo.NewUserProfileRepository(c.TxManager)
	c.VerificationRepo = infraRepo.NewUserVerificationRepository(c.TxManager)
	c.RoleRepo = cache.NewCachedRoleRepository(
		infraRepo.NewRoleRepository(c.TxManager),
		cfg.Roles.CacheSize,
		cfg.Roles.CacheTTL,
	)
	c.RoleHistoryRepo = infraRepo.NewRoleAssignmentRepository(c.TxManager)
	c.PrincipalRepo = infraRepo.NewPrincipalRepository(c.TxManager)
	c.ListingRepo = infraRepo.NewListingRepository(c.TxManager)
	c.CatalogRepo = infraRepo.NewCatalogRepository(c.TxManager)
	c.AuditLogRepo = infraRepo.NewAuditLogRepository(c.TxManager)

	// Domain services
	c.AccessService = service.NewAccessService(authz.NewGate(), c.Metrics)
	c.AuditService = audit.NewService(c.AuditLogRepo, cfg.Audit.BufferSize, c.Metrics)

	return c, nil
}

// InitUseCases は全てのUseCaseを初期化します
func (c *Container) InitUseCases() {
	c.Auth = NewAuthUseCases(c)
	c.Authz = NewAuthzUseCases(c)
	c.Profile = NewProfileUseCases(c)
	c.Listing = NewListingUseCases(c)
	c.Catalog = NewCatalogUseCases(c)
}

// Config はコンテナ作成時の設定を返します
func (c *Container) Config() *config.Config {
	return c.config
}

// Close はリソースをクリーンアップします
func (c *Container) Close() error {
	var errs []error

	if c.AuditService != nil {
		c.AuditService.Shutdown()
	}

	if c.PgClient != nil {
		c.PgClient.Close()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}
	return nil
}

// Options はContainer作成時のオプションを定義します
type Options struct {
	PostgresPool *pgxpool.Pool
	RedisClient  *redis.Client
}
