package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/di"
	"github.com/mrewrin/LeadTransfer/internal/interface/middleware"
	"github.com/mrewrin/LeadTransfer/internal/interface/router"
	"github.com/mrewrin/LeadTransfer/internal/interface/validator"
	"github.com/mrewrin/LeadTransfer/pkg/config"
)

// TestServer holds all test server dependencies
type TestServer struct {
	Echo      *echo.Echo
	Pool      *pgxpool.Pool
	Redis     *redis.Client
	Container *di.Container
}

// NewTestServer creates a fully configured test server wired through the DI container
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testConfig := DefaultTestConfig()
	pool, redisClient := SetupTestEnvironment(t)

	cfg := &config.Config{
		App: config.AppConfig{Env: "test", Name: "leadtransfer-test"},
		JWT: config.JWTConfig{
			SecretKey:          testConfig.JWTSecretKey,
			Issuer:             "leadtransfer-test",
			Audience:           []string{"leadtransfer-api-test"},
			AccessTokenExpiry:  15 * time.Minute,
			RefreshTokenExpiry: 7 * 24 * time.Hour,
		},
		// Rate limiting is exercised by the middleware unit tests
		RateLimit: config.RateLimitConfig{Enabled: false},
		Audit:     config.AuditConfig{BufferSize: 100, RetentionDays: 90},
		Metrics:   config.MetricsConfig{Enabled: true, Namespace: "leadtransfer_test"},
		Roles:     config.RolesConfig{CacheSize: 16, CacheTTL: time.Minute},
	}

	container, err := di.NewContainerWithOptions(context.Background(), cfg, di.Options{
		PostgresPool: pool,
		RedisClient:  redisClient,
	})
	require.NoError(t, err)
	container.InitUseCases()
	t.Cleanup(func() { _ = container.Close() })

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Validator = validator.NewCustomValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())

	router.NewRouter(e, di.NewHandlersForTest(container), di.NewMiddlewares(container), container.Metrics.Registry()).Setup()

	return &TestServer{
		Echo:      e,
		Pool:      pool,
		Redis:     redisClient,
		Container: container,
	}
}

// Cleanup cleans up test data and seeds the canonical roles.
// Roles are kept across tests so ids cached by the role repository stay valid.
func (ts *TestServer) Cleanup(t *testing.T) {
	t.Helper()
	TruncateTables(t, ts.Pool,
		"catalog_listings", "catalogs", "listings",
		"user_verifications", "role_assignment_history", "user_profiles",
		"audit_logs", "users",
	)
	FlushRedis(t, ts.Redis)

	ctx := context.Background()
	for _, role := range authz.CanonicalRoles() {
		_, err := ts.Pool.Exec(ctx, `INSERT INTO roles (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, role.String())
		require.NoError(t, err)
	}
}

// Tokens holds a token pair returned by login
type Tokens struct {
	Access  string
	Refresh string
}

// RegisterUser registers a user with the given role through the API
func (ts *TestServer) RegisterUser(t *testing.T, email, password, role string) {
	t.Helper()
	DoRequest(t, ts.Echo, HTTPRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/register/",
		Body: map[string]string{
			"email":    email,
			"password": password,
			"role":     role,
		},
	}).AssertStatus(http.StatusCreated)
}

// Login logs in through the API and returns the token pair
func (ts *TestServer) Login(t *testing.T, email, password string) Tokens {
	t.Helper()
	resp := DoRequest(t, ts.Echo, HTTPRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/login/",
		Body: map[string]string{
			"email":    email,
			"password": password,
		},
	}).AssertStatus(http.StatusOK)

	body := resp.GetJSON()
	access, _ := body["access"].(string)
	refresh, _ := body["refresh"].(string)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	return Tokens{Access: access, Refresh: refresh}
}

// RegisterAndLogin registers a user with a role and logs in
func (ts *TestServer) RegisterAndLogin(t *testing.T, email, role string) Tokens {
	t.Helper()
	const password = "Str0ngPassw0rd!"
	ts.RegisterUser(t, email, password, role)
	return ts.Login(t, email, password)
}

// MakeSuperuser flags an existing user as superuser and staff
func (ts *TestServer) MakeSuperuser(t *testing.T, email string) {
	t.Helper()
	tag, err := ts.Pool.Exec(context.Background(),
		`UPDATE users SET is_superuser = TRUE, is_staff = TRUE WHERE email = $1`, email)
	require.NoError(t, err)
	require.Equal(t, int64(1), tag.RowsAffected())
}

// UserID returns the id of the user with the given email
func (ts *TestServer) UserID(t *testing.T, email string) int64 {
	t.Helper()
	var id int64
	err := ts.Pool.QueryRow(context.Background(), `SELECT id FROM users WHERE email = $1`, email).Scan(&id)
	require.NoError(t, err)
	return id
}
