package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/mrewrin/LeadTransfer/internal/domain/authz"
	"github.com/mrewrin/LeadTransfer/internal/domain/entity"
	domainrepo "github.com/mrewrin/LeadTransfer/internal/domain/repository"
	"github.com/mrewrin/LeadTransfer/internal/domain/valueobject"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/database"
	"github.com/mrewrin/LeadTransfer/internal/infrastructure/repository"
	"github.com/mrewrin/LeadTransfer/pkg/apperror"
	"github.com/mrewrin/LeadTransfer/tests/testutil"
)

func TestMain(m *testing.M) {
	code := m.Run()
	testutil.CleanupTestEnvironment()
	os.Exit(code)
}

// PostgresRepositorySuite runs the repositories against a migrated PostgreSQL
type PostgresRepositorySuite struct {
	suite.Suite
	pool      *pgxpool.Pool
	tx        *database.TxManager
	listings  *repository.ListingRepository
	catalogs  *repository.CatalogRepository
	roles     *repository.RoleRepository
	principal *repository.PrincipalRepository
}

func TestPostgresRepositorySuite(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration tests. Set INTEGRATION_TEST=true to run.")
	}
	suite.Run(t, new(PostgresRepositorySuite))
}

func (s *PostgresRepositorySuite) SetupSuite() {
	s.pool, _ = testutil.SetupTestEnvironment(s.T())
	s.tx = database.NewTxManager(s.pool)
	s.listings = repository.NewListingRepository(s.tx)
	s.catalogs = repository.NewCatalogRepository(s.tx)
	s.roles = repository.NewRoleRepository(s.tx)
	s.principal = repository.NewPrincipalRepository(s.tx)
}

func (s *PostgresRepositorySuite) SetupTest() {
	testutil.TruncateTables(s.T(), s.pool,
		"catalog_listings", "catalogs", "listings", "user_profiles", "roles", "users")
}

func (s *PostgresRepositorySuite) insertUser(email string) int64 {
	var id int64
	err := s.pool.QueryRow(context.Background(),
		`INSERT INTO users (email, password_hash) VALUES ($1, 'x') RETURNING id`, email).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *PostgresRepositorySuite) createListing(brokerID int64, address string, price float64) int64 {
	l := entity.NewListing(brokerID, entity.ListingAttributes{
		Name:         "Flat " + address,
		Price:        price,
		Currency:     valueobject.DefaultCurrency,
		Status:       valueobject.ListingStatusSale,
		Availability: true,
		Country:      "Georgia",
		City:         "Tbilisi",
		Address:      address,
	})
	s.Require().NoError(s.listings.Create(context.Background(), l))
	s.Require().NotZero(l.ID)
	return l.ID
}

func (s *PostgresRepositorySuite) TestRoles_GetOrCreateIsIdempotent() {
	ctx := context.Background()

	first, err := s.roles.GetOrCreate(ctx, authz.RoleBroker)
	s.Require().NoError(err)
	second, err := s.roles.GetOrCreate(ctx, authz.RoleBroker)
	s.Require().NoError(err)
	s.Equal(first.ID, second.ID)

	_, err = s.roles.FindByName(ctx, authz.RoleAmbassador)
	s.True(apperror.IsNotFound(err))

	all, err := s.roles.List(ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *PostgresRepositorySuite) TestPrincipal_LoadsRoleFromProfile() {
	ctx := context.Background()
	userID := s.insertUser("principal@example.com")
	role, err := s.roles.GetOrCreate(ctx, authz.RoleModerator)
	s.Require().NoError(err)
	_, err = s.pool.Exec(ctx, `INSERT INTO user_profiles (user_id, role_id) VALUES ($1, $2)`, userID, role.ID)
	s.Require().NoError(err)

	p, err := s.principal.LoadPrincipal(ctx, userID)

	s.Require().NoError(err)
	s.True(p.Authenticated())
	s.Equal("principal@example.com", p.Email)
	s.True(authz.IsAdminOrModerator.Allows(p))
}

func (s *PostgresRepositorySuite) TestListings_FilterAndOrder() {
	ctx := context.Background()
	brokerID := s.insertUser("broker@example.com")
	s.createListing(brokerID, "1 Rustaveli Ave", 50000)
	s.createListing(brokerID, "2 Rustaveli Ave", 150000)
	s.createListing(brokerID, "3 Rustaveli Ave", 250000)

	priceMin := 100000.0
	country := "GEOR"
	listings, total, err := s.listings.List(ctx, domainrepo.ListingFilter{
		PriceMin: &priceMin,
		Country:  &country,
		OrderBy:  domainrepo.OrderByPriceDesc,
	})

	s.Require().NoError(err)
	s.Equal(2, total)
	s.Require().Len(listings, 2)
	s.Equal(250000.0, listings[0].Price)
	s.Equal(150000.0, listings[1].Price)
}

func (s *PostgresRepositorySuite) TestListings_ExistsByAddressExcludesSelf() {
	ctx := context.Background()
	brokerID := s.insertUser("addr@example.com")
	id := s.createListing(brokerID, "7 Marjanishvili St", 90000)
	key := entity.AddressKey{Country: "Georgia", City: "Tbilisi", Address: "7 Marjanishvili St"}

	exists, err := s.listings.ExistsByAddress(ctx, key, 0)
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.listings.ExistsByAddress(ctx, key, id)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *PostgresRepositorySuite) TestListings_UniqueAddressIndex() {
	ctx := context.Background()
	brokerID := s.insertUser("unique@example.com")
	s.createListing(brokerID, "9 Chavchavadze Ave", 70000)

	dup := entity.NewListing(brokerID, entity.ListingAttributes{
		Name:    "Duplicate",
		Price:   80000,
		Country: "Georgia",
		City:    "Tbilisi",
		Address: "9 Chavchavadze Ave",
	})
	err := s.listings.Create(ctx, dup)

	appErr, ok := apperror.As(err)
	s.Require().True(ok, "got %v", err)
	s.Require().Len(appErr.Details, 1)
	s.Equal("non_field_errors", appErr.Details[0].Field)
	s.Equal(entity.MsgAddressExists, appErr.Details[0].Message)

	inComplex := entity.NewListing(brokerID, entity.ListingAttributes{
		Name:        "In complex",
		Price:       80000,
		Country:     "Georgia",
		City:        "Tbilisi",
		Address:     "9 Chavchavadze Ave",
		ComplexName: "Vake Park",
	})
	s.Require().NoError(s.listings.Create(ctx, inComplex))

	inComplex.Update(entity.ListingAttributes{
		Name:    "Moved out of complex",
		Price:   80000,
		Country: "Georgia",
		City:    "Tbilisi",
		Address: "9 Chavchavadze Ave",
	})
	err = s.listings.Update(ctx, inComplex)
	appErr, ok = apperror.As(err)
	s.Require().True(ok, "got %v", err)
	s.Equal("non_field_errors", appErr.Details[0].Field)
}

func (s *PostgresRepositorySuite) TestListings_MediaRoundTrip() {
	ctx := context.Background()
	brokerID := s.insertUser("media@example.com")
	l := entity.NewListing(brokerID, entity.ListingAttributes{
		Name:    "With media",
		Price:   1000,
		Address: "4 Leselidze St",
		Photos:  []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
	})
	s.Require().NoError(s.listings.Create(ctx, l))

	got, err := s.listings.FindByID(ctx, l.ID)

	s.Require().NoError(err)
	s.Equal([]string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}, got.Photos)
	s.Equal([]string{}, got.Videos)
}

func (s *PostgresRepositorySuite) TestCatalogs_ReplaceListingsKeepsOrder() {
	ctx := context.Background()
	brokerID := s.insertUser("catalog@example.com")
	l1 := s.createListing(brokerID, "10 Vake", 1000)
	l2 := s.createListing(brokerID, "11 Vake", 2000)
	l3 := s.createListing(brokerID, "12 Vake", 3000)

	c := entity.NewCatalog(brokerID, entity.CatalogAttributes{Name: "Vake"})
	s.Require().NoError(s.catalogs.Create(ctx, c))

	now := time.Now()
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.catalogs.FindByIDForUpdate(ctx, c.ID); err != nil {
			return err
		}
		return s.catalogs.ReplaceListings(ctx, c.ID, []entity.CatalogListing{
			{ListingID: l2, SortOrder: 0, CreatedAt: now},
			{ListingID: l1, SortOrder: 1, CreatedAt: now},
		})
	})
	s.Require().NoError(err)

	got, err := s.catalogs.FindByID(ctx, c.ID)
	s.Require().NoError(err)
	s.Equal([]int64{l2, l1}, listingIDs(got.Listings))
	s.Equal("catalog@example.com", got.BrokerEmail)

	s.Require().NoError(s.catalogs.ReplaceListings(ctx, c.ID, []entity.CatalogListing{
		{ListingID: l3, SortOrder: 0, CreatedAt: now},
	}))
	got, err = s.catalogs.FindByID(ctx, c.ID)
	s.Require().NoError(err)
	s.Equal([]int64{l3}, listingIDs(got.Listings))
}

func (s *PostgresRepositorySuite) TestCatalogs_FailedReplaceRollsBack() {
	ctx := context.Background()
	brokerID := s.insertUser("rollback@example.com")
	l1 := s.createListing(brokerID, "20 Saburtalo", 1000)

	c := entity.NewCatalog(brokerID, entity.CatalogAttributes{Name: "Saburtalo"})
	s.Require().NoError(s.catalogs.Create(ctx, c))
	s.Require().NoError(s.catalogs.ReplaceListings(ctx, c.ID, []entity.CatalogListing{
		{ListingID: l1, CreatedAt: time.Now()},
	}))

	err := s.catalogs.ReplaceListings(ctx, c.ID, []entity.CatalogListing{
		{ListingID: 999999, CreatedAt: time.Now()},
	})
	s.Require().Error(err)

	got, err := s.catalogs.ListListings(ctx, c.ID)
	s.Require().NoError(err)
	s.Equal([]int64{l1}, listingIDs(got))
}

func (s *PostgresRepositorySuite) TestCatalogs_ListScope() {
	ctx := context.Background()
	owner := s.insertUser("owner@example.com")
	other := s.insertUser("other@example.com")

	s.Require().NoError(s.catalogs.Create(ctx, entity.NewCatalog(owner, entity.CatalogAttributes{Name: "public", IsPublic: true})))
	s.Require().NoError(s.catalogs.Create(ctx, entity.NewCatalog(owner, entity.CatalogAttributes{Name: "private"})))
	s.Require().NoError(s.catalogs.Create(ctx, entity.NewCatalog(other, entity.CatalogAttributes{Name: "other private"})))

	tests := []struct {
		name  string
		scope authz.CatalogScope
		total int
	}{
		{name: "anonymous", scope: authz.CatalogScope{}, total: 1},
		{name: "owner", scope: authz.CatalogScope{OwnerID: owner}, total: 2},
		{name: "superuser", scope: authz.CatalogScope{All: true}, total: 3},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			catalogs, total, err := s.catalogs.List(ctx, tt.scope, 10, 0)
			s.Require().NoError(err)
			s.Equal(tt.total, total)
			s.Len(catalogs, tt.total)
		})
	}
}

func (s *PostgresRepositorySuite) TestCatalogs_DeleteMissing() {
	err := s.catalogs.Delete(context.Background(), 424242)
	assert.True(s.T(), apperror.IsNotFound(err))
}

func listingIDs(listings []entity.CatalogListing) []int64 {
	ids := make([]int64, len(listings))
	for i, l := range listings {
		ids[i] = l.ListingID
	}
	return ids
}
