package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mrewrin/LeadTransfer/tests/testutil"
)

// CatalogTestSuite covers catalog visibility and membership
type CatalogTestSuite struct {
	suite.Suite
	server *testutil.TestServer
}

func (s *CatalogTestSuite) SetupSuite() {
	s.server = testutil.NewTestServer(s.T())
}

func (s *CatalogTestSuite) SetupTest() {
	s.server.Cleanup(s.T())
}

func TestCatalogSuite(t *testing.T) {
	skipUnlessIntegration(t)
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) createListing(token, address string) int64 {
	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/objects/",
		AccessToken: token,
		Body: map[string]interface{}{
			"name":    "Listing " + address,
			"price":   1000,
			"country": "Georgia",
			"city":    "Batumi",
			"address": address,
		},
	}).AssertStatus(http.StatusCreated)
	return int64(resp.GetJSONData()["id"].(float64))
}

func (s *CatalogTestSuite) createCatalog(token string, body map[string]interface{}) int64 {
	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/catalogs/",
		AccessToken: token,
		Body:        body,
	}).AssertStatus(http.StatusCreated)
	return int64(resp.GetJSONData()["id"].(float64))
}

func (s *CatalogTestSuite) TestAnonymousAccess() {
	broker := s.server.RegisterAndLogin(s.T(), "broker@example.com", "broker")
	privateID := s.createCatalog(broker.Access, map[string]interface{}{"name": "Private picks"})
	publicID := s.createCatalog(broker.Access, map[string]interface{}{"name": "Seaside", "is_public": true})

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodGet,
		Path:   "/api/catalogs/" + itoa(privateID) + "/",
	}).AssertStatus(http.StatusForbidden).
		AssertJSONError("FORBIDDEN", "this catalog is private")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodGet,
		Path:   "/api/catalogs/" + itoa(publicID) + "/",
	}).AssertStatus(http.StatusOK).
		AssertJSONPath("data.broker.email", "broker@example.com")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   "/api/catalogs/",
		Body:   map[string]interface{}{"name": "Nope"},
	}).AssertStatus(http.StatusUnauthorized)

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodGet,
		Path:   "/api/catalogs/424242/",
	}).AssertStatus(http.StatusNotFound)
}

func (s *CatalogTestSuite) TestListVisibility() {
	brokerA := s.server.RegisterAndLogin(s.T(), "la@example.com", "broker")
	brokerB := s.server.RegisterAndLogin(s.T(), "lb@example.com", "broker")
	s.server.RegisterUser(s.T(), "root@example.com", testPassword, "admin")
	s.server.MakeSuperuser(s.T(), "root@example.com")
	root := s.server.Login(s.T(), "root@example.com", testPassword)

	s.createCatalog(brokerA.Access, map[string]interface{}{"name": "A public", "is_public": true})
	s.createCatalog(brokerA.Access, map[string]interface{}{"name": "A private"})
	s.createCatalog(brokerB.Access, map[string]interface{}{"name": "B private"})

	cases := []struct {
		name  string
		token string
		total float64
	}{
		{"anonymous sees public only", "", 1},
		{"owner sees public and own", brokerA.Access, 2},
		{"other broker sees public and own", brokerB.Access, 2},
		{"superuser sees all", root.Access, 3},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
				Method:      http.MethodGet,
				Path:        "/api/catalogs/",
				AccessToken: tc.token,
			}).AssertStatus(http.StatusOK).
				AssertJSONPath("meta.total", tc.total)
		})
	}
}

func (s *CatalogTestSuite) TestCatalogObjectsReplaceWholeSet() {
	broker := s.server.RegisterAndLogin(s.T(), "set@example.com", "broker")
	l1 := s.createListing(broker.Access, "1 Gorgiladze St")
	l2 := s.createListing(broker.Access, "2 Gorgiladze St")
	l3 := s.createListing(broker.Access, "3 Gorgiladze St")

	id := s.createCatalog(broker.Access, map[string]interface{}{
		"name":            "Batumi",
		"catalog_objects": []int64{l2, l1, l2},
	})
	path := "/api/catalogs/" + itoa(id) + "/"

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        path,
		AccessToken: broker.Access,
	}).AssertStatus(http.StatusOK)
	s.Equal([]interface{}{float64(l2), float64(l1)}, resp.GetJSONData()["catalog_objects"])

	resp = testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        path,
		AccessToken: broker.Access,
		Body: map[string]interface{}{
			"name":            "Batumi",
			"catalog_objects": []int64{l3},
		},
	}).AssertStatus(http.StatusOK)
	s.Equal([]interface{}{float64(l3)}, resp.GetJSONData()["catalog_objects"])

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        path,
		AccessToken: broker.Access,
		Body: map[string]interface{}{
			"name":            "Batumi",
			"catalog_objects": []int64{l1, 999999},
		},
	}).AssertStatus(http.StatusBadRequest)

	// A rejected update leaves the previous set in place
	resp = testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        path,
		AccessToken: broker.Access,
	}).AssertStatus(http.StatusOK)
	s.Equal([]interface{}{float64(l3)}, resp.GetJSONData()["catalog_objects"])
}

func (s *CatalogTestSuite) TestCatalogObjectNotes() {
	broker := s.server.RegisterAndLogin(s.T(), "notes@example.com", "broker")
	l1 := s.createListing(broker.Access, "4 Gorgiladze St")
	l2 := s.createListing(broker.Access, "5 Gorgiladze St")

	id := s.createCatalog(broker.Access, map[string]interface{}{
		"name":                 "Annotated",
		"catalog_objects":      []int64{l1, l2},
		"catalog_object_notes": map[string]string{itoa(l2): "top floor"},
	})
	path := "/api/catalogs/" + itoa(id) + "/"

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        path,
		AccessToken: broker.Access,
	}).AssertStatus(http.StatusOK)
	s.Equal(map[string]interface{}{itoa(l2): "top floor"}, resp.GetJSONData()["catalog_object_notes"])

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        path,
		AccessToken: broker.Access,
		Body: map[string]interface{}{
			"name":                 "Annotated",
			"catalog_objects":      []int64{l1},
			"catalog_object_notes": map[string]string{itoa(l2): "no longer listed"},
		},
	}).AssertStatus(http.StatusBadRequest).
		AssertFieldError("catalog_object_notes")
}

func (s *CatalogTestSuite) TestOwnershipOnWrite() {
	brokerA := s.server.RegisterAndLogin(s.T(), "wa@example.com", "broker")
	brokerB := s.server.RegisterAndLogin(s.T(), "wb@example.com", "broker")
	id := s.createCatalog(brokerA.Access, map[string]interface{}{"name": "Mine", "is_public": true})
	path := "/api/catalogs/" + itoa(id) + "/"

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPut,
		Path:        path,
		AccessToken: brokerB.Access,
		Body:        map[string]interface{}{"name": "Stolen"},
	}).AssertStatus(http.StatusForbidden).
		AssertJSONError("FORBIDDEN", "you may only manage your own catalogs")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodDelete,
		Path:        path,
		AccessToken: brokerB.Access,
	}).AssertStatus(http.StatusForbidden)

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodDelete,
		Path:        path,
		AccessToken: brokerA.Access,
	}).AssertStatus(http.StatusNoContent)
}
