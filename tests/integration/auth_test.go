package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mrewrin/LeadTransfer/tests/testutil"
)

const testPassword = "Str0ngPassw0rd!"

// AuthTestSuite is the test suite for auth and role endpoints
type AuthTestSuite struct {
	suite.Suite
	server *testutil.TestServer
}

func (s *AuthTestSuite) SetupSuite() {
	s.server = testutil.NewTestServer(s.T())
}

func (s *AuthTestSuite) SetupTest() {
	s.server.Cleanup(s.T())
}

func TestAuthSuite(t *testing.T) {
	skipUnlessIntegration(t)
	suite.Run(t, new(AuthTestSuite))
}

// =============================================================================
// Registration
// =============================================================================

func (s *AuthTestSuite) TestRegister_Success() {
	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/register/",
		Body: map[string]string{
			"email":    "buyer@example.com",
			"password": testPassword,
			"role":     "buyer",
		},
	}).AssertStatus(http.StatusCreated).
		AssertJSONPath("message", "User registered successfully!")
}

func (s *AuthTestSuite) TestRegister_MissingRole() {
	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/register/",
		Body: map[string]string{
			"email":    "norole@example.com",
			"password": testPassword,
		},
	}).AssertStatus(http.StatusBadRequest).
		AssertJSONError("VALIDATION_ERROR", "").
		AssertFieldError("role")
}

func (s *AuthTestSuite) TestRegister_UnknownRole() {
	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/register/",
		Body: map[string]string{
			"email":    "wizard@example.com",
			"password": testPassword,
			"role":     "wizard",
		},
	}).AssertStatus(http.StatusBadRequest).
		AssertJSONError("VALIDATION_ERROR", "").
		AssertFieldError("role")
}

func (s *AuthTestSuite) TestRegister_DuplicateEmail() {
	s.server.RegisterUser(s.T(), "dup@example.com", testPassword, "buyer")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/register/",
		Body: map[string]string{
			"email":    "dup@example.com",
			"password": testPassword,
			"role":     "buyer",
		},
	}).AssertStatus(http.StatusBadRequest).
		AssertJSONError("VALIDATION_ERROR", "").
		AssertFieldError("email")
}

// =============================================================================
// Login / Refresh / Logout
// =============================================================================

func (s *AuthTestSuite) TestLogin_WrongPassword() {
	s.server.RegisterUser(s.T(), "login@example.com", testPassword, "buyer")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/login/",
		Body: map[string]string{
			"email":    "login@example.com",
			"password": "WrongPassw0rd!",
		},
	}).AssertStatus(http.StatusUnauthorized).
		AssertJSONError("UNAUTHORIZED", "No active account found with the given credentials")
}

func (s *AuthTestSuite) TestRefresh_IssuesAccessToken() {
	tokens := s.server.RegisterAndLogin(s.T(), "refresh@example.com", "buyer")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/refresh/",
		Body:   map[string]string{"refresh": tokens.Refresh},
	}).AssertStatus(http.StatusOK).
		AssertJSONPathExists("access")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/auth/protected/",
		AccessToken: resp.GetJSON()["access"].(string),
	}).AssertStatus(http.StatusOK)
}

func (s *AuthTestSuite) TestRefresh_InvalidToken() {
	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/refresh/",
		Body:   map[string]string{"refresh": "not-a-token"},
	}).AssertStatus(http.StatusUnauthorized)
}

func (s *AuthTestSuite) TestLogout_RevokesAccessAndRefresh() {
	tokens := s.server.RegisterAndLogin(s.T(), "logout@example.com", "buyer")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/auth/logout/",
		AccessToken: tokens.Access,
		Body:        map[string]string{"refresh": tokens.Refresh},
	}).AssertStatus(http.StatusOK).
		AssertJSONPath("message", "Successfully logged out.")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/auth/me/",
		AccessToken: tokens.Access,
	}).AssertStatus(http.StatusUnauthorized)

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/refresh/",
		Body:   map[string]string{"refresh": tokens.Refresh},
	}).AssertStatus(http.StatusUnauthorized)
}

// =============================================================================
// Change password
// =============================================================================

func (s *AuthTestSuite) TestChangePassword() {
	tokens := s.server.RegisterAndLogin(s.T(), "change@example.com", "buyer")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/auth/change-password/",
		AccessToken: tokens.Access,
		Body: map[string]string{
			"old_password": "Wr0ngOldPassword",
			"new_password": "N3wStr0ngPassword",
		},
	}).AssertStatus(http.StatusBadRequest)

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/auth/change-password/",
		AccessToken: tokens.Access,
		Body: map[string]string{
			"old_password": testPassword,
			"new_password": "N3wStr0ngPassword",
		},
	}).AssertStatus(http.StatusOK).
		AssertJSONPath("message", "Password changed successfully!")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodPost,
		Path:   "/api/auth/login/",
		Body: map[string]string{
			"email":    "change@example.com",
			"password": testPassword,
		},
	}).AssertStatus(http.StatusUnauthorized)

	s.server.Login(s.T(), "change@example.com", "N3wStr0ngPassword")
}

// =============================================================================
// Me / protected / probes
// =============================================================================

func (s *AuthTestSuite) TestProtected_RequiresAuthentication() {
	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method: http.MethodGet,
		Path:   "/api/auth/protected/",
	}).AssertStatus(http.StatusUnauthorized)

	tokens := s.server.RegisterAndLogin(s.T(), "prot@example.com", "buyer")
	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/auth/protected/",
		AccessToken: tokens.Access,
	}).AssertStatus(http.StatusOK).
		AssertJSONPath("message", "This is a protected endpoint!")
}

func (s *AuthTestSuite) TestMe_ReturnsRole() {
	tokens := s.server.RegisterAndLogin(s.T(), "me@example.com", "broker")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/auth/me/",
		AccessToken: tokens.Access,
	}).AssertStatus(http.StatusOK).
		AssertJSONPath("data.email", "me@example.com").
		AssertJSONPath("data.role", "broker")
}

func (s *AuthTestSuite) TestRoleProbes() {
	buyer := s.server.RegisterAndLogin(s.T(), "probe-buyer@example.com", "buyer")
	ambassador := s.server.RegisterAndLogin(s.T(), "probe-amb@example.com", "ambassador")
	moderator := s.server.RegisterAndLogin(s.T(), "probe-mod@example.com", "moderator")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/auth/admin-or-moderator/",
		AccessToken: buyer.Access,
	}).AssertStatus(http.StatusForbidden)

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/auth/admin-or-moderator/",
		AccessToken: moderator.Access,
	}).AssertStatus(http.StatusOK).
		AssertJSONPath("message", "Welcome, Admin or Moderator!")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/auth/broker-or-ambassador/",
		AccessToken: ambassador.Access,
	}).AssertStatus(http.StatusOK).
		AssertJSONPath("message", "Welcome, Broker or Ambassador!")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/auth/broker-or-ambassador/",
		AccessToken: buyer.Access,
	}).AssertStatus(http.StatusForbidden)
}

func (s *AuthTestSuite) TestListRoles() {
	tokens := s.server.RegisterAndLogin(s.T(), "roles@example.com", "buyer")

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/auth/roles/",
		AccessToken: tokens.Access,
	}).AssertStatus(http.StatusOK)

	s.Len(resp.GetJSONList(), 6)
}

// =============================================================================
// Role assignment
// =============================================================================

func (s *AuthTestSuite) TestAssignRole_TakesEffectImmediately() {
	moderator := s.server.RegisterAndLogin(s.T(), "assign-mod@example.com", "moderator")
	buyer := s.server.RegisterAndLogin(s.T(), "assign-buyer@example.com", "buyer")
	buyerID := s.server.UserID(s.T(), "assign-buyer@example.com")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/auth/assign-role/",
		AccessToken: moderator.Access,
		Body:        map[string]interface{}{"user_id": buyerID, "role": "broker"},
	}).AssertStatus(http.StatusOK).
		AssertJSONPath("message", "Role assigned successfully!").
		AssertJSONPath("role", "broker")

	// The principal is reloaded on every request, so the old access token sees the new role
	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/auth/broker-or-ambassador/",
		AccessToken: buyer.Access,
	}).AssertStatus(http.StatusOK)

	resp := testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodGet,
		Path:        "/api/auth/users/" + itoa(buyerID) + "/role-history/",
		AccessToken: moderator.Access,
	}).AssertStatus(http.StatusOK)
	s.Equal(float64(1), resp.GetJSON()["meta"].(map[string]interface{})["total"])
}

func (s *AuthTestSuite) TestAssignRole_Forbidden() {
	broker := s.server.RegisterAndLogin(s.T(), "assign-broker@example.com", "broker")
	s.server.RegisterUser(s.T(), "target@example.com", testPassword, "buyer")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/auth/assign-role/",
		AccessToken: broker.Access,
		Body:        map[string]interface{}{"user_id": s.server.UserID(s.T(), "target@example.com"), "role": "admin"},
	}).AssertStatus(http.StatusForbidden)
}

func (s *AuthTestSuite) TestAssignRole_UnknownRoleAndMissingProfile() {
	moderator := s.server.RegisterAndLogin(s.T(), "assign-mod2@example.com", "moderator")
	s.server.RegisterUser(s.T(), "target2@example.com", testPassword, "buyer")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/auth/assign-role/",
		AccessToken: moderator.Access,
		Body:        map[string]interface{}{"user_id": s.server.UserID(s.T(), "target2@example.com"), "role": "wizard"},
	}).AssertStatus(http.StatusBadRequest)

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/auth/assign-role/",
		AccessToken: moderator.Access,
		Body:        map[string]interface{}{"user_id": 999999, "role": "broker"},
	}).AssertStatus(http.StatusNotFound)
}

func (s *AuthTestSuite) TestVerifyBroker() {
	s.server.RegisterUser(s.T(), "root@example.com", testPassword, "admin")
	s.server.MakeSuperuser(s.T(), "root@example.com")
	root := s.server.Login(s.T(), "root@example.com", testPassword)
	broker := s.server.RegisterAndLogin(s.T(), "verify-broker@example.com", "broker")
	brokerID := s.server.UserID(s.T(), "verify-broker@example.com")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/auth/verify-broker/" + itoa(brokerID) + "/",
		AccessToken: broker.Access,
	}).AssertStatus(http.StatusForbidden)

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/auth/verify-broker/" + itoa(brokerID) + "/",
		AccessToken: root.Access,
	}).AssertStatus(http.StatusOK).
		AssertJSONPath("message", "Broker verified successfully!")

	testutil.DoRequest(s.T(), s.server.Echo, testutil.HTTPRequest{
		Method:      http.MethodPost,
		Path:        "/api/auth/verify-broker/999999/",
		AccessToken: root.Access,
	}).AssertStatus(http.StatusNotFound)
}
