package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SmokeSuite struct {
	BaseHTTPSuite
}

func TestSmokeSuite(t *testing.T) {
	suite.Run(t, new(SmokeSuite))
}

func (s *SmokeSuite) TestHealthEndpoint() {
	client := s.Client("Health probe")

	res, err := client.Get(s.URL("/healthz"))
	s.Require().NoError(err)
	defer res.Body.Close()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var health map[string]any
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&health))
	s.Require().Equal("ok", health["status"])
}

func (s *SmokeSuite) TestLoginPageIsServed() {
	client := s.Client("Login page")

	res, err := client.Get(s.URL("/login"))
	s.Require().NoError(err)
	defer res.Body.Close()

	s.Require().Equal(http.StatusOK, res.StatusCode)
	body, err := io.ReadAll(res.Body)
	s.Require().NoError(err)
	s.Require().Contains(string(body), "Sign in")
}

func (s *SmokeSuite) TestProtectedPageRedirectsAnonymousUsers() {
	client := s.Client("Auth gate")

	res, err := client.Get(s.URL("/prediction"))
	s.Require().NoError(err)
	defer res.Body.Close()

	s.Require().Equal(http.StatusSeeOther, res.StatusCode)
	s.Require().Equal("/login", res.Header.Get("Location"))
}

func (s *SmokeSuite) TestChatRequiresAuthentication() {
	client := s.Client("Chat auth")

	res, err := client.Post(s.URL("/api/chat"), "application/json",
		strings.NewReader(`{"message":"what is a glioma"}`))
	s.Require().NoError(err)
	defer res.Body.Close()

	s.Require().Equal(http.StatusUnauthorized, res.StatusCode)

	var payload map[string]string
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&payload))
	s.Require().NotEmpty(payload["detail"])
}
