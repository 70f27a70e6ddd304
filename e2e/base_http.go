package e2e

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

type BaseHTTPSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests.
// Scenarios require a deployed target; without one the whole suite skips.
func (s *BaseHTTPSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.TargetURL == "" {
		s.T().Skip("TARGET_URL not set, skipping e2e scenarios")
	}
}

// Client returns an HTTP client with a cookie jar, a logging transport,
// and redirects disabled so scenarios can assert on Location headers.
func (s *BaseHTTPSuite) Client(name string) *http.Client {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)

	return &http.Client{
		Timeout: 60 * time.Second,
		Jar:     jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
		Transport: &loggingTransport{suite: s},
	}
}

// URL joins a path onto the configured target.
func (s *BaseHTTPSuite) URL(path string) string {
	return strings.TrimRight(s.Config.TargetURL, "/") + path
}

type loggingTransport struct {
	suite *BaseHTTPSuite
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	res, err := http.DefaultTransport.RoundTrip(req)

	logBuilder := strings.Builder{}
	status := "TRANSPORT ERROR"
	if res != nil {
		status = res.Status
	}
	fmt.Fprintf(&logBuilder, "HTTP %s %s [%s] in %v", req.Method, req.URL.Path, status, time.Since(start))

	// Log full request/response bodies if E2E_DEBUG_JSON is enabled
	if t.suite.Config.DebugJSON {
		if dump, dumpErr := httputil.DumpRequestOut(req, true); dumpErr == nil {
			fmt.Fprintln(&logBuilder, "\nREQUEST:")
			fmt.Fprintln(&logBuilder, string(dump))
		}
		if res != nil {
			if dump, dumpErr := httputil.DumpResponse(res, true); dumpErr == nil {
				fmt.Fprintln(&logBuilder, "RESPONSE:")
				fmt.Fprintln(&logBuilder, string(dump))
			}
		}
		if err != nil {
			fmt.Fprintln(&logBuilder, "ERROR:", err)
		}
	}
	t.suite.T().Log(logBuilder.String())
	return res, err
}
