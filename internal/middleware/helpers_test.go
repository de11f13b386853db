package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/vamoose/internal/config"
	"github.com/deppfellow/vamoose/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T, out io.Writer) *server.Server {
	t.Helper()

	if out == nil {
		out = io.Discard
	}
	logger := zerolog.New(out)

	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server: config.ServerConfig{
				Port:               "0",
				CORSAllowedOrigins: []string{"http://localhost:3000"},
			},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

