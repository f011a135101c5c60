// Package testutils provides helpers for handler tests: an app wired over
// repository mocks and token minting for authenticated requests.
package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/geldtransfer/backoffice/internal/fixtures"
	"github.com/geldtransfer/backoffice/pkg/app"
	"github.com/geldtransfer/backoffice/pkg/config"
	"github.com/geldtransfer/backoffice/pkg/domain"
	authsvc "github.com/geldtransfer/backoffice/pkg/service/auth"
	"github.com/geldtransfer/backoffice/webapi"
)

// TestSecret signs tokens in handler tests.
const TestSecret = "test-secret"

// TestConfig returns a config suitable for in-process handler tests. The
// rate limit is high enough to never trip during a test run.
func TestConfig() *config.AppConfig {
	return &config.AppConfig{
		Env: "test",
		Jwt: config.JwtConfig{Secret: TestSecret, Expiry: time.Hour},
		RateLimit: config.RateLimitConfig{
			MaxRequests: 1000,
			Window:      time.Minute,
		},
	}
}

// SetupTestApp builds the Fiber app over a fresh mock unit of work.
func SetupTestApp(t *testing.T) (*fiber.App, *fixtures.MockUnitOfWork) {
	t.Helper()
	uow := fixtures.NewMockUnitOfWork()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := app.New(&app.Deps{Uow: uow, Logger: logger}, TestConfig())
	return webapi.SetupApp(a), uow
}

// TokenFor mints a valid bearer token for the given user.
func TokenFor(t *testing.T, u *domain.User) string {
	t.Helper()
	svc := authsvc.New(nil, TestConfig().Jwt, slog.New(slog.NewTextHandler(io.Discard, nil)))
	token, err := svc.GenerateToken(u)
	require.NoError(t, err)
	return token
}

// MakeRequest performs a JSON request against the app, optionally with a
// bearer token, and returns the response.
func MakeRequest(
	t *testing.T,
	app *fiber.App,
	method, target string,
	body any,
	token string,
) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

// DecodeBody unmarshals the response body into out.
func DecodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	payload, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(payload, out))
}
