package handler_test

// Shared fixtures for the endpoint tests. The full stack is exercised the
// way a client sees it: a real Echo instance with the routes and the
// bearer-token middleware registered, driven through httptest.

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/license-activation/internal/config"
	"github.com/iliyamo/license-activation/internal/handler"
	"github.com/iliyamo/license-activation/internal/repository"
	"github.com/iliyamo/license-activation/internal/router"
)

const testSecret = "test-secret"

func testConfig() config.Config {
	return config.Config{
		Port:             "0",
		JWTSecret:        testSecret,
		TokenTTL:         time.Hour,
		BcryptCost:       bcrypt.MinCost,
		TrialKeyDuration: 10 * time.Second,
	}
}

// newTestApp wires a fresh server and returns it with its key store, so
// tests can pin the store's clock.
func newTestApp(t *testing.T) (*echo.Echo, *repository.KeyStore) {
	t.Helper()
	cfg := testConfig()
	users := repository.NewUserStore()
	keys := repository.NewKeyStore(cfg.Catalog())

	e := echo.New()
	router.RegisterRoutes(e, handler.NewAuthHandler(cfg, users), handler.NewActivationHandler(keys), cfg.JWTSecret)
	return e, keys
}

func do(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

// registerAndLogin creates an account and returns a valid session token.
func registerAndLogin(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	body := `{"email":"` + email + `","password":"password123"}`

	rec := do(e, http.MethodPost, "/api/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(e, http.MethodPost, "/api/login", body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	token, ok := decode(t, rec)["token"].(string)
	require.True(t, ok, "login response must carry a token")
	require.NotEmpty(t, token)
	return token
}
