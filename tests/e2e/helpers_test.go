//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/healthscan-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/healthscan-backend/internal/app"
	"github.com/heartmarshall/healthscan-backend/internal/config"
)

const testPassphrase = "nutri123"

type testServer struct {
	URL    string
	Client *http.Client
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{MaxImageBytes: 1 << 20, LoginRateLimit: 1000},
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "healthscan-test",
			AccessTokenTTL: 15 * time.Minute,
		},
		Access:  config.AccessConfig{NutritionistPassphrase: testPassphrase},
		Scoring: config.ScoringConfig{Formula: "ten_point"},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type,X-Access-Passphrase",
			MaxAge:         600,
		},
	}
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	handler, stop, err := app.NewHandler(app.Deps{
		Config: testConfig(),
		Pool:   pool,
		Logger: logger,
	})
	require.NoError(t, err)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client()}
}

// do sends a JSON request. headers are key/value pairs.
func (ts *testServer) do(t *testing.T, method, path string, body any, headers ...string) *http.Response {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v), "response body should be valid JSON")
	return v
}

func bearer(token string) []string {
	return []string{"Authorization", "Bearer " + token}
}

func passphrase() []string {
	return []string{"X-Access-Passphrase", testPassphrase}
}

func uniqueName(t *testing.T, prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// login returns an access token for username, creating the user if needed.
func login(t *testing.T, ts *testServer, username string) string {
	t.Helper()

	resp := ts.do(t, http.MethodPost, "/auth/login", map[string]string{"username": username})
	require.Contains(t, []int{http.StatusOK, http.StatusCreated}, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	token, ok := body["access_token"].(string)
	require.True(t, ok, "expected access_token in login response")
	return token
}

type productBody struct {
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Category  string  `json:"category"`
	SodiumMg  float64 `json:"sodium_mg_per_100g"`
	SugarG    float64 `json:"sugar_g_per_100g"`
	TotalFatG float64 `json:"total_fat_g_per_100g"`
	IsGMO     bool    `json:"is_gmo"`
}

func putProduct(t *testing.T, ts *testServer, barcode string, p productBody) {
	t.Helper()

	resp := ts.do(t, http.MethodPut, "/products/"+barcode, p)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
