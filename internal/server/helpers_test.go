package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"brainly/internal/config"
	"brainly/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-testing-only-32chars"

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       testSecret,
		Port:            "0",
		Env:             "test",
		RequestTimeout:  5 * time.Second,
		ShareHashLength: 10,
		BcryptCost:      bcrypt.MinCost,
	}
}

// newTestApp wires a full server over SQLite and miniredis.
func newTestApp(t *testing.T) (*fiber.App, *Server, *miniredis.Miniredis) {
	t.Helper()
	db := testutil.NewDB(t)
	client, mr := testutil.NewRedis(t)

	s, err := NewServerWithDeps(testConfig(), db, client)
	require.NoError(t, err)
	return s.NewApp(), s, mr
}

// doJSON sends body as JSON and decodes the JSON response into a map.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, out
}
