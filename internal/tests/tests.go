// Package tests contains helpers shared by the route tests.
package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/services"
	"github.com/stretchr/testify/require"
)

const (
	TestToken    = "test-token"
	TestMaxDepth = 4

	// searchTimeout is passed to app.Test, the default of one second is
	// too tight for searches on slow machines.
	searchTimeout = 10 * time.Second
)

// TestConfig returns a config suitable for tests.
func TestConfig() *config.ServerConfig {
	return &config.ServerConfig{
		ServerHost:    "localhost",
		ServerPort:    "0",
		Token:         TestToken,
		MaxDepth:      TestMaxDepth,
		SearchWorkers: 2,
		CacheTTL:      time.Minute,
	}
}

// NewTestApp creates an app without Redis.
func NewTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return internal.NewApp(TestConfig(), &services.Services{})
}

// NewTestAppWithRedis creates an app backed by an in-process Redis.
func NewTestAppWithRedis(t *testing.T) (*fiber.App, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	cfg := TestConfig()
	cfg.RedisURL = "redis://" + mr.Addr()

	svc, err := services.InitServices(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Redis.Close() })

	return internal.NewApp(cfg, svc), mr
}

// PostJSON sends payload as JSON body with the test token and returns the response.
func PostJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req, err := http.NewRequest(http.MethodPost, path, &body)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-token", TestToken)

	resp, err := app.Test(req, int(searchTimeout.Milliseconds()))
	require.NoError(t, err)

	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

// DecodeJSON decodes the response body into a value of type T.
func DecodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var value T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&value))
	return value
}
