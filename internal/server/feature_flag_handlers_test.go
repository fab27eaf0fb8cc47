package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scamwatch/internal/featureflags"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeatureFlagsHandler(t *testing.T) {
	t.Parallel()

	s := &Server{featureFlags: featureflags.NewManager("trending_cache=on,new_stats=off")}
	app := fiber.New()
	app.Get("/api/feature-flags", s.GetFeatureFlags)

	req := httptest.NewRequest(http.MethodGet, "/api/feature-flags", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Raw       map[string]string `json:"raw"`
		Evaluated map[string]bool   `json:"evaluated"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "on", body.Raw["trending_cache"])
	assert.True(t, body.Evaluated["trending_cache"])
	assert.False(t, body.Evaluated["new_stats"])
}

func TestGetFeatureFlagsHandler_NilManager(t *testing.T) {
	t.Parallel()

	s := &Server{}
	app := fiber.New()
	app.Get("/api/feature-flags", s.GetFeatureFlags)

	req := httptest.NewRequest(http.MethodGet, "/api/feature-flags", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Raw       map[string]string `json:"raw"`
		Evaluated map[string]bool   `json:"evaluated"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Raw)
	assert.Empty(t, body.Evaluated)
}
