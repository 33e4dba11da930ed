package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveness(t *testing.T) {
	srv := newSeededServer(t)

	rec := doRequest(srv, http.MethodGet, "/health/live")
	require.Equal(t, 200, rec.Code)

	body := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "uptime")
}

func TestReadiness(t *testing.T) {
	srv := newSeededServer(t)

	rec := doRequest(srv, http.MethodGet, "/health/ready")
	require.Equal(t, 200, rec.Code)

	body := decodeJSON[map[string]string](t, rec)
	assert.Equal(t, "ready", body["status"])
}

func TestVersion(t *testing.T) {
	srv := newSeededServer(t)

	rec := doRequest(srv, http.MethodGet, "/version")
	require.Equal(t, 200, rec.Code)

	body := decodeJSON[map[string]string](t, rec)
	assert.Equal(t, "mergington-activities", body["service"])
	assert.NotEmpty(t, body["version"])
	assert.NotEmpty(t, body["go_version"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newSeededServer(t)

	rec := doRequest(srv, http.MethodGet, "/metrics")
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
