package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/domain"
)

func doRequest(srv *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// --- GET /activities ---

func TestListActivities_ReturnsSeededMap(t *testing.T) {
	srv := newSeededServer(t)

	rec := doRequest(srv, http.MethodGet, "/activities")
	require.Equal(t, 200, rec.Code)

	acts := decodeJSON[map[string]map[string]any](t, rec)
	require.Contains(t, acts, "Chess Club")

	for name, record := range acts {
		assert.Contains(t, record, "description", "record %s", name)
		assert.Contains(t, record, "schedule", "record %s", name)
		assert.Contains(t, record, "max_participants", "record %s", name)
		require.Contains(t, record, "participants", "record %s", name)
		_, ok := record["participants"].([]any)
		assert.True(t, ok, "participants of %s must be a list", name)
	}
}

func TestListActivities_ServiceError(t *testing.T) {
	srv := newTestServer(t, &mockActivityService{
		listFn: func(_ context.Context) (map[string]*domain.Activity, error) {
			return nil, fmt.Errorf("store exploded")
		},
	})

	rec := doRequest(srv, http.MethodGet, "/activities")
	assert.Equal(t, 500, rec.Code)
}

// --- POST /activities/:name/signup ---

func TestSignup_Success(t *testing.T) {
	srv := newSeededServer(t)

	before := decodeJSON[map[string]domain.Activity](t, doRequest(srv, http.MethodGet, "/activities"))
	initial := len(before["Basketball"].Participants)

	rec := doRequest(srv, http.MethodPost, "/activities/Basketball/signup?email=verify%40mergington.edu")
	require.Equal(t, 200, rec.Code)

	body := decodeJSON[map[string]string](t, rec)
	assert.Contains(t, body["message"], "Signed up")

	after := decodeJSON[map[string]domain.Activity](t, doRequest(srv, http.MethodGet, "/activities"))
	assert.Len(t, after["Basketball"].Participants, initial+1)
	assert.Contains(t, after["Basketball"].Participants, "verify@mergington.edu")
}

func TestSignup_EncodedActivityName(t *testing.T) {
	srv := newSeededServer(t)

	rec := doRequest(srv, http.MethodPost, "/activities/Chess%20Club/signup?email=test%40mergington.edu")
	require.Equal(t, 200, rec.Code)

	body := decodeJSON[map[string]string](t, rec)
	assert.Equal(t, "Signed up test@mergington.edu for Chess Club", body["message"])
}

func TestSignup_UnknownActivity(t *testing.T) {
	srv := newSeededServer(t)

	rec := doRequest(srv, http.MethodPost, "/activities/Fake%20Activity/signup?email=test%40mergington.edu")
	require.Equal(t, 404, rec.Code)

	body := decodeJSON[map[string]string](t, rec)
	assert.Contains(t, strings.ToLower(body["detail"]), "not found")
}

func TestSignup_Duplicate(t *testing.T) {
	srv := newSeededServer(t)

	first := doRequest(srv, http.MethodPost, "/activities/Programming%20Class/signup?email=duplicate%40mergington.edu")
	require.Equal(t, 200, first.Code)

	second := doRequest(srv, http.MethodPost, "/activities/Programming%20Class/signup?email=duplicate%40mergington.edu")
	require.Equal(t, 400, second.Code)

	body := decodeJSON[map[string]string](t, second)
	assert.Contains(t, strings.ToLower(body["detail"]), "already signed up")
}

func TestSignup_MissingEmail(t *testing.T) {
	srv := newSeededServer(t)

	rec := doRequest(srv, http.MethodPost, "/activities/Chess%20Club/signup")
	require.Equal(t, 400, rec.Code)

	body := decodeJSON[map[string]string](t, rec)
	assert.Contains(t, body["detail"], "email is required")
}

// --- DELETE /activities/:name/unregister ---

func TestUnregister_Success(t *testing.T) {
	srv := newSeededServer(t)

	signup := doRequest(srv, http.MethodPost, "/activities/Tennis%20Club/signup?email=tounregister%40mergington.edu")
	require.Equal(t, 200, signup.Code)

	rec := doRequest(srv, http.MethodDelete, "/activities/Tennis%20Club/unregister?email=tounregister%40mergington.edu")
	require.Equal(t, 200, rec.Code)

	body := decodeJSON[map[string]string](t, rec)
	assert.Contains(t, body["message"], "Unregistered")

	after := decodeJSON[map[string]domain.Activity](t, doRequest(srv, http.MethodGet, "/activities"))
	assert.NotContains(t, after["Tennis Club"].Participants, "tounregister@mergington.edu")
}

func TestUnregister_UnknownActivity(t *testing.T) {
	srv := newSeededServer(t)

	rec := doRequest(srv, http.MethodDelete, "/activities/Fake%20Activity/unregister?email=test%40mergington.edu")
	assert.Equal(t, 404, rec.Code)
}

func TestUnregister_NotSignedUp(t *testing.T) {
	srv := newSeededServer(t)

	rec := doRequest(srv, http.MethodDelete, "/activities/Art%20Studio/unregister?email=notregistered%40mergington.edu")
	require.Equal(t, 400, rec.Code)

	body := decodeJSON[map[string]string](t, rec)
	assert.Contains(t, strings.ToLower(body["detail"]), "not signed up")
}

func TestUnregister_MissingEmail(t *testing.T) {
	srv := newSeededServer(t)

	rec := doRequest(srv, http.MethodDelete, "/activities/Chess%20Club/unregister")
	assert.Equal(t, 400, rec.Code)
}

// --- GET / ---

func TestRoot_RedirectsToStaticIndex(t *testing.T) {
	srv := newSeededServer(t)

	rec := doRequest(srv, http.MethodGet, "/")
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/static/index.html", rec.Header().Get("Location"))
}
