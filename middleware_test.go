package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"fortune-cloud/fortune"
)

func TestRequestIDMiddleware(t *testing.T) {
	r := newRouter(fortune.NewService(fortune.Config{}), true)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	generated := resp.Header().Get("X-Request-Id")
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	supplied := uuid.New().String()
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", supplied)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, supplied, resp.Header().Get("X-Request-Id"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "not-a-uuid")
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.NotEqual(t, "not-a-uuid", resp.Header().Get("X-Request-Id"))
}

func TestRecoveryMiddleware(t *testing.T) {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware, recoveryMiddleware)
	r.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	resp := httptest.NewRecorder()
	require.NotPanics(t, func() { r.ServeHTTP(resp, req) })
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	require.JSONEq(t, `{"error": "internal server error"}`, resp.Body.String())
}

func TestHealthAndRootHandlers(t *testing.T) {
	r := newRouter(fortune.NewService(fortune.Config{}), true)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var health HealthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &health))
	require.Equal(t, HealthResponse{OK: true, Version: VERSION, Service: "fortune-cloud"}, health)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), "Fortune Cookie API Server")
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter(fortune.NewService(fortune.Config{}), true)

	postFortune(t, r, `{"thoughts": "metrics please"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	body := resp.Body.String()
	require.Contains(t, body, `fortune_http_requests_total{method="POST",route="/rest/fortune",status="200"}`)
	require.Contains(t, body, `fortune_generated_total{outcome="ok",source="local"}`)
}
