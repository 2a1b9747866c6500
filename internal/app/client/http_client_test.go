package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"utilibill/internal/app/client/config"
)

func newTestClient(t *testing.T, handler http.Handler) (*HTTPClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		ServerAddress: strings.TrimPrefix(srv.URL, "http://"),
	}
	cl, err := NewHTTPClient(cfg, slog.Default())
	require.NoError(t, err)
	return cl, srv
}

func TestHTTPClient_Login(t *testing.T) {
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin", body["login"])

		json.NewEncoder(w).Encode(map[string]string{"token": "tok-123", "status": "Ok"})
	}))

	token, err := cl.Login(context.Background(), "admin", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestHTTPClient_UnauthorizedIsTyped(t *testing.T) {
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
	}))

	res := NewResource[testItem](cl, "/api/items")
	_, err := res.List(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResource_ListSendsBearerToken(t *testing.T) {
	var gotAuth string
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{
			"items": []testItem{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}},
		})
	}))
	cl.SetToken("tok-456")

	res := NewResource[testItem](cl, "/api/items")
	items, err := res.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-456", gotAuth)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[1].Name)
}

func TestResource_CreateReturnsID(t *testing.T) {
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		json.NewEncoder(w).Encode(map[string]any{"id": 42, "status": "Ok"})
	}))

	res := NewResource[testItem](cl, "/api/items")
	id, err := res.Create(context.Background(), testItem{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestResource_UpdateAndDeleteHitEntityPath(t *testing.T) {
	var paths []string
	var methods []string
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		methods = append(methods, r.Method)
		json.NewEncoder(w).Encode(map[string]any{"id": 7, "status": "Ok"})
	}))

	res := NewResource[testItem](cl, "/api/items")
	require.NoError(t, res.Update(context.Background(), 7, testItem{ID: 7}))
	require.NoError(t, res.Delete(context.Background(), 7))

	assert.Equal(t, []string{"/api/items/7", "/api/items/7"}, paths)
	assert.Equal(t, []string{http.MethodPut, http.MethodDelete}, methods)
}

func TestHTTPClient_ServerErrorSurfacesDetail(t *testing.T) {
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"detail": "rate must be positive"})
	}))

	res := NewResource[testItem](cl, "/api/items")
	_, err := res.Create(context.Background(), testItem{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate must be positive")
}

func TestHTTPClient_HealthCheck(t *testing.T) {
	cl, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"status": "OK"})
	}))

	assert.NoError(t, cl.HealthCheck(context.Background()))
}
