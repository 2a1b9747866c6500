package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestHandler_healthCheck(t *testing.T) {
	handler := NewHandler(slog.Default(), huma.Middlewares{})

	output, err := handler.healthCheck(context.Background(), &Input{})

	require.NoError(t, err)
	assert.Equal(t, "OK", output.Body.Status)
}

func TestHandler_SetupRoutes(t *testing.T) {
	mux := chi.NewMux()
	api := humachi.New(mux, huma.DefaultConfig("utilibill-test", "0.0.0"))
	NewHandler(slog.Default(), huma.Middlewares{}).SetupRoutes(api)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body.Status)
}
