package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-1")
	rec := httptest.NewRecorder()
	WriteError(ctx, rec, NotFound("marca no encontrada\n"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "not_found", body["error"])
	require.Equal(t, "marca no encontrada", body["message"])
	require.EqualValues(t, 404, body["status"])
	require.Equal(t, "req-1", body["request_id"])
	require.NotContains(t, body, "trace_id")
}

func TestNewErrorDefaultsTo500(t *testing.T) {
	require.Equal(t, http.StatusInternalServerError, NewError("x", "y", 0).Status)
	require.Equal(t, http.StatusBadRequest, BadRequest("falta name").Status)
}

func TestWriteJSONKeepsGlyphs(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(context.Background(), rec, http.StatusOK, map[string]string{"glyph": "🌮", "name": "<b>"})
	require.JSONEq(t, `{"glyph":"🌮","name":"<b>"}`, rec.Body.String())
	require.Contains(t, rec.Body.String(), "<b>")
}
