package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newStack(t *testing.T, store *SessionStore, h http.HandlerFunc) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.Use(HTMX)
	r.Use(store.Middleware)
	r.Use(CSRF(false))
	r.Get("/", h)
	r.Post("/", h)
	return r
}

func cookieNamed(res *http.Response, name string) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSessionIssuedAndRestored(t *testing.T) {
	store := NewSessionStore(SessionOptions{SigningKey: testKey})
	var seen string
	h := newStack(t, store, func(w http.ResponseWriter, r *http.Request) {
		seen = GetSession(r).ID
		_, _ = w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	res := rec.Result()
	sess := cookieNamed(res, sessionCookieName)
	require.NotNil(t, sess)
	require.True(t, sess.HttpOnly)
	first := seen
	require.NotEmpty(t, first)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sess)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, first, seen)
}

func TestSessionRejectsTamperedCookie(t *testing.T) {
	store := NewSessionStore(SessionOptions{SigningKey: testKey})
	other := NewSessionStore(SessionOptions{SigningKey: strings.Repeat("x", 32)})
	forged := other.Cookie(&SessionData{ID: "forged"})

	var seen string
	h := newStack(t, store, func(w http.ResponseWriter, r *http.Request) {
		seen = GetSession(r).ID
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(forged)
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.NotEqual(t, "forged", seen)
	require.NotEmpty(t, seen)
}

func TestSessionDirtyWrittenOnEmptyResponse(t *testing.T) {
	store := NewSessionStore(SessionOptions{SigningKey: testKey})
	sd := &SessionData{ID: "s1", CSRFToken: "tok"}
	h := newStack(t, store, func(w http.ResponseWriter, r *http.Request) {
		GetSession(r).MarkRaffleSubmitted("@ana")
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(store.Cookie(sd))
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: "tok"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	c := cookieNamed(rec.Result(), sessionCookieName)
	require.NotNil(t, c)
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(c)
	got, ok := store.read(next)
	require.True(t, ok)
	require.True(t, got.RaffleSubmitted)
	require.Equal(t, "@ana", got.RaffleHandle)
}

func TestCSRF(t *testing.T) {
	store := NewSessionStore(SessionOptions{SigningKey: testKey})
	h := newStack(t, store, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	sd := &SessionData{ID: "s1", CSRFToken: "tok-1"}

	post := func(header, field, cookie string) int {
		form := url.Values{}
		if field != "" {
			form.Set(CSRFFormField, field)
		}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if header != "" {
			req.Header.Set(CSRFHeader, header)
		}
		req.AddCookie(store.Cookie(sd))
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: cookie})
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusNoContent, post("tok-1", "", "tok-1"))
	require.Equal(t, http.StatusNoContent, post("", "tok-1", "tok-1"))
	require.Equal(t, http.StatusForbidden, post("", "", "tok-1"))
	require.Equal(t, http.StatusForbidden, post("tok-1", "", ""))
	require.Equal(t, http.StatusForbidden, post("nope", "", "tok-1"))
}

func TestCSRFErrorIsJSONForHTMX(t *testing.T) {
	store := NewSessionStore(SessionOptions{SigningKey: testKey})
	h := newStack(t, store, func(w http.ResponseWriter, r *http.Request) {})
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	require.JSONEq(t, `{"error":"invalid CSRF token"}`, rec.Body.String())
}

func TestHTMXFlag(t *testing.T) {
	var got bool
	h := HTMX(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = IsHTMX(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.True(t, got)
	require.Contains(t, rec.Header().Values("Vary"), "HX-Request")

	req.Header.Set("HX-Boosted", "true")
	h.ServeHTTP(httptest.NewRecorder(), req)
	require.False(t, got)
}

func TestHXTarget(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Target", "#menu")
	require.Equal(t, "menu", HXTarget(req))
}

func TestRequestLoggerLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := chi.NewRouter()
	r.Use(chiMid.RequestID)
	r.Use(InjectLogger(zap.New(core)))
	r.Use(RequestLogger)
	r.Use(Recoverer)
	r.Get("/marcas/{id}", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) })
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("hola")) })
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) { panic("kaput") })

	for _, p := range []string{"/ok", "/marcas/ay-wey", "/boom"} {
		h := httptest.NewRecorder()
		r.ServeHTTP(h, httptest.NewRequest(http.MethodGet, p, nil))
	}

	completed := logs.FilterMessage("request completed").All()
	require.Len(t, completed, 3)
	require.Equal(t, zapcore.InfoLevel, completed[0].Level)
	require.EqualValues(t, 4, completed[0].ContextMap()["bytes"])
	require.Equal(t, zapcore.WarnLevel, completed[1].Level)
	require.Equal(t, "/marcas/{id}", completed[1].ContextMap()["route"])
	require.Equal(t, zapcore.ErrorLevel, completed[2].Level)
	require.EqualValues(t, http.StatusInternalServerError, completed[2].ContextMap()["status"])
	require.Len(t, logs.FilterMessage("panic recovered").All(), 1)
	require.NotEmpty(t, completed[0].ContextMap()["request_id"])
}

func TestAssetsWithCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "app.css"), []byte("body{}"), 0o600))
	h := AssetsWithCache("/assets", dir)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/app.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "body{}", rec.Body.String())
	et := rec.Header().Get("ETag")
	require.NotEmpty(t, et)

	req := httptest.NewRequest(http.MethodGet, "/assets/css/app.css?v=abc", nil)
	req.Header.Set("If-None-Match", et)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)
	require.Contains(t, rec.Header().Get("Cache-Control"), "immutable")

	require.Len(t, AssetVersion(filepath.Join(dir, "css", "app.css")), 12)
	require.Empty(t, AssetVersion(filepath.Join(dir, "missing.css")))
}

func TestRecorderRunsHooksOnce(t *testing.T) {
	var calls int
	rec := NewResponseRecorder(httptest.NewRecorder())
	rec.SetBeforeWrite(func(w http.ResponseWriter) { calls++ })
	_, _ = rec.Write(bytes.Repeat([]byte("a"), 3))
	rec.WriteHeader(http.StatusTeapot)
	require.Equal(t, 1, calls)
	require.Equal(t, http.StatusOK, rec.Status())
	require.EqualValues(t, 3, rec.BytesWritten())
	require.True(t, rec.Written())
}
