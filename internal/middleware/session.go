package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	sessionCookieName = "TERRAZA_WEB_SESSION"
	sessionLifetime   = 30 * 24 * time.Hour
)

// SessionData is the signed, cookie-backed visitor state.
type SessionData struct {
	ID        string `json:"id"`
	CSRFToken string `json:"csrf,omitempty"`
	// RaffleSubmitted is set once the visitor's raffle signup succeeded.
	RaffleSubmitted bool      `json:"raffle,omitempty"`
	RaffleHandle    string    `json:"raffleHandle,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	// internal dirty flag; not serialized
	dirty bool
}

// SessionOptions configures the session middleware.
type SessionOptions struct {
	// SigningKey signs the cookie. When empty a process-ephemeral key is generated.
	SigningKey string
	// Secure marks cookies Secure; enable in production.
	Secure bool
	Logger *zap.Logger
}

// SessionStore signs and verifies session cookies.
type SessionStore struct {
	key    []byte
	secure bool
}

// NewSessionStore builds a store from opts.
func NewSessionStore(opts SessionOptions) *SessionStore {
	key := []byte(opts.SigningKey)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			key = []byte("insecure-dev-key-please-set-TERRAZA_WEB_SESSION_SIGNING_KEY")
		}
		if opts.Logger != nil {
			opts.Logger.Warn("session: using ephemeral signing key (dev); set TERRAZA_WEB_SESSION_SIGNING_KEY for production")
		}
	}
	return &SessionStore{key: key, secure: opts.Secure}
}

// Secure reports whether cookies issued by the store are Secure.
func (s *SessionStore) Secure() bool { return s.secure }

// Middleware loads or initializes a session and stores it in request context.
func (s *SessionStore) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sd, fromCookie := s.read(r)
		if sd.ID == "" {
			sd.ID = randID()
			sd.CreatedAt = time.Now().UTC()
			sd.UpdatedAt = sd.CreatedAt
			sd.CSRFToken = newCSRFToken()
			sd.dirty = true
		}
		ctx := context.WithValue(r.Context(), ctxKeySession, sd)
		rw := NewResponseRecorder(w)
		// the cookie must be set before the header goes out
		rw.SetBeforeWrite(func(w http.ResponseWriter) {
			if sd.dirty || !fromCookie {
				s.write(w, sd)
			}
		})
		next.ServeHTTP(rw, r.WithContext(ctx))
		// nothing written yet (e.g. HEAD or empty 200)
		if !rw.Written() && (sd.dirty || !fromCookie) {
			s.write(w, sd)
		}
	})
}

// GetSession returns session data from context
func GetSession(r *http.Request) *SessionData {
	if v := r.Context().Value(ctxKeySession); v != nil {
		if sd, ok := v.(*SessionData); ok {
			return sd
		}
	}
	return &SessionData{}
}

// MarkDirty flags the session for writing at end of request
func (s *SessionData) MarkDirty() { s.dirty = true; s.UpdatedAt = time.Now().UTC() }

// MarkRaffleSubmitted records a successful raffle signup.
func (s *SessionData) MarkRaffleSubmitted(handle string) {
	s.RaffleSubmitted = true
	s.RaffleHandle = handle
	s.MarkDirty()
}

func (s *SessionStore) read(r *http.Request) (*SessionData, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return &SessionData{}, false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return &SessionData{}, false
	}
	payloadB, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return &SessionData{}, false
	}
	sigB, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return &SessionData{}, false
	}
	if !hmac.Equal(sigB, s.sign(payloadB)) {
		return &SessionData{}, false
	}
	var sd SessionData
	if err := json.Unmarshal(payloadB, &sd); err != nil {
		return &SessionData{}, false
	}
	return &sd, true
}

func (s *SessionStore) write(w http.ResponseWriter, sd *SessionData) {
	http.SetCookie(w, s.Cookie(sd))
}

// Cookie encodes sd into a signed cookie.
func (s *SessionStore) Cookie(sd *SessionData) *http.Cookie {
	b, _ := json.Marshal(sd)
	val := base64.RawURLEncoding.EncodeToString(b) + "." + base64.RawURLEncoding.EncodeToString(s.sign(b))
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    val,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionLifetime),
	}
}

func (s *SessionStore) sign(payload []byte) []byte {
	mac := hmac.New(sha256.New, s.key)
	mac.Write(payload)
	return mac.Sum(nil)
}

func randID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
