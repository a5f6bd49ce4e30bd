// Package onboarding tracks the one-time category hint shown on brand pages.
// The flag lives in a per-brand browser cookie; nothing is stored server side.
package onboarding

import (
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	cookiePrefix = "te_hint_"
	seenValue    = "1"
)

// far enough in the future to act as "no expiry"
var neverExpires = time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)

var unsafeCookieChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// CookieName returns the cookie that records the hint for brandID.
func CookieName(brandID string) string {
	return cookiePrefix + unsafeCookieChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(brandID)), "_")
}

// Seen reports whether the browser already dismissed the hint for brandID.
func Seen(r *http.Request, brandID string) bool {
	c, err := r.Cookie(CookieName(brandID))
	return err == nil && c.Value == seenValue
}

// ShouldShow is the inverse of Seen for brands that have more than one
// category; a single category has nothing to switch to.
func ShouldShow(r *http.Request, brandID string, categories int) bool {
	return categories > 1 && !Seen(r, brandID)
}

// MarkSeen sets the hint cookie for brandID.
func MarkSeen(w http.ResponseWriter, brandID string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName(brandID),
		Value:    seenValue,
		Path:     "/",
		Expires:  neverExpires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
