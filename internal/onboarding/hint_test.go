package onboarding

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCookieName(t *testing.T) {
	require.Equal(t, "te_hint_ay-wey", CookieName("ay-wey"))
	require.Equal(t, "te_hint_cocos_pacifico", CookieName(" Cocos Pacifico"))
}

func TestMarkSeenRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	MarkSeen(rec, "togoima", true)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "te_hint_togoima", cookies[0].Name)
	require.True(t, cookies[0].Secure)
	require.Equal(t, 2099, cookies[0].Expires.Year())

	req := httptest.NewRequest(http.MethodGet, "/brands/togoima", nil)
	require.True(t, ShouldShow(req, "togoima", 3))
	req.AddCookie(cookies[0])
	require.True(t, Seen(req, "togoima"))
	require.False(t, ShouldShow(req, "togoima", 3))
	require.False(t, Seen(req, "perfetto"), "flag is scoped per brand")
}

func TestShouldShowNeedsChoices(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.False(t, ShouldShow(req, "mazorca", 1))
	require.False(t, ShouldShow(req, "mazorca", 0))
}
