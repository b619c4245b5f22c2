package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSessionManager() *SessionManager {
	return NewSessionManager([]byte("0123456789abcdef0123456789abcdef"), nil)
}

func requestWithCookies(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSessionManager_RoundTrip(t *testing.T) {
	sm := testSessionManager()

	rec := httptest.NewRecorder()
	require.NoError(t, sm.SetAdmin(rec))

	assert.True(t, sm.IsAdmin(requestWithCookies(rec)))
}

func TestSessionManager_NoCookie(t *testing.T) {
	sm := testSessionManager()

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	assert.False(t, sm.IsAdmin(req))
}

func TestSessionManager_TamperedCookie(t *testing.T) {
	sm := testSessionManager()

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	req.AddCookie(&http.Cookie{Name: "tcb_admin_session", Value: "forged-value"})
	assert.False(t, sm.IsAdmin(req))
}

func TestSessionManager_ForeignKeyRejected(t *testing.T) {
	// Cookie, подписанная другим ключом, не проходит
	other := NewSessionManager([]byte("ffffffffffffffffffffffffffffffff"), nil)

	rec := httptest.NewRecorder()
	require.NoError(t, other.SetAdmin(rec))

	sm := testSessionManager()
	assert.False(t, sm.IsAdmin(requestWithCookies(rec)))
}
