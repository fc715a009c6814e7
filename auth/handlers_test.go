package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T) (*Handlers, *Crypter) {
	t.Helper()
	crypter, err := NewCrypter("test-secret")
	require.NoError(t, err)
	return NewHandlers(NewService(newFakeDirectory()), crypter), crypter
}

func loginCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "loginToken" {
			return c
		}
	}
	return nil
}

func TestSignupSetsLoginCookie(t *testing.T) {
	handlers, crypter := newTestHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"fullname":"Ada Lovelace","username":"ada","password":"pw"}`))
	rec := httptest.NewRecorder()
	handlers.HandleSignup()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := loginCookie(t, rec.Result())
	require.NotNil(t, cookie, "signup must set the loginToken cookie")
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)

	principal, ok := crypter.Verify(cookie.Value)
	require.True(t, ok)
	assert.Equal(t, "ada", principal.Username)

	body := rec.Body.String()
	assert.Contains(t, body, `"username":"ada"`)
	assert.NotContains(t, body, "password")
}

func TestLoginSuccess(t *testing.T) {
	handlers, _ := newTestHandlers(t)

	signup := httptest.NewRequest(http.MethodPost, "/api/auth/signup",
		strings.NewReader(`{"fullname":"Ada","username":"ada","password":"pw"}`))
	handlers.HandleSignup()(httptest.NewRecorder(), signup)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"ada","password":"pw"}`))
	rec := httptest.NewRecorder()
	handlers.HandleLogin()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, loginCookie(t, rec.Result()))
}

func TestLoginFailureIs401(t *testing.T) {
	handlers, _ := newTestHandlers(t)

	cases := []string{
		`{"username":"nobody","password":"pw"}`,
		`not json`,
		`{}`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handlers.HandleLogin()(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "body %q", body)
		assert.Nil(t, loginCookie(t, rec.Result()))
	}
}

func TestSignupFailureIs400(t *testing.T) {
	handlers, _ := newTestHandlers(t)

	cases := []string{
		`{"username":"ada","password":"pw"}`,
		`not json`,
	}
	for _, body := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handlers.HandleSignup()(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
}

func TestSignupDuplicateUsernameIs400(t *testing.T) {
	handlers, _ := newTestHandlers(t)

	body := `{"fullname":"Ada","username":"ada","password":"pw"}`
	first := httptest.NewRecorder()
	handlers.HandleSignup()(first, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handlers.HandleSignup()(second, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, second.Body.String(), "Username already exists")
}

func TestLogout(t *testing.T) {
	handlers, _ := newTestHandlers(t)

	rec := httptest.NewRecorder()
	handlers.HandleLogout()(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logged out successfully")
}

func TestRequireUser(t *testing.T) {
	crypter, err := NewCrypter("test-secret")
	require.NoError(t, err)

	var seen *MiniUser
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	protected := RequireUser(crypter)(next)

	// No cookie.
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Invalid token.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "loginToken", Value: "garbage"})
	protected.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token reaches the handler with the principal in context.
	token, err := crypter.Issue(&MiniUser{ID: "abc123", Username: "ada"})
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "loginToken", Value: token})
	protected.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "ada", seen.Username)
}
