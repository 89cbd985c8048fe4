package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wasishah33/Subscene-Clone/internal/auth"

	"github.com/stretchr/testify/assert"
)

func postJSON(r http.Handler, path string, body map[string]string) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

func TestAuthHandlers(t *testing.T) {
	h, _ := setupTestHandler("authhandlers", t.TempDir())
	r := setupTestRouter(h)

	t.Run("Register success", func(t *testing.T) {
		w := postJSON(r, "/api/auth/register", map[string]string{
			"username": "testuser",
			"email":    "test@example.com",
			"password": "password123",
			"fullName": "Test User",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("Register duplicate username", func(t *testing.T) {
		w := postJSON(r, "/api/auth/register", map[string]string{
			"username": "testuser",
			"email":    "different@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "username")
	})

	t.Run("Register duplicate email", func(t *testing.T) {
		w := postJSON(r, "/api/auth/register", map[string]string{
			"username": "otheruser",
			"email":    "test@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "mail")
	})

	t.Run("Register invalid input", func(t *testing.T) {
		w := postJSON(r, "/api/auth/register", map[string]string{
			"username": "tu",
			"email":    "invalid",
			"password": "short",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Register invalid username characters", func(t *testing.T) {
		w := postJSON(r, "/api/auth/register", map[string]string{
			"username": "bad user!",
			"email":    "bad@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Login success sets session cookie", func(t *testing.T) {
		w := postJSON(r, "/api/auth/login", map[string]string{
			"username": "testuser",
			"password": "password123",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		cookie := sessionCookie(w)
		assert.NotNil(t, cookie)
		assert.NotEmpty(t, cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, 7*24*3600, cookie.MaxAge)

		claims, err := h.issuer.Verify(cookie.Value)
		assert.NoError(t, err)
		assert.Equal(t, "testuser", claims.Username)
	})

	t.Run("Login by email", func(t *testing.T) {
		w := postJSON(r, "/api/auth/login", map[string]string{
			"username": "test@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Login wrong password", func(t *testing.T) {
		w := postJSON(r, "/api/auth/login", map[string]string{
			"username": "testuser",
			"password": "wrongpassword",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Login nonexistent user has the same shape", func(t *testing.T) {
		wWrong := postJSON(r, "/api/auth/login", map[string]string{
			"username": "testuser",
			"password": "wrongpassword",
		})
		wGhost := postJSON(r, "/api/auth/login", map[string]string{
			"username": "nobody",
			"password": "password123",
		})

		assert.Equal(t, http.StatusUnauthorized, wGhost.Code)
		assert.Equal(t, wWrong.Body.String(), wGhost.Body.String())
	})

	t.Run("Logout expires the cookie", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/auth/logout", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		cookie := sessionCookie(w)
		assert.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Less(t, cookie.MaxAge, 0)
	})
}

func TestCurrentUser(t *testing.T) {
	h, _ := setupTestHandler("currentuser", t.TempDir())
	r := setupTestRouter(h)

	w := postJSON(r, "/api/auth/register", map[string]string{
		"username": "whoami",
		"email":    "whoami@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	login := postJSON(r, "/api/auth/login", map[string]string{
		"username": "whoami",
		"password": "password123",
	})
	cookie := sessionCookie(login)
	assert.NotNil(t, cookie)

	t.Run("With cookie", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/auth/user", nil)
		req.AddCookie(cookie)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "whoami")
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("With bearer header", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/auth/user", nil)
		req.Header.Set("Authorization", "Bearer "+cookie.Value)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Without token", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/auth/user", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("With garbage token", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/auth/user", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "not.a.token"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired, err := h.issuer.Mint(1, "whoami", -auth.TokenTTL)
		assert.NoError(t, err)

		req, _ := http.NewRequest("GET", "/api/auth/user", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: expired})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Token for a deleted user", func(t *testing.T) {
		orphan, err := h.issuer.Mint(9999, "ghost", auth.TokenTTL)
		assert.NoError(t, err)

		req, _ := http.NewRequest("GET", "/api/auth/user", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: orphan})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

}
