package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litoraledu/gestordoc/internal/common"
)

// fakeBackend mimics the server's auth surface with cookie-based sessions.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", func(w http.ResponseWriter, r *http.Request) {
		var in RegisterInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.Email == "dup@litoral.edu.co" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "El email ya está registrado"})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Usuario registrado exitosamente"})
	})

	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.Password != "Segura123!" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Email o contraseña incorrectos"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: common.SessionCookieName, Value: "tok", Path: "/"})
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Login exitoso",
			"data": map[string]string{
				"id": "u1", "email": in.Email, "name": "Ana Pérez", "institutional_id": "1234567890",
			},
		})
	})

	mux.HandleFunc("GET /api/check_session", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(common.SessionCookieName); err != nil || c.Value != "tok" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"authenticated": false, "message": "Usuario no autenticado"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"authenticated": true,
			"user":          map[string]string{"id": "u1", "email": "ana@litoral.edu.co", "name": "Ana Pérez", "institutional_id": "1234567890"},
		})
	})

	mux.HandleFunc("POST /api/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: common.SessionCookieName, Value: "", Path: "/", MaxAge: -1})
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Sesión cerrada exitosamente"})
	})

	mux.HandleFunc("POST /api/upload_url", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]string{"key": "users/2026/9/1/abc", "url": "http://signed-put"},
		})
	})

	mux.HandleFunc("GET /api/download_url", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "users/2026/9/1/abc", r.URL.Query().Get("key"))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]string{"url": "http://signed-get"},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	srv := fakeBackend(t)
	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	return c
}

func TestRegisterOk(t *testing.T) {
	c := newTestClient(t)

	err := c.Register(context.Background(), RegisterInput{Email: "ana@litoral.edu.co"})
	assert.NoError(t, err)
}

func TestRegisterConflictMessage(t *testing.T) {
	c := newTestClient(t)

	err := c.Register(context.Background(), RegisterInput{Email: "dup@litoral.edu.co"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.EqualError(t, err, "El email ya está registrado")
}

func TestLoginStoresSessionCookie(t *testing.T) {
	c := newTestClient(t)

	p, err := c.Login(context.Background(), "ana@litoral.edu.co", "Segura123!", false)
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", p.Name)

	// the jar carries the cookie into subsequent requests
	got, err := c.CheckSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestLoginUnauthorized(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Login(context.Background(), "ana@litoral.edu.co", "mala", false)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.EqualError(t, err, "Email o contraseña incorrectos")
}

func TestCheckSessionWithoutLogin(t *testing.T) {
	c := newTestClient(t)

	_, err := c.CheckSession(context.Background())
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogoutDropsSession(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Login(context.Background(), "ana@litoral.edu.co", "Segura123!", false)
	require.NoError(t, err)

	require.NoError(t, c.Logout(context.Background()))

	_, err = c.CheckSession(context.Background())
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestUploadAndDownloadURL(t *testing.T) {
	c := newTestClient(t)

	key, url, err := c.UploadURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "users/2026/9/1/abc", key)
	assert.Equal(t, "http://signed-put", url)

	got, err := c.DownloadURL(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "http://signed-get", got)
}
