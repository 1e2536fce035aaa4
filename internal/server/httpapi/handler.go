package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/litoraledu/gestordoc/internal/common"
	"github.com/litoraledu/gestordoc/internal/server/auth"
	"github.com/litoraledu/gestordoc/internal/server/models"
	"github.com/litoraledu/gestordoc/internal/server/services"
)

type registerRequest struct {
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	InstitutionalID string `json:"institutionalId"`
	Terms           bool   `json:"terms"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type sessionStatus struct {
	Authenticated bool   `json:"authenticated"`
	Message       string `json:"message,omitempty"`
	User          any    `json:"user,omitempty"`
}

type userProfile struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	InstitutionalID string `json:"institutional_id"`
}

func profileOf(u *models.User) userProfile {
	return userProfile{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.FullName(),
		InstitutionalID: u.InstitutionalID,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service errors to HTTP statuses. Anything that is not a
// validation, conflict or auth error becomes a generic 500: the detail is
// logged but never shown to the caller.
func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation), errors.Is(err, common.ErrorConflict):
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Message: err.Error()})
	case errors.Is(err, common.ErrorUnauthorized):
		writeJSON(w, http.StatusUnauthorized, envelope{Success: false, Message: err.Error()})
	default:
		s.logger.Error(r.Context(), "internal error", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{Success: false, Message: "Error de base de datos"})
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.Validation("Datos inválidos")
	}
	return nil
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, err := s.users.Register(r.Context(), services.RegisterInput{
		Email:           req.Email,
		Phone:           req.Phone,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		InstitutionalID: req.InstitutionalID,
		Terms:           req.Terms,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Message: "Usuario registrado exitosamente",
		Data: map[string]string{
			"id":        user.ID,
			"email":     user.Email,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
		},
	})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	user, session, err := s.users.Login(r.Context(), req.Email, req.Password, req.Remember)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	validity := s.users.SessionValidity(req.Remember)

	token, err := auth.GenerateToken(session.ID, s.jwtSecret, validity)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(validity.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Login exitoso",
		Data:    profileOf(user),
	})
}

func (s *HTTPServer) handleLogout(w http.ResponseWriter, r *http.Request) {
	// A missing or mangled cookie still logs out cleanly.
	if sessionID := s.sessionIDFromRequest(r); sessionID != "" {
		if err := s.users.Logout(r.Context(), sessionID); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, envelope{Success: true, Message: "Sesión cerrada exitosamente"})
}

func (s *HTTPServer) handleCheckSession(w http.ResponseWriter, r *http.Request) {
	sessionID := s.sessionIDFromRequest(r)
	if sessionID == "" {
		writeJSON(w, http.StatusUnauthorized, sessionStatus{Authenticated: false, Message: "Usuario no autenticado"})
		return
	}

	user, err := s.users.CheckSession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, sessionStatus{Authenticated: false, Message: "Usuario no autenticado"})
			return
		}
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionStatus{Authenticated: true, User: profileOf(user)})
}

func (s *HTTPServer) handleUploadURL(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.content.GetPresignedPutUrl(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		Success: true,
		Data:    map[string]string{"key": key, "url": url},
	})
}

func (s *HTTPServer) handleDownloadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		s.writeError(w, r, common.Validation("El parámetro key es requerido"))
		return
	}

	url, err := s.content.GetPresignedGetUrl(r.Context(), key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    map[string]string{"url": url},
	})
}

// sessionIDFromRequest extracts and verifies the session cookie. An absent
// or invalid cookie yields the empty string.
func (s *HTTPServer) sessionIDFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(common.SessionCookieName)
	if err != nil {
		return ""
	}

	sessionID, err := auth.GetSessionIDFromToken(cookie.Value, s.jwtSecret)
	if err != nil {
		return ""
	}

	return sessionID
}
