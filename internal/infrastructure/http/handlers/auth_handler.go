package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/christian-keitri/my-app/internal/application/auth"
	domerrors "github.com/christian-keitri/my-app/internal/domain/errors"
	"github.com/christian-keitri/my-app/internal/infrastructure/http/middleware"
)

// CookieSettings controls the session cookie attributes. Secure stays off in
// the default deployment behind plain HTTP; flip it when serving TLS.
type CookieSettings struct {
	MaxAge int
	Secure bool
}

type AuthHandler struct {
	register *auth.RegisterUser
	login    *auth.Login
	cookie   CookieSettings
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthHandler(register *auth.RegisterUser, login *auth.Login, cookie CookieSettings, log zerolog.Logger) *AuthHandler {
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = 3600
	}
	return &AuthHandler{
		register: register,
		login:    login,
		cookie:   cookie,
		validate: validator.New(),
		log:      log,
	}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email     string `json:"email" validate:"required,email,max=254"`
		Password  string `json:"password" validate:"required,min=8,max=128"`
		Username  string `json:"username" validate:"max=100"`
		FirstName string `json:"firstname" validate:"max=100"`
		LastName  string `json:"lastname" validate:"max=100"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "email and password are required")
		return
	}
	email := SanitizeEmail(body.Email)
	password := SanitizePassword(body.Password)
	if email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, "invalid email or password length")
		return
	}
	result, err := h.register.Execute(r.Context(), auth.RegisterUserInput{
		Email:     email,
		Password:  password,
		Username:  body.Username,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	})
	if err != nil {
		AuditLog(h.log, r, "user.register", "", false, err.Error())
		middleware.RecordAuthAttempt("register", false)
		switch {
		case errors.Is(err, domerrors.ErrEmailExists):
			writeErr(w, http.StatusConflict, err.Error())
		case errors.Is(err, domerrors.ErrInvalidEmail):
			writeErr(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error().Err(err).Msg("register failed")
			writeErr(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	AuditLog(h.log, r, "user.register", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("register", true)
	writeJSON(w, http.StatusCreated, map[string]string{"message": "registered successfully"})
}

// Login handles POST /api/login. On success the session token is delivered as
// an HTTP-only cookie.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "missing credentials")
		return
	}
	email := SanitizeEmail(body.Email)
	password := SanitizePassword(body.Password)
	if email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, "invalid email or password length")
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{Email: email, Password: password})
	if err != nil {
		AuditLog(h.log, r, "user.login", "", false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		if errors.Is(err, domerrors.ErrInvalidCredentials) {
			writeErr(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	AuditLog(h.log, r, "user.login", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("login", true)
	http.SetCookie(w, h.sessionCookie(result.Token, h.cookie.MaxAge))
	writeJSON(w, http.StatusOK, map[string]string{"message": "login successful"})
}

// Me handles GET /api/me. Requires the SessionValidator middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.SessionFromContext(r.Context())
	if claims == nil {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user": map[string]string{
			"userId":    claims.UserID,
			"email":     claims.Email,
			"issuedAt":  formatTime(claims.IssuedAt),
			"expiresAt": formatTime(claims.ExpiresAt),
		},
	})
}

// Logout handles POST /api/logout. Revocation is purely client-side: the
// cookie is cleared, but an already-issued token stays valid until its expiry
// since there is no server-side blacklist.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
