package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/christian-keitri/my-app/internal/application/ports"
)

// SessionCookieName is the cookie the front end stores the session token in.
const SessionCookieName = "token"

// SessionValidator validates the session cookie and sets the claims in
// context (see SessionFromContext).
type SessionValidator struct {
	issuer ports.TokenIssuer
}

func NewSessionValidator(issuer ports.TokenIssuer) *SessionValidator {
	return &SessionValidator{issuer: issuer}
}

func (m *SessionValidator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			writeErr(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		claims, err := m.issuer.Verify(cookie.Value)
		if err != nil {
			writeErr(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), claims)))
	})
}

func writeErr(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
