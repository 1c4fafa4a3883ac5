package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/christian-keitri/my-app/internal/application/ports"
	"github.com/christian-keitri/my-app/internal/domain"
	domerrors "github.com/christian-keitri/my-app/internal/domain/errors"
)

// UsersHandler handles /api/users. The password hash never appears in any
// response.
type UsersHandler struct {
	userRepo ports.UserRepository
	hasher   ports.PasswordHasher
	log      zerolog.Logger
}

func NewUsersHandler(userRepo ports.UserRepository, hasher ports.PasswordHasher, log zerolog.Logger) *UsersHandler {
	return &UsersHandler{userRepo: userRepo, hasher: hasher, log: log}
}

// UserResponse is the JSON shape for a user.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// List handles GET /api/users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list users failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	items := make([]UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, userToResponse(u))
	}
	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /api/users. An administrative create follows the same
// uniqueness and hashing rules as self-registration.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		FirstName string `json:"firstname"`
		LastName  string `json:"lastname"`
		Password  string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	email := SanitizeEmail(body.Email)
	password := SanitizePassword(body.Password)
	if body.Username == "" || email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, "required fields missing")
		return
	}
	existing, err := h.userRepo.GetByEmail(r.Context(), email)
	if err != nil {
		h.log.Error().Err(err).Msg("create user failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing != nil {
		writeErr(w, http.StatusConflict, "email already exists")
		return
	}
	hash, err := h.hasher.Hash(password)
	if err != nil {
		h.log.Error().Err(err).Msg("create user failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	user := &domain.User{
		Email:        email,
		Username:     body.Username,
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		PasswordHash: hash,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		h.log.Error().Err(err).Msg("create user failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, userToResponse(user))
}

// Update handles PUT /api/users/{id}. Only profile fields change; the email
// uniqueness check is not re-run here (matching the front office behaviour).
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var body struct {
		Username  string `json:"username"`
		Email     string `json:"email"`
		FirstName string `json:"firstname"`
		LastName  string `json:"lastname"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	user, err := h.userRepo.Update(r.Context(), domain.NewUserID(id), ports.UserUpdate{
		Username:  body.Username,
		Email:     SanitizeEmail(body.Email),
		FirstName: body.FirstName,
		LastName:  body.LastName,
	})
	if err != nil {
		if errors.Is(err, domerrors.ErrUserNotFound) {
			writeErr(w, http.StatusNotFound, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("update user failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, userToResponse(user))
}
