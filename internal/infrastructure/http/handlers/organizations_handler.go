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

// OrganizationsHandler handles /api/organizations and /api/clients.
type OrganizationsHandler struct {
	orgRepo  ports.OrganizationRepository
	userRepo ports.UserRepository
	log      zerolog.Logger
}

func NewOrganizationsHandler(orgRepo ports.OrganizationRepository, userRepo ports.UserRepository, log zerolog.Logger) *OrganizationsHandler {
	return &OrganizationsHandler{orgRepo: orgRepo, userRepo: userRepo, log: log}
}

// OrgResponse is the JSON shape for an organization.
type OrgResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	IsEnabled   bool   `json:"isEnabled"`
	CreatedAt   string `json:"createdAt"`
}

func orgToResponse(o *domain.Organization) OrgResponse {
	return OrgResponse{
		ID:          o.ID.String(),
		Name:        o.Name,
		Description: o.Description,
		Notes:       o.Notes,
		IsEnabled:   o.IsEnabled,
		CreatedAt:   formatTime(o.CreatedAt),
	}
}

type orgBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	IsEnabled   *bool  `json:"isEnabled"`
}

// List handles GET /api/organizations, newest first.
func (h *OrganizationsHandler) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.orgRepo.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list organizations failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	items := make([]OrgResponse, 0, len(orgs))
	for _, o := range orgs {
		items = append(items, orgToResponse(o))
	}
	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /api/organizations. Name is required; the enabled flag
// defaults to true when omitted.
func (h *OrganizationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body orgBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if body.Name == "" {
		writeErr(w, http.StatusBadRequest, "name is required")
		return
	}
	enabled := true
	if body.IsEnabled != nil {
		enabled = *body.IsEnabled
	}
	org := &domain.Organization{
		Name:        body.Name,
		Description: body.Description,
		Notes:       body.Notes,
		IsEnabled:   enabled,
	}
	if err := h.orgRepo.Create(r.Context(), org); err != nil {
		h.log.Error().Err(err).Msg("create organization failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, orgToResponse(org))
}

// Update handles PUT /api/organizations/{id}. Name stays required; an
// omitted isEnabled preserves the stored flag.
func (h *OrganizationsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid organization id")
		return
	}
	var body orgBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if body.Name == "" {
		writeErr(w, http.StatusBadRequest, "name is required")
		return
	}
	// Omitted isEnabled keeps the stored flag; only an explicit value or the
	// toggle endpoint changes it.
	org, err := h.orgRepo.Update(r.Context(), domain.NewOrganizationID(id), ports.OrganizationUpdate{
		Name:        body.Name,
		Description: body.Description,
		Notes:       body.Notes,
		IsEnabled:   body.IsEnabled,
	})
	if err != nil {
		if errors.Is(err, domerrors.ErrOrganizationNotFound) {
			writeErr(w, http.StatusNotFound, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("update organization failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, orgToResponse(org))
}

// Toggle handles PUT /api/organizations/{id}/toggle. The flip happens in one
// store-side statement, so concurrent toggles serialize there.
func (h *OrganizationsHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid organization id")
		return
	}
	org, err := h.orgRepo.Toggle(r.Context(), domain.NewOrganizationID(id))
	if err != nil {
		if errors.Is(err, domerrors.ErrOrganizationNotFound) {
			writeErr(w, http.StatusNotFound, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("toggle organization failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, orgToResponse(org))
}

// ClientResponse is an organization with its attached users.
type ClientResponse struct {
	OrgResponse
	Users []UserResponse `json:"users"`
}

// Clients handles GET /api/clients: all organizations with nested users.
func (h *OrganizationsHandler) Clients(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.orgRepo.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list clients failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	items := make([]ClientResponse, 0, len(orgs))
	for _, o := range orgs {
		users, err := h.userRepo.ListByOrganization(r.Context(), o.ID)
		if err != nil {
			h.log.Error().Err(err).Msg("list clients failed")
			writeErr(w, http.StatusInternalServerError, "internal error")
			return
		}
		nested := make([]UserResponse, 0, len(users))
		for _, u := range users {
			nested = append(nested, userToResponse(u))
		}
		items = append(items, ClientResponse{OrgResponse: orgToResponse(o), Users: nested})
	}
	writeJSON(w, http.StatusOK, items)
}
