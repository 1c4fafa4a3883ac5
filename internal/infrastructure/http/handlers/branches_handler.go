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

// BranchesHandler handles /api/branches.
type BranchesHandler struct {
	branchRepo ports.BranchRepository
	orgRepo    ports.OrganizationRepository
	log        zerolog.Logger
}

func NewBranchesHandler(branchRepo ports.BranchRepository, orgRepo ports.OrganizationRepository, log zerolog.Logger) *BranchesHandler {
	return &BranchesHandler{branchRepo: branchRepo, orgRepo: orgRepo, log: log}
}

// BranchOrg is the joined organization summary on a branch listing.
type BranchOrg struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BranchResponse is the JSON shape for a branch.
type BranchResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Status       bool       `json:"status"`
	CreatedAt    string     `json:"createdAt"`
	Organization *BranchOrg `json:"organization"`
}

func branchToResponse(b *domain.Branch) BranchResponse {
	resp := BranchResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		Status:    b.Status,
		CreatedAt: formatTime(b.CreatedAt),
	}
	if b.OrganizationName != "" {
		resp.Organization = &BranchOrg{ID: b.OrganizationID.String(), Name: b.OrganizationName}
	}
	return resp
}

// List handles GET /api/branches, newest first, each row carrying the owning
// organization's name from a read-time join.
func (h *BranchesHandler) List(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branchRepo.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list branches failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	items := make([]BranchResponse, 0, len(branches))
	for _, b := range branches {
		items = append(items, branchToResponse(b))
	}
	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /api/branches. The owning organization must exist; a
// branch is never created as an orphan.
func (h *BranchesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name           string `json:"name"`
		OrganizationID string `json:"organizationId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if body.Name == "" || body.OrganizationID == "" {
		writeErr(w, http.StatusBadRequest, "name and organizationId are required")
		return
	}
	orgID, err := uuid.Parse(body.OrganizationID)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid organizationId")
		return
	}
	org, err := h.orgRepo.GetByID(r.Context(), domain.NewOrganizationID(orgID))
	if err != nil {
		h.log.Error().Err(err).Msg("create branch failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	if org == nil {
		writeErr(w, http.StatusBadRequest, "organization does not exist")
		return
	}
	branch := &domain.Branch{
		Name:             body.Name,
		Status:           true,
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
	}
	if err := h.branchRepo.Create(r.Context(), branch); err != nil {
		h.log.Error().Err(err).Msg("create branch failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, branchToResponse(branch))
}

// Update handles PUT /api/branches/{id}.
func (h *BranchesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid branch id")
		return
	}
	var body struct {
		Name   string `json:"name"`
		Status *bool  `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if body.Name == "" {
		writeErr(w, http.StatusBadRequest, "name is required")
		return
	}
	// Omitted status keeps the stored flag.
	branch, err := h.branchRepo.Update(r.Context(), domain.NewBranchID(id), ports.BranchUpdate{
		Name:   body.Name,
		Status: body.Status,
	})
	if err != nil {
		if errors.Is(err, domerrors.ErrBranchNotFound) {
			writeErr(w, http.StatusNotFound, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("update branch failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, branchToResponse(branch))
}

// Toggle handles PUT /api/branches/{id}/toggle.
func (h *BranchesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid branch id")
		return
	}
	branch, err := h.branchRepo.Toggle(r.Context(), domain.NewBranchID(id))
	if err != nil {
		if errors.Is(err, domerrors.ErrBranchNotFound) {
			writeErr(w, http.StatusNotFound, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("toggle branch failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, branchToResponse(branch))
}
