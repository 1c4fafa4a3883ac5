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

// PortalCodesHandler handles /api/branch-portal-codes.
type PortalCodesHandler struct {
	codeRepo   ports.PortalCodeRepository
	branchRepo ports.BranchRepository
	log        zerolog.Logger
}

func NewPortalCodesHandler(codeRepo ports.PortalCodeRepository, branchRepo ports.BranchRepository, log zerolog.Logger) *PortalCodesHandler {
	return &PortalCodesHandler{codeRepo: codeRepo, branchRepo: branchRepo, log: log}
}

// PortalCodeResponse is the JSON shape for a branch portal code.
type PortalCodeResponse struct {
	ID              string `json:"id"`
	Code            string `json:"code"`
	IntegrationType string `json:"integrationType"`
	Status          bool   `json:"status"`
	BranchID        string `json:"branchId"`
	CreatedAt       string `json:"createdAt"`
}

func portalCodeToResponse(c *domain.BranchPortalCode) PortalCodeResponse {
	return PortalCodeResponse{
		ID:              c.ID.String(),
		Code:            c.Code,
		IntegrationType: c.IntegrationType,
		Status:          c.Status,
		BranchID:        c.BranchID.String(),
		CreatedAt:       formatTime(c.CreatedAt),
	}
}

// List handles GET /api/branch-portal-codes.
func (h *PortalCodesHandler) List(w http.ResponseWriter, r *http.Request) {
	codes, err := h.codeRepo.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list portal codes failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	items := make([]PortalCodeResponse, 0, len(codes))
	for _, c := range codes {
		items = append(items, portalCodeToResponse(c))
	}
	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /api/branch-portal-codes. Code, branchId and a known
// integrationType are required, and the branch must exist.
func (h *PortalCodesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code            string `json:"code"`
		BranchID        string `json:"branchId"`
		IntegrationType string `json:"integrationType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if body.Code == "" || body.BranchID == "" || body.IntegrationType == "" {
		writeErr(w, http.StatusBadRequest, "code, branchId and integrationType are required")
		return
	}
	if !domain.ValidIntegrationType(body.IntegrationType) {
		writeErr(w, http.StatusBadRequest, "unknown integrationType")
		return
	}
	branchID, err := uuid.Parse(body.BranchID)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid branchId")
		return
	}
	branch, err := h.branchRepo.GetByID(r.Context(), domain.NewBranchID(branchID))
	if err != nil {
		h.log.Error().Err(err).Msg("create portal code failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	if branch == nil {
		writeErr(w, http.StatusBadRequest, "branch does not exist")
		return
	}
	code := &domain.BranchPortalCode{
		Code:            body.Code,
		IntegrationType: body.IntegrationType,
		Status:          true,
		BranchID:        branch.ID,
	}
	if err := h.codeRepo.Create(r.Context(), code); err != nil {
		h.log.Error().Err(err).Msg("create portal code failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, portalCodeToResponse(code))
}

// Toggle handles PUT /api/branch-portal-codes/{id}/toggle.
func (h *PortalCodesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid portal code id")
		return
	}
	code, err := h.codeRepo.Toggle(r.Context(), domain.NewPortalCodeID(id))
	if err != nil {
		if errors.Is(err, domerrors.ErrPortalCodeNotFound) {
			writeErr(w, http.StatusNotFound, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("toggle portal code failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, portalCodeToResponse(code))
}

// Delete handles DELETE /api/branch-portal-codes/{id}. Hard delete; deleting
// the same id again fails with 404.
func (h *PortalCodesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid portal code id")
		return
	}
	if err := h.codeRepo.Delete(r.Context(), domain.NewPortalCodeID(id)); err != nil {
		if errors.Is(err, domerrors.ErrPortalCodeNotFound) {
			writeErr(w, http.StatusNotFound, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("delete portal code failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "portal code deleted"})
}
