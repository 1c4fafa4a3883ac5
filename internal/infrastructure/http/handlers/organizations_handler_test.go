package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/christian-keitri/my-app/internal/domain"
)

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateOrganizationDefaultsEnabled(t *testing.T) {
	h := NewOrganizationsHandler(&fakeOrgRepo{}, &fakeUserRepo{}, zerolog.Nop())
	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/api/organizations", strings.NewReader(`{"name":"Acme"}`)))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, want 201", w.Code)
	}
	var resp OrgResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.IsEnabled {
		t.Error("new organization should default to enabled")
	}
	if resp.Name != "Acme" {
		t.Errorf("name = %q, want Acme", resp.Name)
	}
}

func TestCreateOrganizationRequiresName(t *testing.T) {
	h := NewOrganizationsHandler(&fakeOrgRepo{}, &fakeUserRepo{}, zerolog.Nop())
	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/api/organizations", strings.NewReader(`{"notes":"no name"}`)))
	if w.Code != http.StatusBadRequest {
		t.Errorf("create without name: status = %d, want 400", w.Code)
	}
}

func TestUpdateOrganizationNotFound(t *testing.T) {
	h := NewOrganizationsHandler(&fakeOrgRepo{}, &fakeUserRepo{}, zerolog.Nop())
	r := httptest.NewRequest(http.MethodPut, "/api/organizations/x", strings.NewReader(`{"name":"Acme"}`))
	r = withURLParam(r, "id", uuid.NewString())
	w := httptest.NewRecorder()
	h.Update(w, r)
	if w.Code != http.StatusNotFound {
		t.Errorf("update missing org: status = %d, want 404", w.Code)
	}
}

func TestUpdateOrganizationKeepsDisabledState(t *testing.T) {
	repo := &fakeOrgRepo{}
	org := &domain.Organization{Name: "Acme", IsEnabled: false}
	if err := repo.Create(context.Background(), org); err != nil {
		t.Fatal(err)
	}
	h := NewOrganizationsHandler(repo, &fakeUserRepo{}, zerolog.Nop())

	r := httptest.NewRequest(http.MethodPut, "/api/organizations/x", strings.NewReader(`{"name":"Acme Renamed"}`))
	r = withURLParam(r, "id", org.ID.String())
	w := httptest.NewRecorder()
	h.Update(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d, want 200", w.Code)
	}
	var resp OrgResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.IsEnabled {
		t.Error("name-only update must not re-enable a disabled organization")
	}
	if resp.Name != "Acme Renamed" {
		t.Errorf("name = %q, want Acme Renamed", resp.Name)
	}

	// An explicit isEnabled in the body still changes the flag.
	r = httptest.NewRequest(http.MethodPut, "/api/organizations/x", strings.NewReader(`{"name":"Acme Renamed","isEnabled":true}`))
	r = withURLParam(r, "id", org.ID.String())
	w = httptest.NewRecorder()
	h.Update(w, r)
	resp = OrgResponse{}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.IsEnabled {
		t.Error("explicit isEnabled:true should enable the organization")
	}
}

func TestToggleOrganizationTwiceRestoresState(t *testing.T) {
	repo := &fakeOrgRepo{}
	org := &domain.Organization{Name: "Acme", IsEnabled: true}
	if err := repo.Create(context.Background(), org); err != nil {
		t.Fatal(err)
	}
	h := NewOrganizationsHandler(repo, &fakeUserRepo{}, zerolog.Nop())

	toggle := func() OrgResponse {
		r := httptest.NewRequest(http.MethodPut, "/api/organizations/x/toggle", nil)
		r = withURLParam(r, "id", org.ID.String())
		w := httptest.NewRecorder()
		h.Toggle(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("toggle: status = %d, want 200", w.Code)
		}
		var resp OrgResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatal(err)
		}
		return resp
	}

	if first := toggle(); first.IsEnabled {
		t.Error("first toggle should disable")
	}
	if second := toggle(); !second.IsEnabled {
		t.Error("second toggle should restore enabled")
	}
}

func TestToggleOrganizationNotFound(t *testing.T) {
	h := NewOrganizationsHandler(&fakeOrgRepo{}, &fakeUserRepo{}, zerolog.Nop())
	r := httptest.NewRequest(http.MethodPut, "/api/organizations/x/toggle", nil)
	r = withURLParam(r, "id", uuid.NewString())
	w := httptest.NewRecorder()
	h.Toggle(w, r)
	if w.Code != http.StatusNotFound {
		t.Errorf("toggle missing org: status = %d, want 404", w.Code)
	}
}

func TestClientsNestsUsers(t *testing.T) {
	orgs := &fakeOrgRepo{}
	users := &fakeUserRepo{}
	org := &domain.Organization{Name: "Acme", IsEnabled: true}
	if err := orgs.Create(context.Background(), org); err != nil {
		t.Fatal(err)
	}
	member := &domain.User{Email: "member@example.com", Username: "member", PasswordHash: "x", OrganizationID: &org.ID}
	if err := users.Create(context.Background(), member); err != nil {
		t.Fatal(err)
	}
	outsider := &domain.User{Email: "other@example.com", Username: "other", PasswordHash: "x"}
	if err := users.Create(context.Background(), outsider); err != nil {
		t.Fatal(err)
	}

	h := NewOrganizationsHandler(orgs, users, zerolog.Nop())
	w := httptest.NewRecorder()
	h.Clients(w, httptest.NewRequest(http.MethodGet, "/api/clients", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("clients: status = %d, want 200", w.Code)
	}
	var resp []ClientResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp) != 1 {
		t.Fatalf("got %d orgs, want 1", len(resp))
	}
	if len(resp[0].Users) != 1 || resp[0].Users[0].Email != "member@example.com" {
		t.Errorf("nested users = %v, want the one attached member", resp[0].Users)
	}
}
