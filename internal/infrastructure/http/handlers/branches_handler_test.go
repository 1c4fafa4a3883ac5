package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/christian-keitri/my-app/internal/domain"
)

func TestCreateBranchDefaultsActive(t *testing.T) {
	orgs := &fakeOrgRepo{}
	org := &domain.Organization{Name: "Acme", IsEnabled: true}
	if err := orgs.Create(context.Background(), org); err != nil {
		t.Fatal(err)
	}
	branches := &fakeBranchRepo{}
	h := NewBranchesHandler(branches, orgs, zerolog.Nop())

	body := fmt.Sprintf(`{"name":"HQ","organizationId":%q}`, org.ID.String())
	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/api/branches", strings.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, want 201, body %s", w.Code, w.Body.String())
	}
	var resp BranchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Status {
		t.Error("new branch should default to active")
	}
	if resp.Organization == nil || resp.Organization.Name != "Acme" {
		t.Errorf("organization = %+v, want Acme summary", resp.Organization)
	}
}

func TestCreateBranchMissingOrganization(t *testing.T) {
	branches := &fakeBranchRepo{}
	h := NewBranchesHandler(branches, &fakeOrgRepo{}, zerolog.Nop())

	body := fmt.Sprintf(`{"name":"HQ","organizationId":%q}`, uuid.NewString())
	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/api/branches", strings.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("create under missing org: status = %d, want 400", w.Code)
	}
	if len(branches.branches) != 0 {
		t.Errorf("branch store holds %d rows, want 0", len(branches.branches))
	}
}

func TestListBranchesCarriesOrganizationName(t *testing.T) {
	orgs := &fakeOrgRepo{}
	org := &domain.Organization{Name: "Acme", IsEnabled: true}
	if err := orgs.Create(context.Background(), org); err != nil {
		t.Fatal(err)
	}
	branches := &fakeBranchRepo{}
	if err := branches.Create(context.Background(), &domain.Branch{
		Name:             "HQ",
		Status:           true,
		OrganizationID:   org.ID,
		OrganizationName: org.Name,
	}); err != nil {
		t.Fatal(err)
	}

	h := NewBranchesHandler(branches, orgs, zerolog.Nop())
	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/api/branches", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("list: status = %d, want 200", w.Code)
	}
	var resp []BranchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp) != 1 {
		t.Fatalf("got %d branches, want 1", len(resp))
	}
	if resp[0].Organization == nil || resp[0].Organization.Name != "Acme" {
		t.Errorf("organization = %+v, want name Acme", resp[0].Organization)
	}
}

func TestToggleBranchTwiceRestoresState(t *testing.T) {
	branches := &fakeBranchRepo{}
	branch := &domain.Branch{Name: "HQ", Status: true, OrganizationID: domain.NewOrganizationID(uuid.New())}
	if err := branches.Create(context.Background(), branch); err != nil {
		t.Fatal(err)
	}
	h := NewBranchesHandler(branches, &fakeOrgRepo{}, zerolog.Nop())

	toggle := func() BranchResponse {
		r := httptest.NewRequest(http.MethodPut, "/api/branches/x/toggle", nil)
		r = withURLParam(r, "id", branch.ID.String())
		w := httptest.NewRecorder()
		h.Toggle(w, r)
		if w.Code != http.StatusOK {
			t.Fatalf("toggle: status = %d, want 200", w.Code)
		}
		var resp BranchResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatal(err)
		}
		return resp
	}

	if first := toggle(); first.Status {
		t.Error("first toggle should deactivate")
	}
	if second := toggle(); !second.Status {
		t.Error("second toggle should restore active")
	}
}

func TestUpdateBranchKeepsInactiveState(t *testing.T) {
	branches := &fakeBranchRepo{}
	branch := &domain.Branch{
		Name:             "HQ",
		Status:           false,
		OrganizationID:   domain.NewOrganizationID(uuid.New()),
		OrganizationName: "Acme",
	}
	if err := branches.Create(context.Background(), branch); err != nil {
		t.Fatal(err)
	}
	h := NewBranchesHandler(branches, &fakeOrgRepo{}, zerolog.Nop())

	r := httptest.NewRequest(http.MethodPut, "/api/branches/x", strings.NewReader(`{"name":"HQ Renamed"}`))
	r = withURLParam(r, "id", branch.ID.String())
	w := httptest.NewRecorder()
	h.Update(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status = %d, want 200", w.Code)
	}
	var resp BranchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status {
		t.Error("name-only update must not reactivate an inactive branch")
	}
	if resp.Organization == nil || resp.Organization.Name != "Acme" {
		t.Errorf("update response organization = %+v, want name Acme", resp.Organization)
	}
}

func TestToggleBranchResponseCarriesOrganization(t *testing.T) {
	branches := &fakeBranchRepo{}
	branch := &domain.Branch{
		Name:             "HQ",
		Status:           true,
		OrganizationID:   domain.NewOrganizationID(uuid.New()),
		OrganizationName: "Acme",
	}
	if err := branches.Create(context.Background(), branch); err != nil {
		t.Fatal(err)
	}
	h := NewBranchesHandler(branches, &fakeOrgRepo{}, zerolog.Nop())

	r := httptest.NewRequest(http.MethodPut, "/api/branches/x/toggle", nil)
	r = withURLParam(r, "id", branch.ID.String())
	w := httptest.NewRecorder()
	h.Toggle(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle: status = %d, want 200", w.Code)
	}
	var resp BranchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Organization == nil || resp.Organization.Name != "Acme" {
		t.Errorf("toggle response organization = %+v, want name Acme", resp.Organization)
	}
}

func TestUpdateBranchNotFound(t *testing.T) {
	h := NewBranchesHandler(&fakeBranchRepo{}, &fakeOrgRepo{}, zerolog.Nop())
	r := httptest.NewRequest(http.MethodPut, "/api/branches/x", strings.NewReader(`{"name":"HQ"}`))
	r = withURLParam(r, "id", uuid.NewString())
	w := httptest.NewRecorder()
	h.Update(w, r)
	if w.Code != http.StatusNotFound {
		t.Errorf("update missing branch: status = %d, want 404", w.Code)
	}
}
