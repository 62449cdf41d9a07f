package sponsorship_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tooldex/internal/domain/entity"
	"tooldex/internal/handler/http/sponsorship"
	spUC "tooldex/internal/usecase/sponsorship"
)

type stubSponsorshipRepo struct {
	byTool  map[string][]*entity.Sponsorship
	created *entity.Sponsorship
	expired int64
}

func (s *stubSponsorshipRepo) Get(_ context.Context, _ string) (*entity.Sponsorship, error) {
	return nil, entity.ErrNotFound
}

func (s *stubSponsorshipRepo) ListByTool(_ context.Context, toolID string) ([]*entity.Sponsorship, error) {
	return s.byTool[toolID], nil
}

func (s *stubSponsorshipRepo) Create(_ context.Context, sp *entity.Sponsorship) error {
	s.created = sp
	return nil
}

func (s *stubSponsorshipRepo) Update(_ context.Context, _ *entity.Sponsorship) error { return nil }
func (s *stubSponsorshipRepo) Delete(_ context.Context, _ string) error              { return nil }
func (s *stubSponsorshipRepo) DeactivateExpired(_ context.Context, _ time.Time) (int64, error) {
	return s.expired, nil
}

func TestListByToolHandler(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	stub := &stubSponsorshipRepo{byTool: map[string][]*entity.Sponsorship{
		"t1": {
			{ID: "s1", ToolID: "t1", PriorityWeight: 10, IsActive: true,
				StartDate: now, EndDate: now.AddDate(0, 1, 0), CreatedAt: now},
		},
	}}
	h := sponsorship.ListByToolHandler{Svc: &spUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodGet, "/tools/t1/sponsorships", nil)
	req.SetPathValue("id", "t1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var dtos []sponsorship.DTO
	if err := json.Unmarshal(rr.Body.Bytes(), &dtos); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(dtos) != 1 || dtos[0].PriorityWeight != 10 {
		t.Errorf("dtos = %+v", dtos)
	}
}

func TestCreateHandler(t *testing.T) {
	stub := &stubSponsorshipRepo{}
	h := sponsorship.CreateHandler{Svc: &spUC.Service{Repo: stub}}

	body := `{
		"priorityWeight": 5,
		"startDate": "2026-08-01T00:00:00Z",
		"endDate": "2026-09-01T00:00:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/tools/t1/sponsorships", strings.NewReader(body))
	req.SetPathValue("id", "t1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rr.Code, rr.Body.String())
	}
	if stub.created == nil || stub.created.ToolID != "t1" {
		t.Fatalf("created = %+v, want tool t1", stub.created)
	}
	if !stub.created.IsActive {
		t.Error("new sponsorship should start active")
	}
}

func TestCreateHandler_InvalidWindow(t *testing.T) {
	h := sponsorship.CreateHandler{Svc: &spUC.Service{Repo: &stubSponsorshipRepo{}}}

	// endDate before startDate
	body := `{
		"startDate": "2026-09-01T00:00:00Z",
		"endDate": "2026-08-01T00:00:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/tools/t1/sponsorships", strings.NewReader(body))
	req.SetPathValue("id", "t1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestSweepHandler(t *testing.T) {
	stub := &stubSponsorshipRepo{expired: 4}
	h := sponsorship.SweepHandler{Svc: &spUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodPost, "/admin/sponsorships/sweep", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}
	var resp map[string]int64
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["deactivated"] != 4 {
		t.Errorf("deactivated = %d, want 4", resp["deactivated"])
	}
}

func TestGetHandler_NotFound(t *testing.T) {
	h := sponsorship.GetHandler{Svc: &spUC.Service{Repo: &stubSponsorshipRepo{}}}

	req := httptest.NewRequest(http.MethodGet, "/sponsorships/missing", nil)
	req.SetPathValue("id", "missing")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}
