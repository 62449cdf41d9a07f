package tag_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tooldex/internal/common/pagination"
	"tooldex/internal/domain/entity"
	"tooldex/internal/handler/http/tag"
	tagUC "tooldex/internal/usecase/tag"
)

type stubTagRepo struct {
	page     pagination.Page[*entity.Tag]
	tags     map[string]*entity.Tag
	attached [][2]string
	detached [][2]string
}

func (s *stubTagRepo) ListPaginated(_ context.Context, _ pagination.Params) (pagination.Page[*entity.Tag], error) {
	return s.page, nil
}

func (s *stubTagRepo) Get(_ context.Context, id string) (*entity.Tag, error) {
	if tg, ok := s.tags[id]; ok {
		return tg, nil
	}
	return nil, entity.ErrNotFound
}

func (s *stubTagRepo) Create(_ context.Context, _ *entity.Tag) error { return nil }
func (s *stubTagRepo) Delete(_ context.Context, _ string) error      { return nil }

func (s *stubTagRepo) AttachToTool(_ context.Context, toolID, tagID string) error {
	s.attached = append(s.attached, [2]string{toolID, tagID})
	return nil
}

func (s *stubTagRepo) DetachFromTool(_ context.Context, toolID, tagID string) error {
	s.detached = append(s.detached, [2]string{toolID, tagID})
	return nil
}

func TestListHandler(t *testing.T) {
	stub := &stubTagRepo{
		page: pagination.Page[*entity.Tag]{
			Items: []*entity.Tag{{ID: "g1", Name: "CLI", Slug: "cli"}},
		},
	}
	h := tag.ListHandler{
		Svc:           &tagUC.Service{Repo: stub},
		PaginationCfg: pagination.DefaultConfig(),
		Logger:        slog.Default(),
	}

	req := httptest.NewRequest(http.MethodGet, "/tags", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var body pagination.Page[tag.DTO]
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Items) != 1 || body.Items[0].Slug != "cli" {
		t.Errorf("items = %+v", body.Items)
	}
}

func TestCreateHandler_BadSlug(t *testing.T) {
	h := tag.CreateHandler{Svc: &tagUC.Service{Repo: &stubTagRepo{}}}

	req := httptest.NewRequest(http.MethodPost, "/tags",
		strings.NewReader(`{"name":"CLI","slug":"Not Valid"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestAttachHandler(t *testing.T) {
	stub := &stubTagRepo{}
	h := tag.AttachHandler{Svc: &tagUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodPost, "/tools/t1/tags/g1", nil)
	req.SetPathValue("id", "t1")
	req.SetPathValue("tagId", "g1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rr.Code)
	}
	if len(stub.attached) != 1 || stub.attached[0] != [2]string{"t1", "g1"} {
		t.Errorf("attached = %v", stub.attached)
	}
}

func TestAttachHandler_MissingTagID(t *testing.T) {
	h := tag.AttachHandler{Svc: &tagUC.Service{Repo: &stubTagRepo{}}}

	req := httptest.NewRequest(http.MethodPost, "/tools/t1/tags/", nil)
	req.SetPathValue("id", "t1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestDetachHandler(t *testing.T) {
	stub := &stubTagRepo{}
	h := tag.DetachHandler{Svc: &tagUC.Service{Repo: stub}}

	req := httptest.NewRequest(http.MethodDelete, "/tools/t1/tags/g1", nil)
	req.SetPathValue("id", "t1")
	req.SetPathValue("tagId", "g1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rr.Code)
	}
	if len(stub.detached) != 1 {
		t.Errorf("detached = %v", stub.detached)
	}
}
