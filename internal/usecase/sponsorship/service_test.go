package sponsorship_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tooldex/internal/domain/entity"
	spUC "tooldex/internal/usecase/sponsorship"
)

// in-memory SponsorshipRepository stub
type stubRepo struct {
	data    map[string]*entity.Sponsorship
	swept   int64
	sweepAt time.Time
	err     error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[string]*entity.Sponsorship{}}
}

func (s *stubRepo) Get(_ context.Context, id string) (*entity.Sponsorship, error) {
	if s.err != nil {
		return nil, s.err
	}
	sp, ok := s.data[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return sp, nil
}

func (s *stubRepo) ListByTool(_ context.Context, toolID string) ([]*entity.Sponsorship, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Sponsorship
	for _, sp := range s.data {
		if sp.ToolID == toolID {
			out = append(out, sp)
		}
	}
	return out, nil
}

func (s *stubRepo) Create(_ context.Context, sp *entity.Sponsorship) error {
	if s.err != nil {
		return s.err
	}
	s.data[sp.ID] = sp
	return nil
}

func (s *stubRepo) Update(_ context.Context, sp *entity.Sponsorship) error {
	if s.err != nil {
		return s.err
	}
	s.data[sp.ID] = sp
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.data, id)
	return nil
}

func (s *stubRepo) DeactivateExpired(_ context.Context, now time.Time) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.sweepAt = now
	return s.swept, nil
}

func TestService_Create_windowValidation(t *testing.T) {
	svc := spUC.Service{Repo: newStub()}
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      spUC.CreateInput
		wantErr bool
	}{
		{
			name: "valid window",
			in:   spUC.CreateInput{ToolID: "t-1", PriorityWeight: 5, StartDate: start, EndDate: start.AddDate(0, 1, 0)},
		},
		{
			name:    "end before start",
			in:      spUC.CreateInput{ToolID: "t-1", StartDate: start, EndDate: start.AddDate(0, -1, 0)},
			wantErr: true,
		},
		{
			name:    "zero-length window",
			in:      spUC.CreateInput{ToolID: "t-1", StartDate: start, EndDate: start},
			wantErr: true,
		},
		{
			name:    "negative priority",
			in:      spUC.CreateInput{ToolID: "t-1", PriorityWeight: -1, StartDate: start, EndDate: start.AddDate(0, 1, 0)},
			wantErr: true,
		},
		{
			name:    "missing tool",
			in:      spUC.CreateInput{StartDate: start, EndDate: start.AddDate(0, 1, 0)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp, err := svc.Create(context.Background(), tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("want validation error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Create err=%v", err)
			}
			if !sp.IsActive {
				t.Error("new sponsorship should start active")
			}
		})
	}
}

func TestService_SweepExpired(t *testing.T) {
	stub := newStub()
	stub.swept = 3
	svc := spUC.Service{Repo: stub}

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	n, err := svc.SweepExpired(context.Background(), now)
	if err != nil {
		t.Fatalf("SweepExpired err=%v", err)
	}
	if n != 3 {
		t.Errorf("swept = %d, want 3", n)
	}
	if !stub.sweepAt.Equal(now) {
		t.Errorf("sweep time = %v, want %v", stub.sweepAt, now)
	}
}

func TestService_SweepExpired_propagatesError(t *testing.T) {
	stub := newStub()
	stub.err = errors.New("connection reset")
	svc := spUC.Service{Repo: stub}

	if _, err := svc.SweepExpired(context.Background(), time.Now()); !errors.Is(err, stub.err) {
		t.Fatalf("err = %v, want wrapped repo error", err)
	}
}

func TestService_Update_partial(t *testing.T) {
	stub := newStub()
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	stub.data["s-1"] = &entity.Sponsorship{
		ID: "s-1", ToolID: "t-1", PriorityWeight: 5, IsActive: true,
		StartDate: start, EndDate: start.AddDate(0, 1, 0),
	}
	svc := spUC.Service{Repo: stub}

	weight := 9
	sp, err := svc.Update(context.Background(), spUC.UpdateInput{ID: "s-1", PriorityWeight: &weight})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if sp.PriorityWeight != 9 || !sp.IsActive {
		t.Errorf("updated = %+v", sp)
	}
}
