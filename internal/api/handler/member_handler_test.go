package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/healthhub/gym-admin/internal/core/domain"
)

type stubMemberService struct {
	listUsersFn       func(ctx context.Context, page domain.Page) ([]domain.User, domain.Pagination, domain.MemberStats, error)
	listConsultantsFn func(ctx context.Context, page domain.Page) ([]domain.User, domain.Pagination, domain.ConsultantStats, error)
	metricsFn         func(ctx context.Context) (*domain.PlatformMetrics, error)
}

func (s *stubMemberService) ListUsers(ctx context.Context, page domain.Page) ([]domain.User, domain.Pagination, domain.MemberStats, error) {
	return s.listUsersFn(ctx, page)
}

func (s *stubMemberService) ListConsultants(ctx context.Context, page domain.Page) ([]domain.User, domain.Pagination, domain.ConsultantStats, error) {
	return s.listConsultantsFn(ctx, page)
}

func (s *stubMemberService) PlatformMetrics(ctx context.Context) (*domain.PlatformMetrics, error) {
	return s.metricsFn(ctx)
}

func TestMemberHandler_ListUsers_PassesPageQuery(t *testing.T) {
	e := newTestEcho()
	stub := &stubMemberService{
		listUsersFn: func(ctx context.Context, page domain.Page) ([]domain.User, domain.Pagination, domain.MemberStats, error) {
			if page.Number != 2 || page.Limit != 5 {
				t.Fatalf("unexpected page: %+v", page)
			}
			return []domain.User{{ID: "u1", Role: domain.RoleUser}},
				domain.Pagination{Total: 6, Page: 2, Limit: 5, TotalPages: 2, HasPrevPage: true},
				domain.MemberStats{TotalUsers: 6},
				nil
		},
	}
	handler := NewMemberHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users?page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success    bool               `json:"success"`
		Data       []domain.User      `json:"data"`
		Pagination domain.Pagination  `json:"pagination"`
		Stats      domain.MemberStats `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Pagination.Total != 6 || resp.Stats.TotalUsers != 6 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestMemberHandler_ListConsultants(t *testing.T) {
	e := newTestEcho()
	stub := &stubMemberService{
		listConsultantsFn: func(ctx context.Context, page domain.Page) ([]domain.User, domain.Pagination, domain.ConsultantStats, error) {
			return []domain.User{{ID: "c1", Role: domain.RoleConsultant, Specialization: "strength"}},
				domain.Pagination{Total: 1, Page: 1, Limit: 20, TotalPages: 1},
				domain.ConsultantStats{TotalConsultants: 1, AvailableConsultants: 1},
				nil
		},
	}
	handler := NewMemberHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/consultants", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListConsultants(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Stats domain.ConsultantStats `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Stats.AvailableConsultants != 1 {
		t.Fatalf("unexpected stats: %+v", resp.Stats)
	}
}

func TestMemberHandler_PlatformMetrics(t *testing.T) {
	e := newTestEcho()
	stub := &stubMemberService{
		metricsFn: func(ctx context.Context) (*domain.PlatformMetrics, error) {
			return &domain.PlatformMetrics{TotalGyms: 3, TotalUsers: 40, TotalConsultants: 5, MonthlyRevenue: 150}, nil
		},
	}
	handler := NewMemberHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/metrics", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.PlatformMetrics(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool                   `json:"success"`
		Metrics domain.PlatformMetrics `json:"metrics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Metrics.TotalGyms != 3 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
