package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/healthhub/gym-admin/internal/core/domain"
)

type stubMemberRepo struct {
	members []domain.User
}

func (r *stubMemberRepo) matching(roles []domain.Role) []domain.User {
	var out []domain.User
	for _, m := range r.members {
		for _, role := range roles {
			if m.Role == role {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

func (r *stubMemberRepo) ListByRoles(_ context.Context, roles []domain.Role, page domain.Page) ([]domain.User, int, error) {
	all := r.matching(roles)
	start := page.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + page.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], len(all), nil
}

func (r *stubMemberRepo) CountByRole(_ context.Context, role domain.Role) (int, error) {
	return len(r.matching([]domain.Role{role})), nil
}

func (r *stubMemberRepo) CountByRoleStatus(_ context.Context, role domain.Role, status domain.MemberStatus) (int, error) {
	n := 0
	for _, m := range r.matching([]domain.Role{role}) {
		if m.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *stubMemberRepo) CountAvailableConsultants(_ context.Context) (int, error) {
	n := 0
	for _, m := range r.matching([]domain.Role{domain.RoleConsultant}) {
		if m.Availability == domain.AvailabilityAvailable {
			n++
		}
	}
	return n, nil
}

func seedMembers(repo *stubMemberRepo) {
	for i := 0; i < 25; i++ {
		repo.members = append(repo.members, domain.User{
			ID:     "u-" + strconv.Itoa(i),
			Name:   "User " + strconv.Itoa(i),
			Role:   domain.RoleUser,
			Status: domain.StatusActive,
		})
	}
	repo.members = append(repo.members,
		domain.User{ID: "u-pending", Role: domain.RoleUser, Status: domain.StatusPending},
		domain.User{ID: "u-banned", Role: domain.RoleUser, Status: domain.StatusBanned},
		domain.User{ID: "a-1", Role: domain.RoleAdmin, Status: domain.StatusActive},
		domain.User{ID: "c-1", Role: domain.RoleConsultant, Status: domain.StatusActive, Availability: domain.AvailabilityAvailable},
		domain.User{ID: "c-2", Role: domain.RoleConsultant, Status: domain.StatusActive, Availability: domain.AvailabilityBusy},
		domain.User{ID: "c-3", Role: domain.RoleConsultant, Status: domain.StatusPending, Availability: domain.AvailabilityUnavailable},
	)
}

func TestMemberService_ListUsers_PaginationAndStats(t *testing.T) {
	repo := &stubMemberRepo{}
	seedMembers(repo)
	svc := NewMemberService(repo, &stubGymRepo{})

	users, pagination, stats, err := svc.ListUsers(context.Background(), domain.Page{Number: 1, Limit: 10})
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(users) != 10 {
		t.Fatalf("expected 10 users on page, got %d", len(users))
	}
	// 25 active + pending + banned users, plus 1 admin; consultants excluded.
	if pagination.Total != 28 {
		t.Fatalf("expected total 28, got %d", pagination.Total)
	}
	if pagination.TotalPages != 3 || !pagination.HasNextPage || pagination.HasPrevPage {
		t.Fatalf("unexpected pagination: %+v", pagination)
	}
	if stats.ActiveUsers != 25 || stats.PendingApproval != 1 || stats.BannedUsers != 1 || stats.GymAdmins != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestMemberService_ListUsers_LastPage(t *testing.T) {
	repo := &stubMemberRepo{}
	seedMembers(repo)
	svc := NewMemberService(repo, &stubGymRepo{})

	users, pagination, _, err := svc.ListUsers(context.Background(), domain.Page{Number: 3, Limit: 10})
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(users) != 8 {
		t.Fatalf("expected 8 users on last page, got %d", len(users))
	}
	if pagination.HasNextPage || !pagination.HasPrevPage {
		t.Fatalf("unexpected pagination: %+v", pagination)
	}
}

func TestMemberService_ListUsers_NormalizesPage(t *testing.T) {
	repo := &stubMemberRepo{}
	seedMembers(repo)
	svc := NewMemberService(repo, &stubGymRepo{})

	_, pagination, _, err := svc.ListUsers(context.Background(), domain.Page{Number: -2, Limit: 0})
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if pagination.Page != 1 || pagination.Limit != 20 {
		t.Fatalf("expected defaults page=1 limit=20, got %+v", pagination)
	}
}

func TestMemberService_ListConsultants(t *testing.T) {
	repo := &stubMemberRepo{}
	seedMembers(repo)
	svc := NewMemberService(repo, &stubGymRepo{})

	consultants, pagination, stats, err := svc.ListConsultants(context.Background(), domain.Page{Number: 1, Limit: 20})
	if err != nil {
		t.Fatalf("ListConsultants returned error: %v", err)
	}
	if len(consultants) != 3 || pagination.Total != 3 {
		t.Fatalf("expected 3 consultants, got %d (total %d)", len(consultants), pagination.Total)
	}
	if stats.ActiveConsultants != 2 || stats.AvailableConsultants != 1 || stats.PendingApproval != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestMemberService_PlatformMetrics(t *testing.T) {
	members := &stubMemberRepo{}
	seedMembers(members)
	gyms := &stubGymRepo{gyms: []domain.Gym{
		{ID: "gym-1", Price: 45},
		{ID: "gym-2", Price: 55},
	}}
	svc := NewMemberService(members, gyms)

	metrics, err := svc.PlatformMetrics(context.Background())
	if err != nil {
		t.Fatalf("PlatformMetrics returned error: %v", err)
	}
	if metrics.TotalGyms != 2 {
		t.Fatalf("expected 2 gyms, got %d", metrics.TotalGyms)
	}
	if metrics.TotalUsers != 27 {
		t.Fatalf("expected 27 users, got %d", metrics.TotalUsers)
	}
	if metrics.TotalConsultants != 3 {
		t.Fatalf("expected 3 consultants, got %d", metrics.TotalConsultants)
	}
	if metrics.MonthlyRevenue != 100 {
		t.Fatalf("expected revenue 100, got %.2f", metrics.MonthlyRevenue)
	}
}
