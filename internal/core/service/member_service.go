package service

import (
	"context"

	"github.com/healthhub/gym-admin/internal/core/domain"
	"github.com/healthhub/gym-admin/internal/core/ports"
)

// MemberService implements the read-only listing views: all users, all
// consultants, and the platform overview counters.
type MemberService struct {
	members ports.MemberRepository
	gyms    ports.GymRepository
}

func NewMemberService(members ports.MemberRepository, gyms ports.GymRepository) *MemberService {
	return &MemberService{members: members, gyms: gyms}
}

// ListUsers returns one page of non-consultant accounts plus the header
// aggregates.
func (s *MemberService) ListUsers(ctx context.Context, page domain.Page) ([]domain.User, domain.Pagination, domain.MemberStats, error) {
	page = page.Normalize()

	roles := []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleSuperadmin}
	users, total, err := s.members.ListByRoles(ctx, roles, page)
	if err != nil {
		return nil, domain.Pagination{}, domain.MemberStats{}, err
	}

	stats := domain.MemberStats{TotalUsers: total}
	if stats.ActiveUsers, err = s.members.CountByRoleStatus(ctx, domain.RoleUser, domain.StatusActive); err != nil {
		return nil, domain.Pagination{}, domain.MemberStats{}, err
	}
	if stats.PendingApproval, err = s.members.CountByRoleStatus(ctx, domain.RoleUser, domain.StatusPending); err != nil {
		return nil, domain.Pagination{}, domain.MemberStats{}, err
	}
	if stats.BannedUsers, err = s.members.CountByRoleStatus(ctx, domain.RoleUser, domain.StatusBanned); err != nil {
		return nil, domain.Pagination{}, domain.MemberStats{}, err
	}
	if stats.GymAdmins, err = s.members.CountByRole(ctx, domain.RoleAdmin); err != nil {
		return nil, domain.Pagination{}, domain.MemberStats{}, err
	}

	return users, domain.NewPagination(total, page), stats, nil
}

// ListConsultants returns one page of consultant accounts plus the
// header aggregates.
func (s *MemberService) ListConsultants(ctx context.Context, page domain.Page) ([]domain.User, domain.Pagination, domain.ConsultantStats, error) {
	page = page.Normalize()

	consultants, total, err := s.members.ListByRoles(ctx, []domain.Role{domain.RoleConsultant}, page)
	if err != nil {
		return nil, domain.Pagination{}, domain.ConsultantStats{}, err
	}

	stats := domain.ConsultantStats{TotalConsultants: total}
	if stats.ActiveConsultants, err = s.members.CountByRoleStatus(ctx, domain.RoleConsultant, domain.StatusActive); err != nil {
		return nil, domain.Pagination{}, domain.ConsultantStats{}, err
	}
	if stats.PendingApproval, err = s.members.CountByRoleStatus(ctx, domain.RoleConsultant, domain.StatusPending); err != nil {
		return nil, domain.Pagination{}, domain.ConsultantStats{}, err
	}
	if stats.BannedConsultants, err = s.members.CountByRoleStatus(ctx, domain.RoleConsultant, domain.StatusBanned); err != nil {
		return nil, domain.Pagination{}, domain.ConsultantStats{}, err
	}
	if stats.AvailableConsultants, err = s.members.CountAvailableConsultants(ctx); err != nil {
		return nil, domain.Pagination{}, domain.ConsultantStats{}, err
	}

	return consultants, domain.NewPagination(total, page), stats, nil
}

// PlatformMetrics returns the overview counters for the superadmin
// dashboard page.
func (s *MemberService) PlatformMetrics(ctx context.Context) (*domain.PlatformMetrics, error) {
	metrics := &domain.PlatformMetrics{}

	var err error
	if metrics.TotalGyms, err = s.gyms.Count(ctx); err != nil {
		return nil, err
	}
	if metrics.TotalUsers, err = s.members.CountByRole(ctx, domain.RoleUser); err != nil {
		return nil, err
	}
	if metrics.TotalConsultants, err = s.members.CountByRole(ctx, domain.RoleConsultant); err != nil {
		return nil, err
	}

	gyms, err := s.gyms.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, g := range gyms {
		metrics.MonthlyRevenue += g.Price
	}

	return metrics, nil
}
