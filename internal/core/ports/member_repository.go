package ports

import (
	"context"

	"github.com/healthhub/gym-admin/internal/core/domain"
)

// MemberRepository defines the interface for listing platform accounts
// by role.
type MemberRepository interface {
	ListByRoles(ctx context.Context, roles []domain.Role, page domain.Page) ([]domain.User, int, error)
	CountByRole(ctx context.Context, role domain.Role) (int, error)
	CountByRoleStatus(ctx context.Context, role domain.Role, status domain.MemberStatus) (int, error)
	CountAvailableConsultants(ctx context.Context) (int, error)
}
