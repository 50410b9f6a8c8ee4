package ports

import (
	"context"

	"github.com/healthhub/gym-admin/internal/core/domain"
)

// MemberService covers the read-only listing views of the dashboard.
type MemberService interface {
	ListUsers(ctx context.Context, page domain.Page) ([]domain.User, domain.Pagination, domain.MemberStats, error)
	ListConsultants(ctx context.Context, page domain.Page) ([]domain.User, domain.Pagination, domain.ConsultantStats, error)
	PlatformMetrics(ctx context.Context) (*domain.PlatformMetrics, error)
}
