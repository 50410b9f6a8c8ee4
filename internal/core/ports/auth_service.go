package ports

import (
	"context"

	"github.com/healthhub/gym-admin/internal/core/domain"
)

// AuthService covers login, admin registration, and bearer-token
// identity resolution.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	RegisterAdmin(ctx context.Context, name, email, phone, password string) (*domain.User, error)
	ResolveIdentity(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string) error
}

// TokenRevoker records tokens that must no longer authenticate and
// answers revocation checks.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttlSeconds int64) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
