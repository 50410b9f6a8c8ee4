package ports

import (
	"context"

	"github.com/healthhub/gym-admin/internal/core/domain"
)

// GymRepository defines the interface for gym persistence.
type GymRepository interface {
	Create(ctx context.Context, gym *domain.Gym) (*domain.Gym, error)
	List(ctx context.Context) ([]domain.Gym, error)
	Count(ctx context.Context) (int, error)
}
