package ports

import (
	"context"

	"github.com/healthhub/gym-admin/internal/core/domain"
)

// CreateGymInput carries the validated fields of the create-gym form.
type CreateGymInput struct {
	Name       string
	Address    string
	Phone      string
	Email      string
	AdminEmail string
	Location   domain.Location
	Amenities  []string
}

// GymService covers gym registration and listing.
type GymService interface {
	Create(ctx context.Context, input CreateGymInput) (*domain.Gym, error)
	List(ctx context.Context) ([]domain.Gym, domain.GymStats, error)
}
