package service

import (
	"context"
	"fmt"
	"time"

	"github.com/healthhub/gym-admin/internal/core/domain"
	"github.com/healthhub/gym-admin/internal/core/ports"
)

// GymService implements gym registration and the gym listing view.
type GymService struct {
	gyms  ports.GymRepository
	users ports.AuthRepository
}

func NewGymService(gyms ports.GymRepository, users ports.AuthRepository) *GymService {
	return &GymService{gyms: gyms, users: users}
}

// Create registers a gym and links it to an existing admin account by
// email. The admin must already exist and hold the admin role.
func (s *GymService) Create(ctx context.Context, input ports.CreateGymInput) (*domain.Gym, error) {
	admin, err := s.users.FindByEmail(ctx, input.AdminEmail)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}
	if admin.Role != domain.RoleAdmin && admin.Role != domain.RoleSuperadmin {
		return nil, domain.ErrAdminNotFound
	}

	now := time.Now().UTC()
	gym := &domain.Gym{
		GymID:     fmt.Sprintf("GYM-%d", now.UnixNano()),
		Name:      input.Name,
		Address:   input.Address,
		Phone:     input.Phone,
		Email:     input.Email,
		Location:  input.Location,
		Amenities: input.Amenities,
		Admin: domain.AdminRef{
			ID:    admin.ID,
			Name:  admin.Name,
			Email: admin.Email,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.gyms.Create(ctx, gym)
}

// List returns all gyms together with the header aggregates. Revenue is
// the sum of listed membership prices; approval state is not tracked on
// gyms yet, so pending is always zero.
func (s *GymService) List(ctx context.Context) ([]domain.Gym, domain.GymStats, error) {
	gyms, err := s.gyms.List(ctx)
	if err != nil {
		return nil, domain.GymStats{}, err
	}

	stats := domain.GymStats{
		TotalGyms:  len(gyms),
		ActiveGyms: len(gyms),
	}
	for _, g := range gyms {
		stats.MonthlyRevenue += g.Price
	}

	return gyms, stats, nil
}
