package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/healthhub/gym-admin/internal/core/domain"
	"github.com/healthhub/gym-admin/internal/core/ports"
)

type stubGymRepo struct {
	gyms []domain.Gym
}

func (r *stubGymRepo) Create(_ context.Context, gym *domain.Gym) (*domain.Gym, error) {
	for _, g := range r.gyms {
		if g.Email == gym.Email {
			return nil, domain.ErrGymExists
		}
	}
	created := *gym
	created.ID = "gym-" + strconv.Itoa(len(r.gyms)+1)
	r.gyms = append(r.gyms, created)
	return &created, nil
}

func (r *stubGymRepo) List(_ context.Context) ([]domain.Gym, error) {
	out := make([]domain.Gym, len(r.gyms))
	copy(out, r.gyms)
	return out, nil
}

func (r *stubGymRepo) Count(_ context.Context) (int, error) {
	return len(r.gyms), nil
}

func gymInput(adminEmail string) ports.CreateGymInput {
	return ports.CreateGymInput{
		Name:       "Iron Temple",
		Address:    "1 Lifting Way, Springfield",
		Phone:      "5551234",
		Email:      "iron@example.com",
		AdminEmail: adminEmail,
		Location:   domain.Location{City: "Springfield", State: "IL"},
		Amenities:  []string{"weights", "sauna"},
	}
}

func TestGymService_Create_LinksAdmin(t *testing.T) {
	users := newStubAuthRepo()
	admin := seedAdmin(t, users, "admin@example.com", "pass")
	svc := NewGymService(&stubGymRepo{}, users)

	gym, err := svc.Create(context.Background(), gymInput("admin@example.com"))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if gym.Admin.ID != admin.ID || gym.Admin.Email != admin.Email {
		t.Fatalf("gym not linked to admin: %+v", gym.Admin)
	}
	if gym.GymID == "" {
		t.Fatalf("expected generated gym id")
	}
}

func TestGymService_Create_UnknownAdmin(t *testing.T) {
	svc := NewGymService(&stubGymRepo{}, newStubAuthRepo())

	if _, err := svc.Create(context.Background(), gymInput("nobody@example.com")); err != domain.ErrAdminNotFound {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}
}

func TestGymService_Create_NonAdminAccount(t *testing.T) {
	users := newStubAuthRepo()
	if _, err := users.Create(context.Background(), &domain.User{
		Name: "Plain User", Email: "user@example.com", Role: domain.RoleUser,
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	svc := NewGymService(&stubGymRepo{}, users)

	if _, err := svc.Create(context.Background(), gymInput("user@example.com")); err != domain.ErrAdminNotFound {
		t.Fatalf("expected ErrAdminNotFound for non-admin account, got %v", err)
	}
}

func TestGymService_List_Stats(t *testing.T) {
	users := newStubAuthRepo()
	seedAdmin(t, users, "admin@example.com", "pass")
	repo := &stubGymRepo{}
	svc := NewGymService(repo, users)

	first := gymInput("admin@example.com")
	first.Amenities = []string{"weights"}
	if _, err := svc.Create(context.Background(), first); err != nil {
		t.Fatalf("create first gym: %v", err)
	}
	repo.gyms[0].Price = 50

	second := gymInput("admin@example.com")
	second.Email = "steel@example.com"
	second.Name = "Steel Works"
	if _, err := svc.Create(context.Background(), second); err != nil {
		t.Fatalf("create second gym: %v", err)
	}
	repo.gyms[1].Price = 30

	gyms, stats, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(gyms) != 2 {
		t.Fatalf("expected 2 gyms, got %d", len(gyms))
	}
	if stats.TotalGyms != 2 || stats.ActiveGyms != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.MonthlyRevenue != 80 {
		t.Fatalf("expected revenue 80, got %.2f", stats.MonthlyRevenue)
	}
}
