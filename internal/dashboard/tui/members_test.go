package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/healthhub/gym-admin/internal/core/domain"
	"github.com/healthhub/gym-admin/internal/dashboard/apiclient"
)

func member(name, email string, role domain.Role) domain.User {
	return domain.User{
		ID:     "id-" + name,
		Name:   name,
		Email:  email,
		Role:   role,
		Status: domain.StatusActive,
	}
}

func TestUsersViewShowsStatsAndRows(t *testing.T) {
	m := newUsersModel(nil)
	m, _ = m.Update(usersLoadedMsg{list: &apiclient.UserList{
		Success: true,
		Data: []domain.User{
			member("Ana Reyes", "ana@healthhub.io", domain.RoleUser),
			member("Luis Vega", "luis@healthhub.io", domain.RoleAdmin),
		},
		Pagination: domain.Pagination{Total: 2, Page: 1, Limit: 10, TotalPages: 1},
		Stats:      domain.MemberStats{TotalUsers: 2, ActiveUsers: 2, GymAdmins: 1},
	}})

	view := m.View()
	for _, want := range []string{"Ana Reyes", "luis@healthhub.io", "active", "page 1 of 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestUsersNextPageOnlyWhenAvailable(t *testing.T) {
	m := newUsersModel(nil)
	m, _ = m.Update(usersLoadedMsg{list: &apiclient.UserList{
		Pagination: domain.Pagination{Total: 25, Page: 1, TotalPages: 3, HasNextPage: true},
	}})

	m, cmd := m.Update(keyPress("n"))
	if m.page != 2 || cmd == nil {
		t.Fatalf("page = %d, cmd nil = %v; want page 2 with a reload", m.page, cmd == nil)
	}

	// Last page: n must be inert.
	m, _ = m.Update(usersLoadedMsg{list: &apiclient.UserList{
		Pagination: domain.Pagination{Total: 25, Page: 3, TotalPages: 3, HasPrevPage: true},
	}})
	m, cmd = m.Update(keyPress("n"))
	if cmd != nil {
		t.Fatal("next on the last page must not reload")
	}
}

func TestUsersViewShowsError(t *testing.T) {
	m := newUsersModel(nil)
	m, _ = m.Update(usersLoadedMsg{err: errors.New("connection refused")})
	if !strings.Contains(m.View(), "connection refused") {
		t.Errorf("expected error in view, got:\n%s", m.View())
	}
}

func TestConsultantsViewShowsSpecialization(t *testing.T) {
	c := member("Mia Chen", "mia@healthhub.io", domain.RoleConsultant)
	c.Specialization = "Nutrition"
	m := newConsultantsModel(nil)
	m, _ = m.Update(consultantsLoadedMsg{list: &apiclient.ConsultantList{
		Success:    true,
		Data:       []domain.User{c},
		Pagination: domain.Pagination{Total: 1, Page: 1, TotalPages: 1},
		Stats:      domain.ConsultantStats{TotalConsultants: 1, ActiveConsultants: 1, AvailableConsultants: 1},
	}})

	view := m.View()
	if !strings.Contains(view, "Nutrition") {
		t.Errorf("expected specialization column, got:\n%s", view)
	}
	if !strings.Contains(view, "Mia Chen") {
		t.Errorf("expected consultant name, got:\n%s", view)
	}
}

func TestGymsViewListsGyms(t *testing.T) {
	m := newGymsModel(nil)
	m, _ = m.Update(gymsLoadedMsg{list: &apiclient.GymList{
		Success: true,
		Data: []domain.Gym{{
			GymID:    "GYM-1001",
			Name:     "Iron Temple",
			Location: domain.Location{City: "Austin", State: "TX"},
			Price:    49.99,
		}},
		Stats: domain.GymStats{TotalGyms: 1, ActiveGyms: 1, MonthlyRevenue: 49.99},
	}})

	view := m.View()
	for _, want := range []string{"GYM-1001", "Iron Temple", "Austin", "$49.99"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestGymsViewEmptyState(t *testing.T) {
	m := newGymsModel(nil)
	m, _ = m.Update(gymsLoadedMsg{list: &apiclient.GymList{Success: true}})
	if !strings.Contains(m.View(), "no gyms") {
		t.Errorf("expected empty state, got:\n%s", m.View())
	}
}

func TestCreateGymRequiresAllFields(t *testing.T) {
	m := newCreateGymModel(nil)
	m.focus = fieldCount - 1
	m, cmd := m.Update(keyPress("enter"))
	if cmd != nil || m.busy {
		t.Fatal("incomplete form must not submit")
	}
	if !strings.Contains(m.View(), "required") {
		t.Errorf("expected validation message, got:\n%s", m.View())
	}
}

func TestCreateGymBuildsRequest(t *testing.T) {
	m := newCreateGymModel(nil)
	m.fields[fieldName] = "Iron Temple"
	m.fields[fieldAddress] = "1 Main St"
	m.fields[fieldPhone] = "5550001111"
	m.fields[fieldEmail] = "iron@healthhub.io"
	m.fields[fieldAdminEmail] = "admin@healthhub.io"
	m.fields[fieldCity] = "Austin"
	m.fields[fieldState] = "TX"
	m.fields[fieldAmenities] = "pool, sauna,weights"

	req := m.request()
	if req.Location.City != "Austin" || req.Location.State != "TX" {
		t.Fatalf("location = %+v", req.Location)
	}
	if len(req.Amenities) != 3 || req.Amenities[1] != "sauna" {
		t.Fatalf("amenities = %v", req.Amenities)
	}

	m.focus = fieldCount - 1
	m, cmd := m.Update(keyPress("enter"))
	if !m.busy || cmd == nil {
		t.Fatal("complete form must submit")
	}
}
