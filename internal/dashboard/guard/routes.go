package guard

import "github.com/healthhub/gym-admin/internal/core/domain"

// Route pairs a dashboard page with the roles allowed to enter it.
type Route struct {
	Title        string
	Path         string
	AllowedRoles domain.RoleSet
}

// Routes is the authoritative page table. Platform overview is reserved
// for superadmins; the management pages also admit gym admins.
var Routes = []Route{
	{
		Title:        "Platform Overview",
		Path:         "/dashboard",
		AllowedRoles: domain.NewRoleSet(domain.RoleSuperadmin),
	},
	{
		Title:        "Create Gym",
		Path:         "/gyms/create",
		AllowedRoles: domain.NewRoleSet(domain.RoleSuperadmin, domain.RoleAdmin),
	},
	{
		Title:        "All Gyms",
		Path:         "/gyms/all",
		AllowedRoles: domain.NewRoleSet(domain.RoleSuperadmin, domain.RoleAdmin),
	},
	{
		Title:        "All Users",
		Path:         "/users/all",
		AllowedRoles: domain.NewRoleSet(domain.RoleSuperadmin, domain.RoleAdmin),
	},
	{
		Title:        "All Consultants",
		Path:         "/consultants/all",
		AllowedRoles: domain.NewRoleSet(domain.RoleSuperadmin, domain.RoleAdmin),
	},
}

// Lookup finds the route registered at path.
func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
