package domain

import "time"

// Role is the closed set of actor roles on the platform. Role checks are
// pure set membership: no role implies another.
type Role string

const (
	RoleUser       Role = "user"
	RoleConsultant Role = "consultant"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// ParseRole converts a raw string to a Role, rejecting anything outside
// the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleConsultant, RoleAdmin, RoleSuperadmin:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

// RoleSet is an allowed-role collection used for route authorization.
type RoleSet map[Role]struct{}

// NewRoleSet builds a RoleSet from the given roles.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Contains reports whether role is a member of the set. An empty set
// grants nothing; "no requirement" is expressed by a nil set at the
// call site and must be checked there.
func (s RoleSet) Contains(role Role) bool {
	_, ok := s[role]
	return ok
}

// MemberStatus is the moderation state of a platform account.
type MemberStatus string

const (
	StatusActive  MemberStatus = "active"
	StatusPending MemberStatus = "pending"
	StatusBanned  MemberStatus = "banned"
)

// Availability is a consultant's current booking state.
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityBusy        Availability = "busy"
	AvailabilityUnavailable Availability = "unavailable"
)

// GymRef is a denormalized pointer to the gym an account belongs to.
type GymRef struct {
	ID   string `json:"_id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// User models a platform account: end users, consultants, and the admin
// roles that operate the dashboard. Consultant-specific fields are zero
// for other roles.
type User struct {
	ID           string       `json:"_id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone,omitempty"`
	PasswordHash string       `json:"-"`
	Role         Role         `json:"role"`
	Status       MemberStatus `json:"status,omitempty"`
	Gym          *GymRef      `json:"gym,omitempty"`

	// Consultant profile.
	Specialization string       `json:"specialization,omitempty"`
	Experience     int          `json:"experience,omitempty"`
	Availability   Availability `json:"availability,omitempty"`

	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	LastActive *time.Time `json:"lastActive,omitempty"`
}
