package domain

import "time"

// Location pins a gym to a city and state for filtering and display.
type Location struct {
	City  string `json:"city" bson:"city"`
	State string `json:"state" bson:"state"`
}

// AdminRef is a denormalized pointer to the account administering a gym.
type AdminRef struct {
	ID    string `json:"_id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Gym models a registered gym location.
type Gym struct {
	ID        string    `json:"_id"`
	GymID     string    `json:"gymId"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Location  Location  `json:"location"`
	Amenities []string  `json:"amenities"`
	Admin     AdminRef  `json:"admin"`
	Price     float64   `json:"price,omitempty"`
	Rating    float64   `json:"rating,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GymStats aggregates the figures shown on the gym listing header.
type GymStats struct {
	TotalGyms       int     `json:"totalGyms"`
	ActiveGyms      int     `json:"activeGyms"`
	PendingApproval int     `json:"pendingApproval"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
}

// MemberStats aggregates the figures shown on the user listing header.
type MemberStats struct {
	TotalUsers      int `json:"totalUsers"`
	ActiveUsers     int `json:"activeUsers"`
	PendingApproval int `json:"pendingApproval"`
	GymAdmins       int `json:"gymAdmins"`
	BannedUsers     int `json:"bannedUsers"`
}

// ConsultantStats aggregates the figures shown on the consultant listing
// header.
type ConsultantStats struct {
	TotalConsultants     int `json:"totalConsultants"`
	ActiveConsultants    int `json:"activeConsultants"`
	PendingApproval      int `json:"pendingApproval"`
	AvailableConsultants int `json:"availableConsultants"`
	BannedConsultants    int `json:"bannedConsultants"`
}

// PlatformMetrics feeds the superadmin overview page.
type PlatformMetrics struct {
	TotalGyms        int     `json:"totalGyms"`
	TotalUsers       int     `json:"totalUsers"`
	TotalConsultants int     `json:"totalConsultants"`
	MonthlyRevenue   float64 `json:"monthlyRevenue"`
}

// Page describes a requested slice of a listing.
type Page struct {
	Number int
	Limit  int
}

// Normalize clamps a page request to sane bounds.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Limit < 1 || p.Limit > 100 {
		p.Limit = 20
	}
	return p
}

// Offset is the number of records to skip for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Pagination is the envelope describing a returned listing slice.
type Pagination struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPagination derives the envelope for a total record count and page.
func NewPagination(total int, page Page) Pagination {
	pages := total / page.Limit
	if total%page.Limit != 0 {
		pages++
	}
	if pages == 0 {
		pages = 1
	}
	return Pagination{
		Total:       total,
		Page:        page.Number,
		Limit:       page.Limit,
		TotalPages:  pages,
		HasNextPage: page.Number < pages,
		HasPrevPage: page.Number > 1,
	}
}
