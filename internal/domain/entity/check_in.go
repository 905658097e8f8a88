package entity

import "time"

type CheckInStatus string

const (
	CheckInStatusPending   CheckInStatus = "pending"
	CheckInStatusCompleted CheckInStatus = "completed"
	CheckInStatusIgnored   CheckInStatus = "ignored"
)

// CheckInLocation is where the child was when completing a check-in.
type CheckInLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	PlaceName string  `json:"placeName,omitempty"`
}

// CheckInRequest asks the child to confirm where they are.
type CheckInRequest struct {
	ID          string           `json:"id"`
	ChildID     string           `json:"childId"`
	RequestedAt time.Time        `json:"requestedAt"`
	Message     string           `json:"message"`
	IsUrgent    bool             `json:"isUrgent"`
	Status      CheckInStatus    `json:"status"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
	Location    *CheckInLocation `json:"location,omitempty"`
}

// DashboardEntry projects a completed request into the dashboard check-in list.
func (r CheckInRequest) DashboardEntry() CheckIn {
	entry := CheckIn{ID: r.ID}
	if r.CompletedAt != nil {
		entry.Timestamp = *r.CompletedAt
	}
	if r.Location != nil {
		entry.PlaceName = r.Location.PlaceName
		entry.Location = &Coordinate{Latitude: r.Location.Latitude, Longitude: r.Location.Longitude}
	}

	return entry
}
