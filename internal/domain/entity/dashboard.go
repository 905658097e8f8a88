package entity

import "time"

// CheckIn is a completed check-in shown on the guardian dashboard.
type CheckIn struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	PlaceName string      `json:"placeName"`
	PhotoURL  string      `json:"photoUrl,omitempty"`
	Location  *Coordinate `json:"location,omitempty"`
}

// LastKnownLocation is the latest fix recorded on the dashboard.
type LastKnownLocation struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	PlaceName string    `json:"placeName,omitempty"`
}

// DashboardData is the persisted guardian dashboard document.
type DashboardData struct {
	RecentCheckIns    []CheckIn          `json:"recentCheckIns"`
	SafeZoneActivity  []SafeZoneActivity `json:"safeZoneActivity"`
	LastKnownLocation *LastKnownLocation `json:"lastKnownLocation,omitempty"`
}

// PrependActivity puts the newest record first and keeps at most limit records,
// evicting the oldest.
func (d *DashboardData) PrependActivity(activity SafeZoneActivity, limit int) {
	d.SafeZoneActivity = prependCapped(d.SafeZoneActivity, activity, limit)
}

// PrependCheckIn puts the newest check-in first and keeps at most limit entries.
func (d *DashboardData) PrependCheckIn(checkIn CheckIn, limit int) {
	d.RecentCheckIns = prependCapped(d.RecentCheckIns, checkIn, limit)
}

func prependCapped[T any](items []T, item T, limit int) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	out = append(out, items...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out
}
