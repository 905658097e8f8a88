package entity

import "time"

type NotificationPriority string

const (
	NotificationPriorityDefault NotificationPriority = "default"
	NotificationPriorityHigh    NotificationPriority = "high"
)

// Notification is a user-facing alert delivered to the guardian.
type Notification struct {
	Title    string               `json:"title"`    // Banner title, e.g. "🟢 Safe Zone Entry".
	Body     string               `json:"body"`     // Banner body text.
	Data     map[string]string    `json:"data"`     // Machine-readable payload for the receiving app.
	Priority NotificationPriority `json:"priority"` // Delivery priority hint.
	SentAt   time.Time            `json:"sentAt"`   // Timestamp of when the alert was produced.
}

// SafeZoneEventMessage is the payload published to subscribers of zone transitions.
type SafeZoneEventMessage struct {
	SafeZoneID   string            `json:"safeZoneId"`
	SafeZoneName string            `json:"safeZoneName"`
	Type         SafeZoneEventType `json:"type"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	Timestamp    time.Time         `json:"timestamp"`
}

// NewSafeZoneNotification builds the guardian alert for a zone transition.
func NewSafeZoneNotification(zoneID, zoneName string, eventType SafeZoneEventType, now time.Time) *Notification {
	title, body := "🟢 Safe Zone Entry", "Child has entered "+zoneName
	if eventType == SafeZoneEventExit {
		title, body = "🔴 Safe Zone Exit", "Child has left "+zoneName
	}

	return &Notification{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"type":         "safe_zone_" + string(eventType),
			"safeZoneId":   zoneID,
			"safeZoneName": zoneName,
		},
		Priority: NotificationPriorityHigh,
		SentAt:   now,
	}
}
