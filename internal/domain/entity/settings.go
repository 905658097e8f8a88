package entity

// EmergencyContact is a person or service the child can reach from the app.
type EmergencyContact struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Relationship     string `json:"relationship"`
	IsPrimary        bool   `json:"isPrimary"`
	CanReceiveAlerts bool   `json:"canReceiveAlerts"`
}

// ParentalSettings is the guardian-controlled configuration of the app.
type ParentalSettings struct {
	RequirePinForParentMode      bool               `json:"requirePinForParentMode"`
	AllowChildCategoryCreation   bool               `json:"allowChildCategoryCreation"`
	RequireApprovalForCategories bool               `json:"requireApprovalForCategories"`
	MaxCustomCategories          int                `json:"maxCustomCategories"`
	SafeZoneAlerts               bool               `json:"safeZoneAlerts"`
	CheckInReminders             bool               `json:"checkInReminders"`
	EmergencyContacts            []EmergencyContact `json:"emergencyContacts"`

	// LegacyParentPin is a plaintext PIN written by old app versions. It is read so it
	// can be stripped and is never written back.
	LegacyParentPin string `json:"parentPin,omitempty"`
}

// DefaultParentalSettings returns the settings of a fresh install.
func DefaultParentalSettings() ParentalSettings {
	return ParentalSettings{
		RequirePinForParentMode:      true,
		AllowChildCategoryCreation:   true,
		RequireApprovalForCategories: true,
		MaxCustomCategories:          20,
		SafeZoneAlerts:               true,
		CheckInReminders:             true,
		EmergencyContacts: []EmergencyContact{
			{
				ID:           "emergency_911",
				Name:         "Emergency Services",
				Phone:        "911",
				Relationship: "Emergency",
			},
		},
	}
}
