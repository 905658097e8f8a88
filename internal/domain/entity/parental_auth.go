package entity

import "time"

// AuthAttemptRecord tracks consecutive failed PIN attempts.
type AuthAttemptRecord struct {
	Count       int        `json:"count"`
	LockedUntil *time.Time `json:"lockedUntil,omitempty"`
}

// IsLocked reports whether the lock is still in force at now.
func (r *AuthAttemptRecord) IsLocked(now time.Time) bool {
	return r != nil && r.LockedUntil != nil && now.Before(*r.LockedUntil)
}

// LockExpired reports whether a lock was set and has run out at now.
func (r *AuthAttemptRecord) LockExpired(now time.Time) bool {
	return r != nil && r.LockedUntil != nil && !now.Before(*r.LockedUntil)
}

// PinCredential is the salted digest of the parent PIN. It lives only in the secure store.
type PinCredential struct {
	Hash string
	Salt string
}

// ParentSession describes a successful parent mode authentication.
type ParentSession struct {
	Active         bool      `json:"active"`
	FirstTimeSetup bool      `json:"firstTimeSetup"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// PermissionStatus is the answer of the device to a permission request.
type PermissionStatus string

const (
	PermissionGranted      PermissionStatus = "granted"
	PermissionDenied       PermissionStatus = "denied"
	PermissionUndetermined PermissionStatus = "undetermined"
)
