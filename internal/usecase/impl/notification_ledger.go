package impl

import (
	"sync"
	"time"

	"guardian/internal/domain/entity"
)

// notificationLedger remembers when each zone and event type last alerted the guardian.
// It lives in memory only, so the cooldown restarts with the process.
type notificationLedger struct {
	mu       sync.Mutex
	cooldown time.Duration
	lastSent map[string]time.Time
}

func newNotificationLedger(cooldown time.Duration) *notificationLedger {
	return &notificationLedger{
		cooldown: cooldown,
		lastSent: make(map[string]time.Time),
	}
}

func ledgerKey(zoneID string, eventType entity.SafeZoneEventType) string {
	return zoneID + "_" + string(eventType)
}

// allow records a dispatch at now and returns true unless the key dispatched within the cooldown.
func (l *notificationLedger) allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if last, ok := l.lastSent[key]; ok && now.Sub(last) < l.cooldown {
		return false
	}
	l.lastSent[key] = now

	return true
}
