package utils

import (
	"fmt"
	"sync"
	"time"
)

var (
	bookingIDMu   sync.Mutex
	lastBookingID int64
)

// GenerateBookingID returns a time-ordered booking id ("b" + unix millis).
// Successive calls within the same millisecond bump the counter instead of
// colliding, so ids stay unique and strictly increasing within the process.
func GenerateBookingID() string {
	bookingIDMu.Lock()
	defer bookingIDMu.Unlock()

	now := time.Now().UnixMilli()
	if now <= lastBookingID {
		now = lastBookingID + 1
	}
	lastBookingID = now
	return fmt.Sprintf("b%d", now)
}
