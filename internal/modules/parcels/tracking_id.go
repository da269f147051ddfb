package parcels

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"
)

const (
	trackingPrefix   = "MPX"
	trackingRandLen  = 6
	trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var trackingIDPattern = regexp.MustCompile(`^MPX-\d{8}-[A-Z0-9]{6}$`)

// NewTrackingID generates an MPX-YYYYMMDD-XXXXXX identifier from the current
// UTC date and a pseudo-random suffix. Uniqueness is best effort; the
// storage layer's unique index is the real guard, and a collision there
// surfaces as a conflict rather than being retried here.
func NewTrackingID() string {
	return newTrackingIDAt(time.Now())
}

func newTrackingIDAt(now time.Time) string {
	suffix := make([]byte, trackingRandLen)
	for i := range suffix {
		suffix[i] = trackingAlphabet[rand.IntN(len(trackingAlphabet))]
	}
	return fmt.Sprintf("%s-%s-%s", trackingPrefix, now.UTC().Format("20060102"), suffix)
}

// ValidTrackingID reports whether id matches the MPX-YYYYMMDD-XXXXXX format.
func ValidTrackingID(id string) bool {
	return trackingIDPattern.MatchString(id)
}
