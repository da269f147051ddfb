package parcels

import (
	"strings"
	"testing"
	"time"
)

func TestTrackingIDFormat(t *testing.T) {
	id := NewTrackingID()
	if !ValidTrackingID(id) {
		t.Fatalf("generated id %q does not match format", id)
	}
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		t.Fatalf("id %q has %d segments, want 3", id, len(parts))
	}
	if parts[0] != "MPX" {
		t.Errorf("prefix = %q, want MPX", parts[0])
	}
	if want := time.Now().UTC().Format("20060102"); parts[1] != want {
		t.Errorf("date segment = %q, want %q", parts[1], want)
	}
	if parts[2] != strings.ToUpper(parts[2]) {
		t.Errorf("random segment %q not upper-cased", parts[2])
	}
}

func TestTrackingIDUsesUTCDate(t *testing.T) {
	// 23:30 in UTC+6 is already the next day locally; the id must carry the
	// UTC date.
	loc := time.FixedZone("UTC+6", 6*60*60)
	at := time.Date(2025, 12, 31, 23, 30, 0, 0, loc)
	id := newTrackingIDAt(at)
	if !strings.HasPrefix(id, "MPX-20251231-") {
		t.Errorf("id = %q, want date segment 20251231", id)
	}
}

func TestTrackingIDsAreDistinct(t *testing.T) {
	seen := make(map[string]bool, 100)
	for i := 0; i < 100; i++ {
		id := NewTrackingID()
		if seen[id] {
			t.Fatalf("duplicate id %q after %d draws", id, i)
		}
		seen[id] = true
	}
}

func TestValidTrackingID(t *testing.T) {
	cases := map[string]bool{
		"MPX-20250101-A1B2C3": true,
		"MPX-20250101-ABCDEF": true,
		"mpx-20250101-A1B2C3": false,
		"MPX-2025011-A1B2C3":  false,
		"MPX-20250101-a1b2c3": false,
		"MPX-20250101-A1B2":   false,
		"XPM-20250101-A1B2C3": false,
		"":                    false,
	}
	for id, want := range cases {
		if got := ValidTrackingID(id); got != want {
			t.Errorf("ValidTrackingID(%q) = %v, want %v", id, got, want)
		}
	}
}
