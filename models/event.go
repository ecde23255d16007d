package models

import "time"

// Event kinds recorded by the RFID scanners.
const (
	EventIn  = "IN"
	EventOut = "OUT"
)

// AttendanceEvent is one row of the check-in/check-out log. Rows are written
// by the scanners (or synthesized by the checkout closer) and never mutated.
type AttendanceEvent struct {
	ID        int64     `json:"id,omitempty"`
	RFIDUID   string    `json:"rfid_uid"`
	EventType string    `json:"event_type"` // IN | OUT
	Timestamp time.Time `json:"timestamp"`
	Name      string    `json:"name,omitempty"` // denormalized owner display name
}

// Presence states derived from a day's event replay.
const (
	StatusPresent  = "PRESENT"
	StatusDeparted = "DEPARTED"
)

// PresenceRecord is the derived per-identity state after replaying one day's
// events. Computed fresh on every request, never persisted.
type PresenceRecord struct {
	RFIDUID string    `json:"rfid_uid"`
	Name    string    `json:"name"`
	Status  string    `json:"-"`
	TimeIn  time.Time `json:"time_in"` // start of the current/most-recent session
}

// DailyOccupancySample counts distinct identities seen on one calendar date.
type DailyOccupancySample struct {
	Date           string `json:"date"` // YYYY-MM-DD
	OccupancyCount int    `json:"occupancy_count"`
}

// HourlyCheckInBucket counts IN events in one hour of the current day.
type HourlyCheckInBucket struct {
	Hour     string `json:"hour"` // "9:00"
	CheckIns int    `json:"check_ins"`
}
