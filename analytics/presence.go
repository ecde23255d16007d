// Package analytics derives occupancy state and usage statistics from the
// raw check-in/check-out log. Every function is pure: inputs are event
// slices, outputs are fresh values, nothing is cached between requests.
package analytics

import (
	"sort"
	"time"

	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/models"
)

// ResolvePresence replays a day's events and returns the final state per
// identity tag. Events are sorted by timestamp before replay so the result
// is deterministic regardless of store ordering.
//
// Replay rules:
//   - IN marks the tag PRESENT and restarts its session clock. A second IN
//     with no OUT in between simply wins (a scanner missed the checkout).
//   - OUT marks the tag DEPARTED only if it is currently PRESENT; an OUT
//     with no prior IN that day is a stray scan and is ignored.
func ResolvePresence(events []models.AttendanceEvent) map[string]models.PresenceRecord {
	ordered := make([]models.AttendanceEvent, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	state := make(map[string]models.PresenceRecord)
	for _, ev := range ordered {
		switch ev.EventType {
		case models.EventIn:
			state[ev.RFIDUID] = models.PresenceRecord{
				RFIDUID: ev.RFIDUID,
				Name:    ev.Name,
				Status:  models.StatusPresent,
				TimeIn:  ev.Timestamp,
			}
		case models.EventOut:
			if rec, ok := state[ev.RFIDUID]; ok && rec.Status == models.StatusPresent {
				rec.Status = models.StatusDeparted
				state[ev.RFIDUID] = rec
			}
		}
	}
	return state
}

// PresentSet resolves the events and returns only the identities still
// present, ordered by check-in time (tag on ties) for stable output.
func PresentSet(events []models.AttendanceEvent) []models.PresenceRecord {
	state := ResolvePresence(events)

	present := make([]models.PresenceRecord, 0, len(state))
	for _, rec := range state {
		if rec.Status == models.StatusPresent {
			present = append(present, rec)
		}
	}
	sort.Slice(present, func(i, j int) bool {
		if !present[i].TimeIn.Equal(present[j].TimeIn) {
			return present[i].TimeIn.Before(present[j].TimeIn)
		}
		return present[i].RFIDUID < present[j].RFIDUID
	})
	return present
}

// FilterDay keeps only events on the same calendar date as day in loc. The
// boundary is the calendar day, not a rolling 24h window.
func FilterDay(events []models.AttendanceEvent, day time.Time, loc *time.Location) []models.AttendanceEvent {
	y, m, d := day.In(loc).Date()

	var out []models.AttendanceEvent
	for _, ev := range events {
		ey, em, ed := ev.Timestamp.In(loc).Date()
		if ey == y && em == m && ed == d {
			out = append(out, ev)
		}
	}
	return out
}
