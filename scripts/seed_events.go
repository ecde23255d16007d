// scripts/seed_events.go
// Posts a demo day of check-in/check-out events through the store gateway.
// Useful for local development against a fresh store.
package main

import (
	"context"
	"log"
	"time"

	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/config"
	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/models"
	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}

	st := store.New(cfg, loc)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	day := time.Now().In(loc)
	at := func(h, m int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc)
	}

	seed := []models.AttendanceEvent{
		{RFIDUID: "04A1B2C3", EventType: models.EventIn, Timestamp: at(9, 5)},
		{RFIDUID: "04D4E5F6", EventType: models.EventIn, Timestamp: at(9, 12)},
		{RFIDUID: "04A1B2C3", EventType: models.EventOut, Timestamp: at(12, 30)},
		{RFIDUID: "047788AA", EventType: models.EventIn, Timestamp: at(14, 2)},
		{RFIDUID: "04A1B2C3", EventType: models.EventIn, Timestamp: at(14, 45)},
	}

	for _, ev := range seed {
		if err := st.AppendEvent(ctx, ev); err != nil {
			log.Fatalf("seed %s %s: %v", ev.EventType, ev.RFIDUID, err)
		}
	}
	log.Printf("seeded %d events for %s", len(seed), day.Format("2006-01-02"))
}
