// Package services holds the checkout closer and its daily trigger.
package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/analytics"
	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/models"
)

// EventStore is the slice of the store gateway the closer needs.
type EventStore interface {
	EventsOn(ctx context.Context, t time.Time) ([]models.AttendanceEvent, error)
	AppendEvent(ctx context.Context, ev models.AttendanceEvent) error
}

const (
	// Independent writes, so cap the fan-out rather than serialize it.
	maxConcurrentWrites = 8
	perWriteTimeout     = 5 * time.Second
)

// CheckoutResult is the outcome of closing one identity's session.
type CheckoutResult struct {
	RFIDUID string `json:"rfid_uid"`
	Name    string `json:"name,omitempty"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

// CheckoutReport summarizes one closer run.
type CheckoutReport struct {
	Attempted int              `json:"attempted"`
	Succeeded int              `json:"succeeded"`
	Results   []CheckoutResult `json:"results"`
}

// Closer force-closes open sessions by writing a synthetic OUT event for
// every identity still present. Running it twice in a row is safe: the
// second run sees the OUTs just written and finds nobody present.
type Closer struct {
	store EventStore
	loc   *time.Location
	now   func() time.Time
}

func NewCloser(store EventStore, loc *time.Location) *Closer {
	return &Closer{store: store, loc: loc, now: time.Now}
}

// CloseOpenSessions resolves today's present set and writes one OUT per
// present identity. Writes run concurrently and independently: a failed or
// timed-out write is recorded against its identity and never stops the
// others. The returned error covers only the initial read.
func (cl *Closer) CloseOpenSessions(ctx context.Context) (*CheckoutReport, error) {
	events, err := cl.store.EventsOn(ctx, cl.now())
	if err != nil {
		return nil, err
	}
	present := analytics.PresentSet(events)

	report := &CheckoutReport{
		Attempted: len(present),
		Results:   make([]CheckoutResult, len(present)),
	}

	var g errgroup.Group
	g.SetLimit(maxConcurrentWrites)
	for i, rec := range present {
		i, rec := i, rec
		g.Go(func() error {
			wctx, cancel := context.WithTimeout(ctx, perWriteTimeout)
			defer cancel()

			out := models.AttendanceEvent{
				RFIDUID:   rec.RFIDUID,
				EventType: models.EventOut,
				Timestamp: cl.now(),
			}
			res := CheckoutResult{RFIDUID: rec.RFIDUID, Name: rec.Name}
			if err := cl.store.AppendEvent(wctx, out); err != nil {
				res.Error = err.Error()
			} else {
				res.OK = true
			}
			report.Results[i] = res
			return nil
		})
	}
	_ = g.Wait() // tasks report failures in-band, never via the group

	for _, res := range report.Results {
		if res.OK {
			report.Succeeded++
		}
	}
	return report, nil
}
