package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/models"
)

// fakeStore is an in-memory stand-in for the store gateway. Appends are
// visible to subsequent reads, which is what makes the idempotence test
// meaningful.
type fakeStore struct {
	mu      sync.Mutex
	events  []models.AttendanceEvent
	readErr error
	failFor map[string]error
	writes  int
}

func (f *fakeStore) EventsOn(_ context.Context, _ time.Time) ([]models.AttendanceEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := make([]models.AttendanceEvent, len(f.events))
	copy(out, f.events)
	return out, nil
}

func (f *fakeStore) AppendEvent(_ context.Context, ev models.AttendanceEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if err, ok := f.failFor[ev.RFIDUID]; ok {
		return err
	}
	f.events = append(f.events, ev)
	return nil
}

func newTestCloser(fs *fakeStore) *Closer {
	return NewCloser(fs, time.UTC)
}

func presentAt(uid string, minutesAgo int) models.AttendanceEvent {
	return models.AttendanceEvent{
		RFIDUID:   uid,
		EventType: models.EventIn,
		Timestamp: time.Now().Add(-time.Duration(minutesAgo) * time.Minute),
	}
}

func TestCloseOpenSessions(t *testing.T) {
	fs := &fakeStore{events: []models.AttendanceEvent{
		presentAt("A", 120),
		presentAt("B", 60),
	}}

	report, err := newTestCloser(fs).CloseOpenSessions(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, report.Attempted)
	require.Equal(t, 2, report.Succeeded)
	require.Len(t, report.Results, 2)
	for _, res := range report.Results {
		require.True(t, res.OK)
		require.Empty(t, res.Error)
	}

	// Two synthetic OUTs landed in the log.
	outs := 0
	for _, ev := range fs.events {
		if ev.EventType == models.EventOut {
			outs++
		}
	}
	require.Equal(t, 2, outs)
}

func TestCloseOpenSessionsPartialFailure(t *testing.T) {
	fs := &fakeStore{
		events: []models.AttendanceEvent{
			presentAt("A", 120),
			presentAt("B", 60),
		},
		failFor: map[string]error{"B": errors.New("store replied 503")},
	}

	report, err := newTestCloser(fs).CloseOpenSessions(context.Background())
	require.NoError(t, err) // partial failure is not an operation failure
	require.Equal(t, 2, report.Attempted)
	require.Equal(t, 1, report.Succeeded)

	byUID := map[string]CheckoutResult{}
	for _, res := range report.Results {
		byUID[res.RFIDUID] = res
	}
	require.True(t, byUID["A"].OK)
	require.False(t, byUID["B"].OK)
	require.Contains(t, byUID["B"].Error, "503")

	// B's failure must not have stopped A's write from being attempted.
	require.Equal(t, 2, fs.writes)
}

func TestCloseOpenSessionsIdempotent(t *testing.T) {
	fs := &fakeStore{events: []models.AttendanceEvent{
		presentAt("A", 120),
	}}
	cl := newTestCloser(fs)

	first, err := cl.CloseOpenSessions(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, first.Succeeded)

	// The second run sees the OUT just written and has nothing to do.
	second, err := cl.CloseOpenSessions(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, second.Attempted)
	require.Empty(t, second.Results)
}

func TestCloseOpenSessionsNobodyPresent(t *testing.T) {
	fs := &fakeStore{}

	report, err := newTestCloser(fs).CloseOpenSessions(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, report.Attempted)
	require.Equal(t, 0, fs.writes)
}

func TestCloseOpenSessionsReadError(t *testing.T) {
	fs := &fakeStore{readErr: errors.New("store unreachable")}

	_, err := newTestCloser(fs).CloseOpenSessions(context.Background())
	require.Error(t, err)
	require.Equal(t, 0, fs.writes)
}
