// Package store is the gateway to the hosted attendance event log. The log
// is the sole source of truth; this process keeps no state of its own.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/config"
	"github.com/Intelligent-Systems-Design-Lab-SRM/attendance-backend/models"
)

const eventsTable = "attendance"

// ErrBadRecord reports a store row that fails shape validation (missing tag,
// unknown event type, unparseable timestamp). Detected at the gateway so the
// rest of the pipeline only ever sees well-formed events.
var ErrBadRecord = errors.New("malformed event record")

// StatusError is a non-2xx reply from the store.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("store replied %d: %s", e.Code, e.Body)
}

type Client struct {
	baseURL string
	apiKey  string
	loc     *time.Location
	http    *http.Client
}

func New(cfg *config.Config, loc *time.Location) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.StoreURL, "/"),
		apiKey:  cfg.StoreKey,
		loc:     loc,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// eventRow is the wire shape of one log row, with the owner's display name
// embedded from the users table.
type eventRow struct {
	ID        int64  `json:"id"`
	RFIDUID   string `json:"rfid_uid"`
	EventType string `json:"event_type"`
	Timestamp string `json:"timestamp"`
	User      *struct {
		Name string `json:"name"`
	} `json:"users"`
}

// EventsOn returns every event whose timestamp falls on the same calendar
// day as t in the client's timezone.
func (c *Client) EventsOn(ctx context.Context, t time.Time) ([]models.AttendanceEvent, error) {
	y, m, d := t.In(c.loc).Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, c.loc)
	return c.EventsBetween(ctx, from, from.AddDate(0, 0, 1))
}

// EventsBetween returns events in the half-open range [from, to), ordered by
// timestamp ascending as the store returns them.
func (c *Client) EventsBetween(ctx context.Context, from, to time.Time) ([]models.AttendanceEvent, error) {
	q := url.Values{}
	q.Set("select", "id,rfid_uid,event_type,timestamp,users(name)")
	q.Add("timestamp", "gte."+from.UTC().Format(time.RFC3339))
	q.Add("timestamp", "lt."+to.UTC().Format(time.RFC3339))
	q.Set("order", "timestamp.asc")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/rest/v1/"+eventsTable+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var rows []eventRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRecord, err)
	}

	events := make([]models.AttendanceEvent, 0, len(rows))
	for _, r := range rows {
		ev, err := r.toEvent(c.loc)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// AppendEvent writes one event to the log. A zero timestamp is omitted so
// the store assigns its own.
func (c *Client) AppendEvent(ctx context.Context, ev models.AttendanceEvent) error {
	row := map[string]any{
		"rfid_uid":   ev.RFIDUID,
		"event_type": ev.EventType,
	}
	if !ev.Timestamp.IsZero() {
		row["timestamp"] = ev.Timestamp.UTC().Format(time.RFC3339)
	}
	payload, err := json.Marshal(row)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/rest/v1/"+eventsTable, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	_, err = c.do(req)
	return err
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("store response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}

func (r eventRow) toEvent(loc *time.Location) (models.AttendanceEvent, error) {
	if r.RFIDUID == "" {
		return models.AttendanceEvent{}, fmt.Errorf("%w: empty rfid_uid (id=%d)", ErrBadRecord, r.ID)
	}
	if r.EventType != models.EventIn && r.EventType != models.EventOut {
		return models.AttendanceEvent{}, fmt.Errorf("%w: event_type %q (id=%d)", ErrBadRecord, r.EventType, r.ID)
	}
	ts, err := parseTimestamp(r.Timestamp, loc)
	if err != nil {
		return models.AttendanceEvent{}, fmt.Errorf("%w: timestamp %q (id=%d)", ErrBadRecord, r.Timestamp, r.ID)
	}
	ev := models.AttendanceEvent{
		ID:        r.ID,
		RFIDUID:   r.RFIDUID,
		EventType: r.EventType,
		Timestamp: ts.In(loc),
	}
	if r.User != nil {
		ev.Name = r.User.Name
	}
	return ev, nil
}

// The store emits RFC 3339 for timestamptz columns but drops the offset for
// plain timestamp columns; zoneless values are read in the configured zone.
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05.999999999", s, loc)
}
