package domain

import "time"

type EventType string

const (
	EventStarted   EventType = "started"
	EventCompleted EventType = "completed"
	EventFailed    EventType = "failed"
	EventStopped   EventType = "stopped"
	EventDeleted   EventType = "deleted"
)

// Event is a recording lifecycle notification.
type Event struct {
	Type        EventType `json:"type"`
	RecordingID int64     `json:"id"`
	URL         string    `json:"url,omitempty"`
	Status      Status    `json:"status,omitempty"`
	Error       string    `json:"error,omitempty"`
	At          time.Time `json:"at"`
}

func NewEvent(t EventType, r *Recording) Event {
	e := Event{Type: t, At: time.Now().UTC()}
	if r != nil {
		e.RecordingID = r.ID
		e.URL = r.URL
		e.Status = r.Status
		e.Error = r.ErrorMessage
	}
	return e
}

// Terminal reports whether no further events follow for the recording.
func (e Event) Terminal() bool {
	return e.Type != EventStarted
}
