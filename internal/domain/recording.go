package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

type Status string

const (
	StatusRecording Status = "recording"
	StatusCompleted Status = "completed"
	StatusStopped   Status = "stopped"
	StatusFailed    Status = "failed"
)

// Terminal reports whether no further transitions may follow s.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusStopped, StatusFailed:
		return true
	}
	return false
}

func (s Status) Valid() bool {
	return s == StatusRecording || s.Terminal()
}

// OutputExt is the container extension of every recording file.
const OutputExt = ".mp4"

type Recording struct {
	ID           int64     `json:"id"`
	URL          string    `json:"url"`
	Status       Status    `json:"status"`
	Output       string    `json:"output"`
	ErrorMessage string    `json:"error,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewRecording(id int64, url, output string) *Recording {
	now := time.Now().UTC()
	return &Recording{
		ID:        id,
		URL:       url,
		Status:    StatusRecording,
		Output:    output,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *Recording) IsActive() bool {
	return r.Status == StatusRecording
}

func (r *Recording) MarkCompleted() {
	r.Status = StatusCompleted
	r.ErrorMessage = ""
	r.UpdatedAt = time.Now().UTC()
}

func (r *Recording) MarkStopped() {
	r.Status = StatusStopped
	r.ErrorMessage = ""
	r.UpdatedAt = time.Now().UTC()
}

func (r *Recording) MarkFailed(err error) {
	r.Status = StatusFailed
	if err != nil {
		r.ErrorMessage = err.Error()
	}
	r.UpdatedAt = time.Now().UTC()
}

// OutputPath returns the deterministic location of the video file for id.
func OutputPath(dir string, id int64) string {
	return filepath.Join(dir, fmt.Sprintf("%d%s", id, OutputExt))
}
