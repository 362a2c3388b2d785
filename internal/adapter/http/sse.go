package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/pagerec/internal/adapter/http/validation"
	"github.com/bnema/pagerec/internal/domain"
	"github.com/bnema/pagerec/internal/port"
	"github.com/bnema/pagerec/internal/service"
)

type SSEHandler struct {
	eventBus  *service.EventBus
	store     port.RecordingStore
	keepAlive time.Duration
}

func NewSSEHandler(eventBus *service.EventBus, store port.RecordingStore) *SSEHandler {
	return &SSEHandler{
		eventBus:  eventBus,
		store:     store,
		keepAlive: 15 * time.Second,
	}
}

// sseWrite writes an SSE event, handling multi-line data correctly.
func sseWrite(w http.ResponseWriter, eventName string, data string) {
	_, _ = fmt.Fprintf(w, "event: %s\n", eventName)
	for _, line := range strings.Split(data, "\n") {
		_, _ = fmt.Fprintf(w, "data: %s\n", line)
	}
	_, _ = fmt.Fprint(w, "\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func sseWriteJSON(w http.ResponseWriter, eventName string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	sseWrite(w, eventName, string(b))
	return nil
}

// sendKeepAlive writes an SSE comment to keep the connection active.
func sendKeepAlive(w http.ResponseWriter) {
	_, _ = fmt.Fprint(w, ": keep-alive\n\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// Events streams the current row as a "status" event followed by one event
// per lifecycle change, named after the event type.
func (h *SSEHandler) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validation.ParseID(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		// Subscribe before reading so no transition is missed in between.
		ch := h.eventBus.Subscribe(id)
		defer h.eventBus.Unsubscribe(id, ch)

		rec, err := h.store.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeError(w, http.StatusNotFound, msgNotFound)
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		ctx := r.Context()
		_ = sseWriteJSON(w, "status", rec)

		// Let the client close the connection once nothing more can happen
		if rec.Status.Terminal() {
			<-ctx.Done()
			return
		}

		keepAlive := time.NewTicker(h.keepAlive)
		defer keepAlive.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-keepAlive.C:
				sendKeepAlive(w)
			case event, ok := <-ch:
				if !ok {
					return
				}
				_ = sseWriteJSON(w, string(event.Type), event)
				if event.Terminal() {
					<-ctx.Done()
					return
				}
			}
		}
	}
}
