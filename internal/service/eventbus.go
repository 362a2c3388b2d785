package service

import (
	"sync"

	"github.com/bnema/pagerec/internal/domain"
	"github.com/bnema/pagerec/internal/infrastructure/logger"
	"github.com/bnema/pagerec/internal/port"
)

// EventBus delivers lifecycle events to in-process subscribers of one
// recording, typically SSE streams.
type EventBus struct {
	subscribers map[int64][]chan domain.Event
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[int64][]chan domain.Event),
	}
}

func (eb *EventBus) Subscribe(id int64) chan domain.Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan domain.Event, 16)
	eb.subscribers[id] = append(eb.subscribers[id], ch)
	return ch
}

func (eb *EventBus) Unsubscribe(id int64, ch chan domain.Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[id]
	for i, sub := range subs {
		if sub == ch {
			eb.subscribers[id] = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}

	if len(eb.subscribers[id]) == 0 {
		delete(eb.subscribers, id)
	}
}

func (eb *EventBus) Publish(event domain.Event) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	for _, ch := range eb.subscribers[event.RecordingID] {
		select {
		case ch <- event:
		default:
			// Drop event if subscriber is slow
		}
	}
	return nil
}

// Publishers fans an event out to every publisher. A failing publisher is
// logged and does not stop delivery to the others.
type Publishers []port.EventPublisher

func (ps Publishers) Publish(event domain.Event) error {
	for _, p := range ps {
		if p == nil {
			continue
		}
		if err := p.Publish(event); err != nil {
			logger.Warn.Printf("publish %s event for recording %d: %v", event.Type, event.RecordingID, err)
		}
	}
	return nil
}

var (
	_ port.EventPublisher = (*EventBus)(nil)
	_ port.EventPublisher = Publishers(nil)
)
