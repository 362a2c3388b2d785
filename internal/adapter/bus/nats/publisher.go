package nats

import (
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/bnema/pagerec/internal/domain"
	"github.com/bnema/pagerec/internal/port"
)

type Publisher struct {
	nc     *nats.Conn
	prefix string
}

func Connect(url, prefix string) (*Publisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("pagerec"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.Timeout(5*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return NewPublisher(nc, prefix), nil
}

func NewPublisher(nc *nats.Conn, prefix string) *Publisher {
	if prefix == "" {
		prefix = "recordings"
	}
	return &Publisher{nc: nc, prefix: prefix}
}

// Subject returns "<prefix>.<event type>".
func (p *Publisher) Subject(t domain.EventType) string {
	return p.prefix + "." + string(t)
}

func (p *Publisher) Publish(event domain.Event) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.nc.Publish(p.Subject(event.Type), b)
}

func (p *Publisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
	}
}

var _ port.EventPublisher = (*Publisher)(nil)
