package port

import "github.com/bnema/pagerec/internal/domain"

type EventPublisher interface {
	Publish(event domain.Event) error
}
