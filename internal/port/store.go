package port

import (
	"context"

	"github.com/bnema/pagerec/internal/domain"
)

// RecordingStore is the durable record of every job. Implementations
// translate constraint violations into domain.ErrDuplicateID and
// domain.ErrDuplicateURL, and a missing row into domain.ErrNotFound.
type RecordingStore interface {
	Insert(ctx context.Context, r *domain.Recording) error
	Get(ctx context.Context, id int64) (*domain.Recording, error)
	ListByURLAndStatus(ctx context.Context, url string, status domain.Status) ([]*domain.Recording, error)
	ListAll(ctx context.Context) ([]*domain.Recording, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status, errMsg string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
