package service

import (
	"context"
	"fmt"

	"github.com/bnema/pagerec/internal/domain"
	"github.com/bnema/pagerec/internal/infrastructure/logger"
	"github.com/bnema/pagerec/internal/port"
)

const EncoderRemediation = "FFmpeg is not installed. Please install FFmpeg and add it to your system PATH."

type Preflight struct {
	encoder port.Encoder
	store   port.RecordingStore
}

func NewPreflight(encoder port.Encoder, store port.RecordingStore) *Preflight {
	return &Preflight{encoder: encoder, store: store}
}

func (p *Preflight) CheckEncoderAvailable(ctx context.Context) error {
	if err := p.encoder.CheckAvailable(ctx); err != nil {
		logger.Error.Printf("encoder check failed: %v", err)
		return fmt.Errorf("%w: %s", domain.ErrEncoderUnavailable, EncoderRemediation)
	}
	return nil
}

// IsURLActive reports whether a recording of url is in progress according
// to the store. A store error counts as not active so that a flaky store
// never blocks new recordings; the store's unique index still rejects a
// real duplicate at insert time.
func (p *Preflight) IsURLActive(ctx context.Context, url string) bool {
	rows, err := p.store.ListByURLAndStatus(ctx, url, domain.StatusRecording)
	if err != nil {
		logger.Warn.Printf("active url lookup failed for %s: %v", logger.SanitizeForLog(url), err)
		return false
	}
	return len(rows) > 0
}
