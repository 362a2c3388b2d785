package port

import (
	"context"

	"github.com/bnema/pagerec/internal/domain"
)

type EncodeRequest struct {
	Backend    domain.CaptureBackend
	Settings   domain.CaptureSettings
	OutputPath string
}

type Encoder interface {
	CheckAvailable(ctx context.Context) error
	Start(req EncodeRequest) (EncoderProcess, error)
}

// EncoderProcess is a running encoder. Done is closed once the process has
// been reaped; Result is only meaningful after that.
type EncoderProcess interface {
	PID() int
	Interrupt() error
	Kill() error
	Done() <-chan struct{}
	Result() domain.ExitResult
}
