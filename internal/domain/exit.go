package domain

import "fmt"

// ExitResult describes how an encoder process ended. Err is set when the
// process could not be waited on at all; Code and Signal are meaningful
// otherwise. Code is -1 when the process was terminated by a signal.
type ExitResult struct {
	Code   int
	Signal string
	Err    error
}

func (r ExitResult) Success() bool {
	return r.Err == nil && r.Code == 0
}

// Message is the human readable failure stored on a failed recording.
func (r ExitResult) Message() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	signal := r.Signal
	if signal == "" {
		signal = "none"
	}
	return fmt.Sprintf("encoder exited with error code %d and signal %s", r.Code, signal)
}
