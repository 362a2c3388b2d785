package ffmpeg

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/bnema/pagerec/internal/domain"
	"github.com/bnema/pagerec/internal/port"
)

type Process struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser

	done   chan struct{}
	mu     sync.Mutex
	result domain.ExitResult
}

func (p *Process) PID() int {
	return p.cmd.Process.Pid
}

// Interrupt asks ffmpeg to finish the file. Platforms without SIGINT
// delivery fall back to ffmpeg's interactive "q" command on stdin.
func (p *Process) Interrupt() error {
	if err := p.cmd.Process.Signal(os.Interrupt); err == nil {
		return nil
	} else if errors.Is(err, os.ErrProcessDone) {
		return err
	}
	_, err := io.WriteString(p.stdin, "q\n")
	return err
}

func (p *Process) Kill() error {
	return p.cmd.Process.Kill()
}

func (p *Process) Done() <-chan struct{} {
	return p.done
}

func (p *Process) Result() domain.ExitResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

func (p *Process) wait() {
	err := p.cmd.Wait()
	_ = p.stdin.Close()

	res := exitResult(p.cmd.ProcessState, err)

	p.mu.Lock()
	p.result = res
	p.mu.Unlock()
	close(p.done)
}

func exitResult(state *os.ProcessState, err error) domain.ExitResult {
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return domain.ExitResult{Code: -1, Err: err}
	}
	if state == nil {
		return domain.ExitResult{Code: -1, Err: err}
	}
	return domain.ExitResult{
		Code:   state.ExitCode(),
		Signal: exitSignal(state),
	}
}

var _ port.EncoderProcess = (*Process)(nil)
