package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/pagerec/internal/domain"
	"github.com/bnema/pagerec/internal/port"
)

type fakeSession struct {
	closed atomic.Int32
}

func (s *fakeSession) Close() error {
	s.closed.Add(1)
	return nil
}

type fakeBrowser struct {
	mu       sync.Mutex
	err      error
	opened   []string
	sessions []*fakeSession
	// gate, when set, blocks Open until it is closed; entered receives a
	// value once Open has been called.
	gate    chan struct{}
	entered chan struct{}
}

func (b *fakeBrowser) Open(url string, _ time.Duration) (port.BrowserSession, error) {
	if b.entered != nil {
		b.entered <- struct{}{}
	}
	if b.gate != nil {
		<-b.gate
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.opened = append(b.opened, url)
	if b.err != nil {
		return nil, b.err
	}
	s := &fakeSession{}
	b.sessions = append(b.sessions, s)
	return s, nil
}

func (b *fakeBrowser) openCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.opened)
}

func (b *fakeBrowser) session(i int) *fakeSession {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessions[i]
}

// fakeProcess is an encoder whose exit is driven by the test.
type fakeProcess struct {
	pid  int
	done chan struct{}
	once sync.Once

	mu     sync.Mutex
	result domain.ExitResult

	ignoreInterrupt bool
	ignoreKill      bool
	interrupts      atomic.Int32
	kills           atomic.Int32
}

func newFakeProcess(pid int) *fakeProcess {
	return &fakeProcess{pid: pid, done: make(chan struct{})}
}

func (p *fakeProcess) Exit(res domain.ExitResult) {
	p.once.Do(func() {
		p.mu.Lock()
		p.result = res
		p.mu.Unlock()
		close(p.done)
	})
}

func (p *fakeProcess) PID() int { return p.pid }

func (p *fakeProcess) Interrupt() error {
	p.interrupts.Add(1)
	if !p.ignoreInterrupt {
		p.Exit(domain.ExitResult{Code: 255})
	}
	return nil
}

func (p *fakeProcess) Kill() error {
	p.kills.Add(1)
	if !p.ignoreKill {
		p.Exit(domain.ExitResult{Code: -1, Signal: "killed"})
	}
	return nil
}

func (p *fakeProcess) Done() <-chan struct{} { return p.done }

func (p *fakeProcess) Result() domain.ExitResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

type fakeEncoder struct {
	mu           sync.Mutex
	availableErr error
	startErr     error
	requests     []port.EncodeRequest
	procs        []*fakeProcess
	configure    func(p *fakeProcess)
}

func (e *fakeEncoder) CheckAvailable(context.Context) error {
	return e.availableErr
}

func (e *fakeEncoder) Start(req port.EncodeRequest) (port.EncoderProcess, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.requests = append(e.requests, req)
	if e.startErr != nil {
		return nil, e.startErr
	}
	p := newFakeProcess(1000 + len(e.procs))
	if e.configure != nil {
		e.configure(p)
	}
	e.procs = append(e.procs, p)
	return p, nil
}

func (e *fakeEncoder) proc(i int) *fakeProcess {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.procs[i]
}

func (e *fakeEncoder) startCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.requests)
}

var errUnreachable = errors.New("net::ERR_NAME_NOT_RESOLVED")
