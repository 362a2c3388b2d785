package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/pagerec/internal/domain"
	"github.com/bnema/pagerec/internal/infrastructure/logger"
	"github.com/bnema/pagerec/internal/port"
)

const (
	MessageStarted = "Recording started."
	MessageStopped = "Recording stopped."
	MessageDeleted = "Recording deleted."

	statusWriteAttempts = 3
	statusWriteTimeout  = 5 * time.Second
)

type RecorderOptions struct {
	OutputDir         string
	Backend           domain.CaptureBackend
	Settings          domain.CaptureSettings
	NavigationTimeout time.Duration
	StopTimeout       time.Duration
	KillTimeout       time.Duration
}

func DefaultRecorderOptions(outputDir string) RecorderOptions {
	return RecorderOptions{
		OutputDir:         outputDir,
		Backend:           domain.CaptureBackendFor(domain.PlatformLinux),
		Settings:          domain.DefaultCaptureSettings(),
		NavigationTimeout: 120 * time.Second,
		StopTimeout:       10 * time.Second,
		KillTimeout:       5 * time.Second,
	}
}

type StartResult struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// RecorderService owns the lifecycle of recording jobs: it launches the
// browser and encoder for a job, tracks them in its registry and
// reconciles their outcome with the store.
type RecorderService struct {
	store     port.RecordingStore
	browser   port.Browser
	encoder   port.Encoder
	preflight *Preflight
	registry  *Registry
	events    port.EventPublisher
	backoff   *Backoff
	opts      RecorderOptions

	watchers sync.WaitGroup
}

func NewRecorderService(
	store port.RecordingStore,
	browser port.Browser,
	encoder port.Encoder,
	events port.EventPublisher,
	opts RecorderOptions,
) *RecorderService {
	return &RecorderService{
		store:     store,
		browser:   browser,
		encoder:   encoder,
		preflight: NewPreflight(encoder, store),
		registry:  NewRegistry(),
		events:    events,
		backoff:   NewBackoff(100*time.Millisecond, 2*time.Second, 2.0),
		opts:      opts,
	}
}

func (s *RecorderService) Registry() *Registry {
	return s.registry
}

func (s *RecorderService) Start(ctx context.Context, url string, id int64) (*StartResult, error) {
	if err := s.preflight.CheckEncoderAvailable(ctx); err != nil {
		return nil, err
	}

	if s.preflight.IsURLActive(ctx, url) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateURL, url)
	}

	// Past the preflight a start runs to completion or to its navigation
	// timeout; the caller going away does not abort it.
	ctx = context.WithoutCancel(ctx)

	job, err := s.registry.Reserve(id, url)
	if err != nil {
		return nil, err
	}
	launched := false
	defer func() {
		if !launched {
			s.registry.release(job)
		}
	}()

	if _, err := s.store.Get(ctx, id); err == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrDuplicateID, id)
	} else if !errors.Is(err, domain.ErrNotFound) {
		logger.Warn.Printf("recording %d: existing row lookup failed: %v", id, err)
	}

	session, err := s.browser.Open(url, s.opts.NavigationTimeout)
	if err != nil {
		logger.Error.Printf("recording %d: navigation to %s failed: %v", id, logger.SanitizeForLog(url), err)
		return nil, fmt.Errorf("%w: %v", domain.ErrNavigationFailed, err)
	}

	output := domain.OutputPath(s.opts.OutputDir, id)
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		s.closeBrowser(id, session)
		return nil, fmt.Errorf("%w: create output directory: %v", domain.ErrLaunchFailed, err)
	}

	proc, err := s.encoder.Start(port.EncodeRequest{
		Backend:    s.opts.Backend,
		Settings:   s.opts.Settings,
		OutputPath: output,
	})
	if err != nil {
		logger.Error.Printf("recording %d: encoder launch failed: %v", id, err)
		s.closeBrowser(id, session)
		return nil, fmt.Errorf("%w: %v", domain.ErrLaunchFailed, err)
	}

	job.mu.Lock()
	if _, err := s.registry.Register(id, session, proc); err != nil {
		job.state = jobTerminal
		job.mu.Unlock()
		s.teardown(id, session, proc)
		return nil, err
	}

	rec := domain.NewRecording(id, url, output)
	if err := s.store.Insert(ctx, rec); err != nil {
		job.state = jobTerminal
		job.mu.Unlock()
		s.teardown(id, session, proc)
		if errors.Is(err, domain.ErrDuplicateID) || errors.Is(err, domain.ErrDuplicateURL) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: persist recording: %v", domain.ErrLaunchFailed, err)
	}
	job.state = jobActive
	job.mu.Unlock()
	launched = true

	s.watchers.Add(1)
	go s.watch(job)

	logger.Info.Printf("recording %d started: url=%s, output=%s, pid=%d", id, logger.SanitizeForLog(url), output, proc.PID())
	s.publish(domain.NewEvent(domain.EventStarted, rec))

	return &StartResult{Message: MessageStarted, ID: id}, nil
}

// watch waits for the encoder to exit and records the outcome, unless a
// stop already claimed the job.
func (s *RecorderService) watch(job *Job) {
	defer s.watchers.Done()

	<-job.encoder.Done()
	res := job.encoder.Result()

	if !job.claim(jobTerminal) {
		return
	}

	s.closeBrowser(job.ID, job.browser)
	s.registry.release(job)

	status, msg := domain.StatusCompleted, ""
	if !res.Success() {
		status, msg = domain.StatusFailed, res.Message()
		logger.Warn.Printf("recording %d failed: %s", job.ID, msg)
	} else {
		logger.Info.Printf("recording %d completed", job.ID)
	}

	s.persistTerminal(job.ID, status, msg)

	rec := &domain.Recording{ID: job.ID, URL: job.URL, Status: status, ErrorMessage: msg}
	if status == domain.StatusCompleted {
		s.publish(domain.NewEvent(domain.EventCompleted, rec))
	} else {
		s.publish(domain.NewEvent(domain.EventFailed, rec))
	}
}

// persistTerminal writes a status the caller can no longer be told about,
// so it retries before giving up with a log line.
func (s *RecorderService) persistTerminal(id int64, status domain.Status, msg string) {
	var affected int64
	err := s.backoff.Retry(context.Background(), statusWriteAttempts, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), statusWriteTimeout)
		defer cancel()
		n, err := s.store.UpdateStatus(ctx, id, status, msg)
		affected = n
		return err
	})
	if err != nil {
		logger.Error.Printf("recording %d: persist status %s: %v", id, status, err)
		return
	}
	if affected == 0 {
		logger.Warn.Printf("recording %d: no row to mark %s", id, status)
	}
}

// Stop interrupts a live recording and marks it stopped. The encoder gets
// StopTimeout to finalize the file before it is killed.
func (s *RecorderService) Stop(ctx context.Context, id int64) error {
	job, ok := s.registry.Lookup(id)
	if !ok || !job.claim(jobStopping) {
		return fmt.Errorf("%w: no active recording with id %d", domain.ErrNotFound, id)
	}

	s.stopEncoder(id, job.encoder)
	s.closeBrowser(id, job.browser)
	s.registry.release(job)

	n, err := s.store.UpdateStatus(context.WithoutCancel(ctx), id, domain.StatusStopped, "")
	if err != nil {
		logger.Error.Printf("recording %d: persist status stopped: %v", id, err)
	} else if n == 0 {
		logger.Warn.Printf("recording %d: no row to mark stopped", id)
	}

	job.mu.Lock()
	job.state = jobTerminal
	job.mu.Unlock()

	logger.Info.Printf("recording %d stopped", id)
	s.publish(domain.NewEvent(domain.EventStopped, &domain.Recording{ID: id, URL: job.URL, Status: domain.StatusStopped}))
	return nil
}

func (s *RecorderService) stopEncoder(id int64, proc port.EncoderProcess) {
	if err := proc.Interrupt(); err != nil {
		logger.Warn.Printf("recording %d: interrupt encoder: %v", id, err)
	}
	if waitDone(proc, s.opts.StopTimeout) {
		return
	}

	logger.Warn.Printf("recording %d: encoder ignored interrupt for %s, killing", id, s.opts.StopTimeout)
	if err := proc.Kill(); err != nil {
		logger.Warn.Printf("recording %d: kill encoder: %v", id, err)
	}
	if !waitDone(proc, s.opts.KillTimeout) {
		logger.Error.Printf("recording %d: encoder pid %d did not exit after kill", id, proc.PID())
	}
}

func waitDone(proc port.EncoderProcess, timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-proc.Done():
		return true
	case <-timer.C:
		return false
	}
}

// Delete removes the output file and the row of a recording. It never
// fails: a missing row or file and store errors are only logged. A live
// recording is not stopped.
func (s *RecorderService) Delete(ctx context.Context, id int64) {
	rec, err := s.store.Get(ctx, id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.Warn.Printf("recording %d: no row, nothing to remove from disk", id)
	case err != nil:
		logger.Error.Printf("recording %d: lookup before delete: %v", id, err)
	default:
		if err := os.Remove(rec.Output); err != nil {
			if os.IsNotExist(err) {
				logger.Warn.Printf("recording %d: file %s already gone", id, rec.Output)
			} else {
				logger.Error.Printf("recording %d: remove %s: %v", id, rec.Output, err)
			}
		}
	}

	if _, err := s.store.Delete(ctx, id); err != nil {
		logger.Error.Printf("recording %d: delete row: %v", id, err)
	}

	if _, live := s.registry.Lookup(id); live {
		logger.Warn.Printf("recording %d deleted while still recording", id)
	}

	logger.Info.Printf("recording %d deleted", id)
	s.publish(domain.Event{Type: domain.EventDeleted, RecordingID: id, At: time.Now().UTC()})
}

// Shutdown stops every live recording and waits for the exit watchers.
func (s *RecorderService) Shutdown(ctx context.Context) error {
	var wg sync.WaitGroup
	for _, job := range s.registry.Active() {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			if err := s.Stop(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
				logger.Error.Printf("recording %d: stop on shutdown: %v", id, err)
			}
		}(job.ID)
	}
	wg.Wait()

	done := make(chan struct{})
	go func() {
		s.watchers.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *RecorderService) teardown(id int64, session port.BrowserSession, proc port.EncoderProcess) {
	if err := proc.Kill(); err != nil {
		logger.Warn.Printf("recording %d: kill encoder: %v", id, err)
	}
	waitDone(proc, s.opts.KillTimeout)
	s.closeBrowser(id, session)
}

func (s *RecorderService) closeBrowser(id int64, session port.BrowserSession) {
	if session == nil {
		return
	}
	if err := session.Close(); err != nil {
		logger.Warn.Printf("recording %d: close browser: %v", id, err)
	}
}

func (s *RecorderService) publish(event domain.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(event); err != nil {
		logger.Warn.Printf("publish %s event for recording %d: %v", event.Type, event.RecordingID, err)
	}
}
