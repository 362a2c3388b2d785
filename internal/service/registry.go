package service

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bnema/pagerec/internal/domain"
	"github.com/bnema/pagerec/internal/port"
)

type jobState int

const (
	jobLaunching jobState = iota
	jobActive
	jobStopping
	jobTerminal
)

// Job is the in-memory side of a recording: the browser and encoder
// processes that back it. Handles are set once by Register and never
// change afterwards.
type Job struct {
	ID  int64
	URL string

	browser port.BrowserSession
	encoder port.EncoderProcess

	// mu serializes status transitions. Only the goroutine that moves the
	// job out of jobActive may persist a terminal status.
	mu    sync.Mutex
	state jobState
}

func (j *Job) Browser() port.BrowserSession { return j.browser }

func (j *Job) Encoder() port.EncoderProcess { return j.encoder }

// claim moves an active job to next and reports whether the caller won.
func (j *Job) claim(next jobState) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.state != jobActive {
		return false
	}
	j.state = next
	return true
}

// Registry maps recording ids to live jobs. A job is reserved before any
// process is launched so concurrent starts of the same id or url are
// rejected up front.
type Registry struct {
	mu   sync.RWMutex
	jobs map[int64]*Job
	urls map[string]int64
}

func NewRegistry() *Registry {
	return &Registry{
		jobs: make(map[int64]*Job),
		urls: make(map[string]int64),
	}
}

func (r *Registry) Reserve(id int64, url string) (*Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[id]; exists {
		return nil, fmt.Errorf("%w: id %d", domain.ErrDuplicateID, id)
	}
	if other, exists := r.urls[url]; exists && url != "" {
		return nil, fmt.Errorf("%w: %s (recording %d)", domain.ErrDuplicateURL, url, other)
	}

	job := &Job{ID: id, URL: url, state: jobLaunching}
	r.jobs[id] = job
	if url != "" {
		r.urls[url] = id
	}
	return job, nil
}

// Register attaches the launched processes to id. An id that already has
// processes attached is rejected with ErrDuplicateID.
func (r *Registry) Register(id int64, browser port.BrowserSession, encoder port.EncoderProcess) (*Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, exists := r.jobs[id]
	if !exists {
		job = &Job{ID: id, state: jobLaunching}
		r.jobs[id] = job
	}
	if job.encoder != nil || job.browser != nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrDuplicateID, id)
	}

	job.browser = browser
	job.encoder = encoder
	return job, nil
}

// Lookup returns the job for id once its processes are registered.
func (r *Registry) Lookup(id int64) (*Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok || job.encoder == nil {
		return nil, false
	}
	return job, true
}

func (r *Registry) Remove(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if job, ok := r.jobs[id]; ok {
		r.dropLocked(job)
	}
}

// release removes job only if it is still the entry registered for its id.
func (r *Registry) release(job *Job) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.jobs[job.ID] == job {
		r.dropLocked(job)
	}
}

func (r *Registry) dropLocked(job *Job) {
	delete(r.jobs, job.ID)
	if job.URL != "" && r.urls[job.URL] == job.ID {
		delete(r.urls, job.URL)
	}
}

// Active returns registered jobs ordered by id.
func (r *Registry) Active() []*Job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]*Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		if job.encoder != nil {
			jobs = append(jobs, job)
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ID < jobs[j].ID })
	return jobs
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs)
}
