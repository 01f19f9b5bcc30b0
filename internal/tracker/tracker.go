// Package tracker owns the lifecycle of one video-generation job at a time:
// submission, status polling, timeout enforcement, and session history.
package tracker

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/payam49er/vidu/internal/infra"
	"github.com/payam49er/vidu/internal/vidu"
)

const (
	defaultPollInterval   = 5 * time.Second
	defaultPollCeiling    = 600 * time.Second
	defaultRequestTimeout = 30 * time.Second
)

var (
	// ErrJobActive is returned when a submission arrives while another job
	// is still submitting or polling.
	ErrJobActive = errors.New("tracker: a job is already in progress")
	// ErrSuperseded is returned when a submission resolved after the
	// tracker moved on to a different job; its result was discarded.
	ErrSuperseded = errors.New("tracker: job superseded")
)

// Client is the slice of the API client the tracker depends on.
type Client interface {
	CreateTextVideo(ctx context.Context, req vidu.TextToVideoRequest) (*vidu.CreateResult, error)
	CreateImageVideo(ctx context.Context, req vidu.ImageToVideoRequest) (*vidu.CreateResult, error)
	FetchCreations(ctx context.Context, taskID string) (*vidu.CreationsResult, error)
}

var _ Client = (*vidu.Client)(nil)

// Options configures a Tracker. Zero durations fall back to the production
// values (5s poll interval, 600s ceiling).
type Options struct {
	Client         Client
	PollInterval   time.Duration
	PollCeiling    time.Duration
	RequestTimeout time.Duration
	Logger         *infra.Logger
	// OnTransition observes every lifecycle transition with a detached
	// copy of the job. Called outside the tracker lock.
	OnTransition func(Job)
}

// Tracker coordinates submission, polling and timeout for the single
// in-flight job. All state mutation happens under one mutex; scheduled
// callbacks carry the generation they were created under and are dropped
// once the tracker has moved on.
type Tracker struct {
	client         Client
	interval       time.Duration
	ceiling        time.Duration
	requestTimeout time.Duration
	logger         *infra.Logger
	onTransition   func(Job)

	mu            sync.Mutex
	gen           uint64
	current       *Job
	history       []*Job
	pollTimer     *time.Timer
	deadlineTimer *time.Timer
}

// New constructs a Tracker in the idle state.
func New(opts Options) *Tracker {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ceiling := opts.PollCeiling
	if ceiling <= 0 {
		ceiling = defaultPollCeiling
	}
	requestTimeout := opts.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}
	logger := opts.Logger
	if logger == nil {
		discard := infra.Logger(zerolog.New(io.Discard))
		logger = &discard
	}
	return &Tracker{
		client:         opts.Client,
		interval:       interval,
		ceiling:        ceiling,
		requestTimeout: requestTimeout,
		logger:         logger,
		onTransition:   opts.OnTransition,
	}
}

// Status returns the lifecycle status of the current job, or idle.
func (t *Tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return StatusIdle
	}
	return t.current.Status
}

// Current returns a copy of the tracked job, if any.
func (t *Tracker) Current() (Job, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return Job{}, false
	}
	return t.current.clone(), true
}

// History returns detached copies of all session jobs, most recent first.
func (t *Tracker) History() []Job {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Job, 0, len(t.history))
	for _, j := range t.history {
		out = append(out, j.clone())
	}
	return out
}

// SubmitText submits a text-to-video job and starts polling it. Returns
// ErrJobActive without side effects while another job is in flight.
func (t *Tracker) SubmitText(ctx context.Context, req vidu.TextToVideoRequest) (Job, error) {
	norm, err := req.Normalize()
	if err != nil {
		return Job{}, err
	}
	return t.submit(ctx, JobKindTextToVideo, requestFromText(norm), func(ctx context.Context) (*vidu.CreateResult, error) {
		return t.client.CreateTextVideo(ctx, norm)
	})
}

// SubmitImage submits an image-to-video job and starts polling it.
func (t *Tracker) SubmitImage(ctx context.Context, req vidu.ImageToVideoRequest) (Job, error) {
	norm, err := req.Normalize()
	if err != nil {
		return Job{}, err
	}
	return t.submit(ctx, JobKindImageToVideo, requestFromImage(norm), func(ctx context.Context) (*vidu.CreateResult, error) {
		return t.client.CreateImageVideo(ctx, norm)
	})
}

func (t *Tracker) submit(ctx context.Context, kind JobKind, req Request, create func(context.Context) (*vidu.CreateResult, error)) (Job, error) {
	t.mu.Lock()
	if t.current != nil && t.current.Status.Active() {
		t.mu.Unlock()
		return Job{}, ErrJobActive
	}
	t.cancelTimersLocked()
	t.gen++
	gen := t.gen
	now := time.Now()
	t.current = &Job{
		Kind:      kind,
		Request:   req,
		Status:    StatusSubmitting,
		CreatedAt: now,
		UpdatedAt: now,
	}
	snapshot := t.current.clone()
	t.mu.Unlock()
	t.notify(snapshot)

	res, err := create(ctx)

	t.mu.Lock()
	if t.gen != gen {
		// Another submission or lookup took over while the create call
		// was in flight; its outcome no longer belongs to anyone.
		t.mu.Unlock()
		return Job{}, ErrSuperseded
	}
	if err != nil {
		t.current.Status = StatusFailed
		t.current.Message = err.Error()
		t.current.UpdatedAt = time.Now()
		snapshot := t.current.clone()
		t.mu.Unlock()
		t.notify(snapshot)
		return snapshot, err
	}
	t.current.TaskID = res.Task()
	t.current.RemoteState = res.State
	t.current.Status = StatusPolling
	t.current.UpdatedAt = time.Now()
	t.history = append([]*Job{t.current}, t.history...)
	t.scheduleLocked(gen)
	snapshot = t.current.clone()
	t.mu.Unlock()
	t.notify(snapshot)
	t.logger.Info().Str("task_id", snapshot.TaskID).Str("kind", string(kind)).Msg("tracker: job submitted, polling")
	return snapshot, nil
}

// Lookup performs a single status check for a user-supplied task id and
// tracks the outcome. It supersedes any in-flight job. A task already in the
// session history is updated in place rather than duplicated; an unknown id
// surfaces a not-found error without touching the history.
func (t *Tracker) Lookup(ctx context.Context, taskID string) (Job, error) {
	t.mu.Lock()
	t.cancelTimersLocked()
	t.gen++
	gen := t.gen
	now := time.Now()
	t.current = &Job{
		TaskID:    taskID,
		Kind:      JobKindLookup,
		Status:    StatusPolling,
		CreatedAt: now,
		UpdatedAt: now,
	}
	snapshot := t.current.clone()
	t.mu.Unlock()
	t.notify(snapshot)

	res, err := t.client.FetchCreations(ctx, taskID)

	t.mu.Lock()
	if t.gen != gen {
		t.mu.Unlock()
		return Job{}, ErrSuperseded
	}
	if err != nil {
		t.current.Status = StatusFailed
		t.current.Message = err.Error()
		t.current.UpdatedAt = time.Now()
		snapshot := t.current.clone()
		t.mu.Unlock()
		t.notify(snapshot)
		return snapshot, err
	}
	// Dedup on task id: a lookup of a known task updates the existing
	// history entry instead of appending a second one.
	if existing := t.findLocked(taskID); existing != nil {
		existing.Kind = t.current.Kind
		existing.UpdatedAt = time.Now()
		t.current = existing
	} else {
		t.history = append([]*Job{t.current}, t.history...)
	}
	t.applyCreationsLocked(res)
	if t.current.Status == StatusPolling {
		t.scheduleLocked(gen)
	}
	snapshot = t.current.clone()
	t.mu.Unlock()
	t.notify(snapshot)
	return snapshot, nil
}

// Reset returns the tracker to idle after a terminal or failed job. The
// session history is untouched.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.cancelTimersLocked()
	t.gen++
	t.current = nil
	t.mu.Unlock()
	t.notify(Job{Status: StatusIdle})
}

func (t *Tracker) findLocked(taskID string) *Job {
	for _, j := range t.history {
		if j.TaskID == taskID {
			return j
		}
	}
	return nil
}

// scheduleLocked arms the poll-interval and deadline timers for the given
// generation. Both fire on their own goroutines and re-check the generation
// before touching any state.
func (t *Tracker) scheduleLocked(gen uint64) {
	t.pollTimer = time.AfterFunc(t.interval, func() { t.pollOnce(gen) })
	t.deadlineTimer = time.AfterFunc(t.ceiling, func() { t.timeout(gen) })
}

func (t *Tracker) cancelTimersLocked() {
	if t.pollTimer != nil {
		t.pollTimer.Stop()
		t.pollTimer = nil
	}
	if t.deadlineTimer != nil {
		t.deadlineTimer.Stop()
		t.deadlineTimer = nil
	}
}

func (t *Tracker) pollOnce(gen uint64) {
	t.mu.Lock()
	if t.gen != gen || t.current == nil || t.current.Status != StatusPolling {
		t.mu.Unlock()
		return
	}
	taskID := t.current.TaskID
	t.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), t.requestTimeout)
	res, err := t.client.FetchCreations(ctx, taskID)
	cancel()

	t.mu.Lock()
	// Success-wins: a response that arrives before the deadline timer has
	// actually fired is applied even if the ceiling has elapsed on the
	// wall clock. Once the job left polling, the response is stale.
	if t.gen != gen || t.current == nil || t.current.Status != StatusPolling {
		t.mu.Unlock()
		return
	}
	if err != nil {
		t.cancelTimersLocked()
		t.current.Status = StatusFailed
		t.current.Message = err.Error()
		t.current.UpdatedAt = time.Now()
		snapshot := t.current.clone()
		t.mu.Unlock()
		t.notify(snapshot)
		t.logger.Warn().Str("task_id", taskID).Err(err).Msg("tracker: poll failed")
		return
	}
	t.applyCreationsLocked(res)
	if t.current.Status == StatusPolling {
		// Not terminal yet; arm the next interval, keep the deadline.
		t.pollTimer = time.AfterFunc(t.interval, func() { t.pollOnce(gen) })
		t.mu.Unlock()
		return
	}
	snapshot := t.current.clone()
	t.mu.Unlock()
	t.notify(snapshot)
}

// applyCreationsLocked folds one status response into the current job. A
// terminal outcome stops both timers; anything else leaves the job polling.
func (t *Tracker) applyCreationsLocked(res *vidu.CreationsResult) {
	j := t.current
	j.RemoteState = res.State
	j.ErrCode = res.ErrCode
	j.Credits = res.Credits
	j.UpdatedAt = time.Now()
	switch {
	case res.State == vidu.StateSuccess && len(res.Creations) > 0:
		t.cancelTimersLocked()
		first := res.Creations[0]
		j.Status = StatusCompleted
		j.Result = &Result{ID: first.ID, URL: first.URL, CoverURL: first.CoverURL}
	case res.State == vidu.StateSuccess:
		t.cancelTimersLocked()
		j.Status = StatusFailed
		j.Message = "task succeeded but returned no creations"
	case res.State == vidu.StateFailed, res.State == vidu.StateError, res.ErrCode != "":
		t.cancelTimersLocked()
		j.Status = StatusFailed
		if res.ErrCode != "" {
			j.Message = res.ErrCode
		} else {
			j.Message = "generation failed"
		}
	default:
		j.Status = StatusPolling
	}
}

func (t *Tracker) timeout(gen uint64) {
	t.mu.Lock()
	if t.gen != gen || t.current == nil || t.current.Status != StatusPolling {
		t.mu.Unlock()
		return
	}
	t.cancelTimersLocked()
	t.current.Status = StatusTimedOut
	t.current.Message = "generation timed out"
	t.current.UpdatedAt = time.Now()
	snapshot := t.current.clone()
	t.mu.Unlock()
	t.notify(snapshot)
	t.logger.Warn().Str("task_id", snapshot.TaskID).Dur("ceiling", t.ceiling).Msg("tracker: polling timed out")
}

func (t *Tracker) notify(j Job) {
	if t.onTransition != nil {
		t.onTransition(j)
	}
}
