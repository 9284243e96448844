package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/erp/usability/internal/infrastructure/cache"
	"github.com/erp/usability/internal/infrastructure/logger"
	"github.com/erp/usability/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Job is a unit of background work run on an interval
type Job interface {
	Name() string
	Execute(ctx context.Context) error
}

// JobStatus represents the outcome of the last run of a job
type JobStatus string

const (
	JobStatusPending JobStatus = "PENDING"
	JobStatusRunning JobStatus = "RUNNING"
	JobStatusSuccess JobStatus = "SUCCESS"
	JobStatusFailed  JobStatus = "FAILED"
	JobStatusSkipped JobStatus = "SKIPPED"
)

// JobState is a snapshot of a registered job
type JobState struct {
	Name           string        `json:"name"`
	Interval       time.Duration `json:"interval"`
	Status         JobStatus     `json:"status"`
	LastRunID      string        `json:"last_run_id,omitempty"`
	LastStartedAt  *time.Time    `json:"last_started_at,omitempty"`
	LastFinishedAt *time.Time    `json:"last_finished_at,omitempty"`
	LastError      string        `json:"last_error,omitempty"`
	Runs           int           `json:"runs"`
	// Scheduled is false for jobs that only run on demand
	Scheduled bool `json:"scheduled"`
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	JobTimeout time.Duration
	LockTTL    time.Duration
}

// DefaultSchedulerConfig returns default scheduler configuration
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		JobTimeout: 30 * time.Minute,
		LockTTL:    35 * time.Minute,
	}
}

type entry struct {
	job       Job
	interval  time.Duration
	scheduled bool
	running   bool
	state     JobState
}

// Scheduler runs registered jobs, each on its own ticker.
// A job never overlaps itself: within the process a running flag guards it,
// across processes the locker does.
type Scheduler struct {
	config  SchedulerConfig
	locker  cache.Locker
	logger  *zap.Logger
	metrics *telemetry.JobMetrics

	entries map[string]*entry

	loopCtx   context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewScheduler creates a new scheduler instance
func NewScheduler(config SchedulerConfig, locker cache.Locker, logger *zap.Logger) *Scheduler {
	if locker == nil {
		locker = cache.NewInMemoryLocker()
	}
	if config.JobTimeout <= 0 {
		config.JobTimeout = DefaultSchedulerConfig().JobTimeout
	}
	return &Scheduler{
		config:  config,
		locker:  locker,
		logger:  logger,
		entries: make(map[string]*entry),
	}
}

// UseMetrics records every finished run on m
func (s *Scheduler) UseMetrics(m *telemetry.JobMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = m
}

// Register adds a job run every interval once the scheduler starts
func (s *Scheduler) Register(job Job, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: job %s needs a positive interval", ErrInvalidConfig, job.Name())
	}
	return s.register(job, interval, true)
}

// RegisterOnDemand adds a job that never ticks. It only runs through RunNow.
func (s *Scheduler) RegisterOnDemand(job Job) error {
	return s.register(job, 0, false)
}

func (s *Scheduler) register(job Job, interval time.Duration, scheduled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := job.Name()
	if _, ok := s.entries[name]; ok {
		return fmt.Errorf("%w: %s", ErrJobAlreadyRegistered, name)
	}
	e := &entry{
		job:       job,
		interval:  interval,
		scheduled: scheduled,
		state:     JobState{Name: name, Interval: interval, Status: JobStatusPending, Scheduled: scheduled},
	}
	s.entries[name] = e

	if s.isRunning && scheduled {
		s.startLoop(s.loopCtx, e)
	}
	return nil
}

// Start starts one ticker loop per registered job
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isRunning {
		return nil
	}
	s.isRunning = true

	ctx, cancel := context.WithCancel(ctx)
	s.loopCtx = ctx
	s.cancel = cancel
	scheduled := 0
	for _, e := range s.entries {
		if !e.scheduled {
			continue
		}
		s.startLoop(ctx, e)
		scheduled++
	}

	s.logger.Info("Job scheduler started",
		zap.Int("jobs", len(s.entries)),
		zap.Int("scheduled", scheduled),
		zap.Duration("job_timeout", s.config.JobTimeout),
	)
	return nil
}

// Stop cancels the loops and waits for running jobs to return
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return ErrSchedulerNotRunning
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Job scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Job scheduler stop timed out")
		return ctx.Err()
	}
}

// IsRunning reports whether the loops are active
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

// RunNow runs a job immediately and waits for it. It returns the run id.
func (s *Scheduler) RunNow(ctx context.Context, name string) (string, error) {
	s.mu.Lock()
	e, ok := s.entries[name]
	s.mu.Unlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrJobNotFound, name)
	}
	return s.run(ctx, e)
}

// Status returns a snapshot of every registered job sorted by name
func (s *Scheduler) Status() []JobState {
	s.mu.Lock()
	defer s.mu.Unlock()

	states := make([]JobState, 0, len(s.entries))
	for _, e := range s.entries {
		states = append(states, e.state)
	}
	sort.Slice(states, func(i, j int) bool {
		return states[i].Name < states[j].Name
	})
	return states
}

func (s *Scheduler) startLoop(ctx context.Context, e *entry) {
	s.wg.Add(1)
	go s.loop(ctx, e)
}

// loop runs the job on every tick until the context is cancelled
func (s *Scheduler) loop(ctx context.Context, e *entry) {
	defer s.wg.Done()

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, err := s.run(ctx, e)
			if errors.Is(err, ErrJobAlreadyRunning) || errors.Is(err, ErrLockNotObtained) {
				s.logger.Debug("Skipping tick", zap.String("job", e.job.Name()), zap.Error(err))
			}
		}
	}
}

// run executes one run of the job under the in-process guard and the job lock
func (s *Scheduler) run(ctx context.Context, e *entry) (string, error) {
	name := e.job.Name()

	s.mu.Lock()
	if e.running {
		s.mu.Unlock()
		return "", fmt.Errorf("%w: %s", ErrJobAlreadyRunning, name)
	}
	e.running = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		e.running = false
		s.mu.Unlock()
	}()

	runID := uuid.NewString()
	lock, err := s.locker.Obtain(ctx, name, s.lockTTL())
	if errors.Is(err, cache.ErrLockNotObtained) {
		s.finish(e, runID, time.Now(), JobStatusSkipped, "")
		return runID, fmt.Errorf("%w: %s", ErrLockNotObtained, name)
	}
	if err != nil {
		return runID, fmt.Errorf("failed to obtain lock for job %s: %w", name, err)
	}
	defer func() {
		if err := lock.Release(context.Background()); err != nil {
			s.logger.Warn("Failed to release job lock", zap.String("job", name), zap.Error(err))
		}
	}()

	jobCtx, cancel := context.WithTimeout(ctx, s.config.JobTimeout)
	defer cancel()
	jobCtx, span := telemetry.StartJobSpan(jobCtx, name, runID)
	defer span.End()
	jobCtx, log := logger.WithJob(jobCtx, s.logger, name, runID)

	startedAt := time.Now()
	s.begin(e, runID, startedAt)
	log.Info("Job started")

	err = e.job.Execute(jobCtx)
	if err != nil {
		telemetry.RecordError(span, err)
		log.Error("Job failed", zap.Duration("duration", time.Since(startedAt)), zap.Error(err))
		s.finish(e, runID, startedAt, JobStatusFailed, err.Error())
		s.jobMetrics().RecordRun(ctx, name, string(JobStatusFailed), time.Since(startedAt))
		return runID, err
	}

	log.Info("Job completed", zap.Duration("duration", time.Since(startedAt)))
	s.finish(e, runID, startedAt, JobStatusSuccess, "")
	s.jobMetrics().RecordRun(ctx, name, string(JobStatusSuccess), time.Since(startedAt))
	return runID, nil
}

func (s *Scheduler) begin(e *entry, runID string, startedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.state.Status = JobStatusRunning
	e.state.LastRunID = runID
	e.state.LastStartedAt = &startedAt
	e.state.LastError = ""
}

func (s *Scheduler) finish(e *entry, runID string, startedAt time.Time, status JobStatus, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	e.state.Status = status
	e.state.LastRunID = runID
	e.state.LastError = errMsg
	if status == JobStatusSkipped {
		return
	}
	e.state.LastStartedAt = &startedAt
	e.state.LastFinishedAt = &now
	e.state.Runs++
}

func (s *Scheduler) jobMetrics() *telemetry.JobMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics
}

func (s *Scheduler) lockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return s.config.JobTimeout + time.Minute
}
