package scheduler

import "errors"

var (
	// ErrSchedulerNotRunning is returned when stopping a scheduler that was never started
	ErrSchedulerNotRunning = errors.New("scheduler is not running")

	// ErrJobNotFound is returned when a job name is not registered
	ErrJobNotFound = errors.New("job not found")

	// ErrJobAlreadyRunning is returned when a run of the same job is in progress in this process
	ErrJobAlreadyRunning = errors.New("job is already running")

	// ErrJobAlreadyRegistered is returned when two jobs share a name
	ErrJobAlreadyRegistered = errors.New("job already registered")

	// ErrLockNotObtained is returned when another process holds the job lock
	ErrLockNotObtained = errors.New("job lock held by another process")

	// ErrInvalidConfig is returned when configuration is invalid
	ErrInvalidConfig = errors.New("invalid scheduler configuration")
)
