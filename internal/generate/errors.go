package generate

import "errors"

var (
	// ErrEmptyInput is returned when the input is empty after trimming
	ErrEmptyInput = errors.New("no input: paste at least one YouTube URL or video ID")

	// ErrRunInProgress is returned by Start while another run is active
	ErrRunInProgress = errors.New("generation already in progress")

	// ErrNoActiveRun is returned by Cancel when nothing is running
	ErrNoActiveRun = errors.New("no active generation run")

	// ErrRunFailed wraps an unexpected fault that aborted a run
	ErrRunFailed = errors.New("generation failed")
)
