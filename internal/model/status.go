package model

// RunStatus represents the state of a playlist generation run
type RunStatus string

const (
	// RunStatusIdle means no run has been started yet
	RunStatusIdle RunStatus = "Idle"

	// RunStatusRunning means a run is parsing or generating chunks
	RunStatusRunning RunStatus = "Running"

	// RunStatusCompleted means the run finished and its results are final
	RunStatusCompleted RunStatus = "Completed"

	// RunStatusCancelled means the run was stopped by the user; results are discarded
	RunStatusCancelled RunStatus = "Cancelled"

	// RunStatusFailed means the run aborted on an unexpected fault
	RunStatusFailed RunStatus = "Failed"
)

// String returns the string representation of RunStatus
func (rs RunStatus) String() string {
	return string(rs)
}

// IsActive returns true while a run is in progress
func (rs RunStatus) IsActive() bool {
	return rs == RunStatusRunning
}

// CanStart reports whether a new run may be started from this state
func (rs RunStatus) CanStart() bool {
	return !rs.IsActive()
}
