package model

import (
	"time"
)

// RunState is a snapshot of one generation run
type RunState struct {
	ID         string
	Status     RunStatus
	ChunkSize  ChunkSize
	Stats      RunStats
	Progress   Progress
	Results    []PlaylistResult // set only when Status is Completed
	Message    string           // final status text
	LastError  string           // set only when Status is Failed
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewRunState creates the state of a freshly started run
func NewRunState(id string, chunkSize ChunkSize, startedAt time.Time) RunState {
	return RunState{
		ID:        id,
		Status:    RunStatusRunning,
		ChunkSize: chunkSize,
		StartedAt: startedAt,
	}
}

// Elapsed returns run duration; for active runs it is measured against now
func (rs RunState) Elapsed(now time.Time) time.Duration {
	if rs.StartedAt.IsZero() {
		return 0
	}
	if !rs.FinishedAt.IsZero() {
		return rs.FinishedAt.Sub(rs.StartedAt)
	}
	return now.Sub(rs.StartedAt)
}

// HasResults returns true if the run completed with at least one playlist
func (rs RunState) HasResults() bool {
	return rs.Status == RunStatusCompleted && len(rs.Results) > 0
}

// Clone returns a copy that shares no slices with rs
func (rs RunState) Clone() RunState {
	c := rs
	if rs.Results != nil {
		c.Results = make([]PlaylistResult, len(rs.Results))
		copy(c.Results, rs.Results)
	}
	return c
}
