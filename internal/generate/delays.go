package generate

import (
	"context"
	"time"
)

// Default pacing of a run
const (
	DefaultAfterChunking    = 200 * time.Millisecond
	DefaultBeforeProcessing = 300 * time.Millisecond
	DefaultBeforeDone       = 300 * time.Millisecond
	DefaultMaxPerChunk      = 500 * time.Millisecond
	DefaultPerChunkBudget   = 2000 * time.Millisecond
)

// Delays paces the phases of a run so the UI can render each step
type Delays struct {
	AfterChunking    time.Duration
	BeforeProcessing time.Duration
	BeforeDone       time.Duration
	MaxPerChunk      time.Duration
	PerChunkBudget   time.Duration // spread across all chunks, capped by MaxPerChunk
}

// DefaultDelays returns the pacing used by the desktop app
func DefaultDelays() Delays {
	return Delays{
		AfterChunking:    DefaultAfterChunking,
		BeforeProcessing: DefaultBeforeProcessing,
		BeforeDone:       DefaultBeforeDone,
		MaxPerChunk:      DefaultMaxPerChunk,
		PerChunkBudget:   DefaultPerChunkBudget,
	}
}

// NoDelays disables all pacing
func NoDelays() Delays {
	return Delays{}
}

// PerChunk returns min(MaxPerChunk, PerChunkBudget/n)
func (d Delays) PerChunk(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	per := d.PerChunkBudget / time.Duration(n)
	if per > d.MaxPerChunk {
		return d.MaxPerChunk
	}
	return per
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
