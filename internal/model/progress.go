package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Phase identifies the step of a run a progress report belongs to
type Phase string

const (
	PhaseStarting   Phase = "starting"
	PhaseParsing    Phase = "parsing"
	PhaseChunking   Phase = "chunking"
	PhaseProcessing Phase = "processing"
	PhaseFinalizing Phase = "finalizing"
	PhaseDone       Phase = "done"
	PhaseNoValid    Phase = "no_valid"
	PhaseCancelled  Phase = "cancelled"
	PhaseFailed     Phase = "failed"
)

// Percent bounds
const (
	MinPercent = 0.0
	MaxPercent = 100.0
)

// Progress is a single progress report emitted during a run
type Progress struct {
	RunID       string
	Phase       Phase
	Percent     float64 // 0 to 100, continuous
	Rounded     int     // 0 to 100, for display
	Message     string
	Chunk       int // 1-based chunk being processed, 0 outside PhaseProcessing
	TotalChunks int
	Elapsed     time.Duration
}

// ClampPercent limits p to [0, 100]
func ClampPercent(p float64) float64 {
	if math.IsNaN(p) {
		return MinPercent
	}
	return math.Max(MinPercent, math.Min(MaxPercent, p))
}

// NewProgress creates a progress report with a clamped percentage
func NewProgress(phase Phase, percent float64, message string, elapsed time.Duration) Progress {
	clamped := ClampPercent(percent)
	return Progress{
		Phase:   phase,
		Percent: clamped,
		Rounded: int(math.Round(clamped)),
		Message: message,
		Elapsed: elapsed,
	}
}

// Fraction returns the percentage as 0.0 to 1.0 for progress bars
func (p Progress) Fraction() float64 {
	return p.Percent / MaxPercent
}

// GetElapsedString returns elapsed time formatted as mm:ss or hh:mm:ss
func (p Progress) GetElapsedString() string {
	return FormatElapsed(p.Elapsed)
}

// FormatElapsed rounds d to whole seconds and formats it as mm:ss or hh:mm:ss
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(math.Round(d.Seconds()))

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var b strings.Builder
	if hours > 0 {
		b.WriteString(fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds))
		return b.String()
	}
	b.WriteString(fmt.Sprintf("%02d:%02d", minutes, seconds))
	return b.String()
}
