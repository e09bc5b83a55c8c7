package generate

import (
	"context"

	"github.com/ytget/yt-playlist-maker/internal/model"
)

// Parser classifies raw input lines as video entries.
type Parser interface {
	ParseInput(input string) []model.VideoEntry
}

// Generator defines the interface for the playlist generation service.
type Generator interface {
	SetProgressCallback(func(model.Progress))
	SetStatsCallback(func(model.RunStats))
	SetCompletedCallback(func([]model.PlaylistResult))
	SetCancelledCallback(func())

	// Start runs a generation on the calling goroutine and returns its final state
	Start(ctx context.Context, input string, chunkSize model.ChunkSize) (model.RunState, error)

	// Cancel requests cooperative cancellation of the active run
	Cancel() error

	State() model.RunState
	Results() []model.PlaylistResult
	IsRunning() bool

	SetDelays(d Delays)
}
