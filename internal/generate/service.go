package generate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/ytget/yt-playlist-maker/internal/model"
	"github.com/ytget/yt-playlist-maker/internal/platform"
)

// Progress checkpoints, in percent
const (
	PercentStarting   = 0.0
	PercentParsing    = 10.0
	PercentChunking   = 25.0
	PercentProcessing = 35.0
	PercentChunkSpan  = 60.0 // processing covers 35% to 95%
	PercentFinalizing = 95.0
	PercentDone       = 100.0
)

// Default status messages; the UI localizes by Phase
const (
	MsgStarting   = "Starting..."
	MsgParsing    = "Parsing URLs..."
	MsgNoValid    = "No valid URLs found"
	MsgChunking   = "Creating chunks..."
	MsgProcessing = "Processing %d chunks..."
	MsgChunk      = "Processing chunk %d/%d..."
	MsgFinalizing = "Preparing results..."
	MsgDone       = "Done!"
	MsgCancelled  = "Cancelled"
	MsgFailed     = "Generation failed"
)

// RunIDPrefix prefixes every generated run ID
const RunIDPrefix = "run-"

// Service runs playlist generations one at a time
type Service struct {
	mu          sync.RWMutex
	state       model.RunState
	lastResults []model.PlaylistResult // results of the last completed run
	cancel      context.CancelFunc

	parser Parser
	delays Delays
	logger *log.Logger
	now    func() time.Time

	onProgress  func(model.Progress)
	onStats     func(model.RunStats)
	onCompleted func([]model.PlaylistResult)
	onCancelled func()
}

// NewService creates a new generation service using parser for input classification
func NewService(parser Parser) *Service {
	return &Service{
		state:  model.RunState{Status: model.RunStatusIdle},
		parser: parser,
		delays: DefaultDelays(),
		logger: log.Default().WithPrefix("generate"),
		now:    time.Now,
	}
}

// SetProgressCallback sets the callback invoked for every progress report
func (s *Service) SetProgressCallback(callback func(model.Progress)) {
	s.onProgress = callback
}

// SetStatsCallback sets the callback invoked once input has been parsed
func (s *Service) SetStatsCallback(callback func(model.RunStats)) {
	s.onStats = callback
}

// SetCompletedCallback sets the callback invoked when a run produced results
func (s *Service) SetCompletedCallback(callback func([]model.PlaylistResult)) {
	s.onCompleted = callback
}

// SetCancelledCallback sets the callback invoked after a run was cancelled
func (s *Service) SetCancelledCallback(callback func()) {
	s.onCancelled = callback
}

// SetDelays replaces the pacing used by subsequent runs
func (s *Service) SetDelays(d Delays) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays = d
}

// SetLogger replaces the service logger
func (s *Service) SetLogger(logger *log.Logger) {
	if logger == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = logger
}

// State returns a snapshot of the current or last run
func (s *Service) State() model.RunState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Results returns the results of the last completed run.
// Cancelled and failed runs never replace them.
func (s *Service) Results() []model.PlaylistResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.PlaylistResult, len(s.lastResults))
	copy(out, s.lastResults)
	return out
}

// IsRunning reports whether a run is active
func (s *Service) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Status.IsActive()
}

// Cancel requests cancellation of the active run. The run observes it at the
// next chunk boundary or before finalizing.
func (s *Service) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Status.IsActive() || s.cancel == nil {
		return ErrNoActiveRun
	}
	s.logger.Info("cancel requested", "run", s.state.ID)
	s.cancel()
	return nil
}

// Start runs a generation on the calling goroutine and returns its final state.
// A cancelled run is not an error: the returned state has status Cancelled.
func (s *Service) Start(ctx context.Context, input string, chunkSize model.ChunkSize) (state model.RunState, err error) {
	if platform.IsBlank(input) {
		return s.State(), ErrEmptyInput
	}

	s.mu.Lock()
	if !s.state.Status.CanStart() {
		current := s.state.Clone()
		s.mu.Unlock()
		return current, ErrRunInProgress
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = model.NewRunState(generateRunID(), chunkSize, s.now())
	runID := s.state.ID
	delays := s.delays
	logger := s.logger
	s.mu.Unlock()

	defer cancel()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRunFailed, r)
			logger.Error("run aborted", "run", runID, "err", err)
			state = s.fail(err)
		}
	}()

	logger.Info("run started", "run", runID, "chunk_size", chunkSize.String())
	return s.run(runCtx, input, chunkSize, delays), nil
}

// run executes the phases of one generation
func (s *Service) run(ctx context.Context, input string, chunkSize model.ChunkSize, delays Delays) model.RunState {
	s.report(model.PhaseStarting, PercentStarting, MsgStarting, 0, 0)

	entries := s.parser.ParseInput(input)
	stats := model.ComputeStats(entries)
	s.setStats(stats)
	s.report(model.PhaseParsing, PercentParsing, MsgParsing, 0, 0)

	valid := model.ValidEntries(entries)
	if len(valid) == 0 {
		s.report(model.PhaseNoValid, PercentDone, MsgNoValid, 0, 0)
		return s.complete([]model.PlaylistResult{}, MsgNoValid)
	}

	s.report(model.PhaseChunking, PercentChunking, MsgChunking, 0, 0)
	sleep(ctx, delays.AfterChunking)

	chunks := ChunkEntries(valid, chunkSize)
	total := len(chunks)

	s.report(model.PhaseProcessing, PercentProcessing, fmt.Sprintf(MsgProcessing, total), 0, total)
	sleep(ctx, delays.BeforeProcessing)

	results := make([]model.PlaylistResult, 0, total)
	perChunk := delays.PerChunk(total)
	for i, chunk := range chunks {
		if ctx.Err() != nil {
			return s.cancelled()
		}

		percent := PercentProcessing + float64(i)/float64(total)*PercentChunkSpan
		s.report(model.PhaseProcessing, percent, fmt.Sprintf(MsgChunk, i+1, total), i+1, total)

		results = append(results, NewPlaylistResult(chunk, i+1, total))
		sleep(ctx, perChunk)
	}

	if ctx.Err() != nil {
		return s.cancelled()
	}
	s.report(model.PhaseFinalizing, PercentFinalizing, MsgFinalizing, 0, total)
	sleep(ctx, delays.BeforeDone)
	if ctx.Err() != nil {
		return s.cancelled()
	}

	s.report(model.PhaseDone, PercentDone, MsgDone, 0, total)
	return s.complete(results, MsgDone)
}

// report records and publishes a progress snapshot
func (s *Service) report(phase model.Phase, percent float64, message string, chunk, totalChunks int) {
	s.mu.Lock()
	p := model.NewProgress(phase, percent, message, s.state.Elapsed(s.now()))
	p.RunID = s.state.ID
	p.Chunk = chunk
	p.TotalChunks = totalChunks
	s.state.Progress = p
	logger := s.logger
	s.mu.Unlock()

	logger.Debug("progress", "run", p.RunID, "phase", p.Phase, "percent", p.Rounded)
	if s.onProgress != nil {
		s.onProgress(p)
	}
}

func (s *Service) setStats(stats model.RunStats) {
	s.mu.Lock()
	s.state.Stats = stats
	logger := s.logger
	runID := s.state.ID
	s.mu.Unlock()

	logger.Info("input parsed", "run", runID, "total", stats.Total, "valid", stats.Valid, "invalid", stats.Invalid)
	if s.onStats != nil {
		s.onStats(stats)
	}
}

// complete moves the run to Completed. Only runs with results notify onCompleted.
// Results() picks up the run once onCompleted has returned.
func (s *Service) complete(results []model.PlaylistResult, message string) model.RunState {
	s.mu.Lock()
	s.state.Status = model.RunStatusCompleted
	s.state.Results = results
	s.state.Message = message
	s.state.FinishedAt = s.now()
	s.cancel = nil
	final := s.state.Clone()
	logger := s.logger
	s.mu.Unlock()

	logger.Info("run completed", "run", final.ID, "playlists", len(results), "elapsed", model.FormatElapsed(final.Elapsed(final.FinishedAt)))
	if len(results) > 0 && s.onCompleted != nil {
		s.onCompleted(final.Results)
	}

	s.mu.Lock()
	if s.state.ID == final.ID && s.state.Status == model.RunStatusCompleted {
		s.lastResults = results
	}
	s.mu.Unlock()
	return final
}

// cancelled moves the run to Cancelled, discards its partial results and
// resets progress to zero
func (s *Service) cancelled() model.RunState {
	s.mu.Lock()
	s.state.Status = model.RunStatusCancelled
	s.state.Results = nil
	s.state.Message = MsgCancelled
	s.state.FinishedAt = s.now()
	s.cancel = nil
	logger := s.logger
	runID := s.state.ID
	s.mu.Unlock()

	s.report(model.PhaseCancelled, PercentStarting, MsgCancelled, 0, 0)
	logger.Info("run cancelled", "run", runID)
	if s.onCancelled != nil {
		s.onCancelled()
	}
	return s.State()
}

// fail moves the run to Failed after an unexpected fault
func (s *Service) fail(err error) model.RunState {
	s.mu.Lock()
	s.state.Status = model.RunStatusFailed
	s.state.Results = nil
	s.state.Message = MsgFailed
	s.state.LastError = err.Error()
	s.state.FinishedAt = s.now()
	s.cancel = nil
	p := model.NewProgress(model.PhaseFailed, PercentStarting, MsgFailed, s.state.Elapsed(s.state.FinishedAt))
	p.RunID = s.state.ID
	s.state.Progress = p
	final := s.state.Clone()
	s.mu.Unlock()

	return final
}

// generateRunID generates a unique run ID
func generateRunID() string {
	return RunIDPrefix + uuid.NewString()
}
