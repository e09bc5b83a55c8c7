package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ytget/yt-playlist-maker/internal/model"
	"github.com/ytget/yt-playlist-maker/internal/platform"
)

// ErrNoResults is returned when there is nothing to export
var ErrNoResults = errors.New("no playlists to export")

// Service writes playlist results as CSV files
type Service struct {
	mu     sync.RWMutex
	header []string
	logger *log.Logger
	now    func() time.Time
}

// NewService creates a new export service with the English header
func NewService() *Service {
	return &Service{
		header: DefaultHeader,
		logger: log.Default().WithPrefix("export"),
		now:    time.Now,
	}
}

// SetHeader replaces the header row, e.g. after a language change
func (s *Service) SetHeader(header []string) {
	if len(header) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.header = append([]string(nil), header...)
}

// SetLogger replaces the service logger
func (s *Service) SetLogger(logger *log.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Render returns the CSV text for results
func (s *Service) Render(results []model.PlaylistResult) (string, error) {
	if len(results) == 0 {
		return "", ErrNoResults
	}
	s.mu.RLock()
	header := s.header
	s.mu.RUnlock()
	return BuildCSV(header, results), nil
}

// Export writes results to a new timestamped CSV file in dir and returns its path
func (s *Service) Export(dir string, results []model.PlaylistResult) (string, error) {
	content, err := s.Render(results)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(s.now()))
	if err := platform.WriteFile(path, []byte(content)); err != nil {
		return "", fmt.Errorf("failed to export playlists: %w", err)
	}

	s.logger.Info("playlists exported", "path", path, "playlists", len(results), "videos", model.TotalVideos(results))
	return path, nil
}
