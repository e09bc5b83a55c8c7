package export

import (
	"github.com/ytget/yt-playlist-maker/internal/model"
)

// Exporter defines the interface for the export service.
type Exporter interface {
	SetHeader(header []string)
	Render(results []model.PlaylistResult) (string, error)
	Export(dir string, results []model.PlaylistResult) (string, error)
}
