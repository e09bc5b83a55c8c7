package model

import "fmt"

// Label formats used when no localized format is supplied
const (
	DefaultMultiPartLabelFormat  = "Playlist %d/%d (%d videos)"
	DefaultSinglePartLabelFormat = "Playlist (%d videos)"
)

// PlaylistResult is one generated watch_videos link covering one chunk
type PlaylistResult struct {
	URL         string `json:"url"`
	Count       int    `json:"count"`
	ChunkIndex  int    `json:"chunk_index"` // 1-based
	TotalChunks int    `json:"total_chunks"`
}

// IsMultiPart returns true when the run produced more than one playlist
func (p PlaylistResult) IsMultiPart() bool {
	return p.TotalChunks > 1
}

// Label returns the English display label for the playlist link
func (p PlaylistResult) Label() string {
	return p.LabelWith(DefaultMultiPartLabelFormat, DefaultSinglePartLabelFormat)
}

// LabelWith formats the label using the given formats.
// multiFormat receives (chunk, total, count); singleFormat receives (count).
func (p PlaylistResult) LabelWith(multiFormat, singleFormat string) string {
	if p.IsMultiPart() {
		return fmt.Sprintf(multiFormat, p.ChunkIndex, p.TotalChunks, p.Count)
	}
	return fmt.Sprintf(singleFormat, p.Count)
}

// TotalVideos sums Count over results
func TotalVideos(results []PlaylistResult) int {
	total := 0
	for _, r := range results {
		total += r.Count
	}
	return total
}
