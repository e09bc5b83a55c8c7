package generate

import (
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/ytget/yt-playlist-maker/internal/model"
)

// URL templates
const (
	WatchVideosURLPrefix = "https://www.youtube.com/watch_videos?video_ids="
	VideoIDSeparator     = ","
)

// ChunkEntries partitions entries into consecutive chunks of at most size
// elements, preserving order. Unlimited yields a single chunk.
func ChunkEntries(entries []model.VideoEntry, size model.ChunkSize) [][]model.VideoEntry {
	if len(entries) == 0 {
		return nil
	}
	if size.IsUnlimited() {
		return [][]model.VideoEntry{entries}
	}
	return slice.Chunk(entries, int(size))
}

// BuildPlaylistURL joins the chunk's video IDs into one watch_videos link
func BuildPlaylistURL(chunk []model.VideoEntry) string {
	ids := slice.Map(chunk, func(_ int, e model.VideoEntry) string {
		return e.VideoID
	})
	return WatchVideosURLPrefix + strings.Join(ids, VideoIDSeparator)
}

// NewPlaylistResult builds the result for the chunk at 1-based index of total
func NewPlaylistResult(chunk []model.VideoEntry, index, total int) model.PlaylistResult {
	return model.PlaylistResult{
		URL:         BuildPlaylistURL(chunk),
		Count:       len(chunk),
		ChunkIndex:  index,
		TotalChunks: total,
	}
}

// Generate builds playlist results for the valid entries without any
// progress reporting or delays
func Generate(entries []model.VideoEntry, size model.ChunkSize) []model.PlaylistResult {
	chunks := ChunkEntries(model.ValidEntries(entries), size)
	results := make([]model.PlaylistResult, 0, len(chunks))
	for i, chunk := range chunks {
		results = append(results, NewPlaylistResult(chunk, i+1, len(chunks)))
	}
	return results
}
