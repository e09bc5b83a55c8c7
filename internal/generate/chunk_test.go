package generate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ytget/yt-playlist-maker/internal/model"
)

func makeEntries(n int) []model.VideoEntry {
	entries := make([]model.VideoEntry, n)
	for i := range entries {
		entries[i] = model.NewVideoEntry(fmt.Sprintf("line-%d", i), fmt.Sprintf("vid%08d", i))
	}
	return entries
}

func TestChunkEntries_Partition(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		size      model.ChunkSize
		wantSizes []int
	}{
		{"exact multiple", 4, 2, []int{2, 2}},
		{"remainder", 5, 2, []int{2, 2, 1}},
		{"single chunk", 3, 50, []int{3}},
		{"size one", 3, 1, []int{1, 1, 1}},
		{"unlimited", 120, model.Unlimited, []int{120}},
		{"empty", 0, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := makeEntries(tt.count)
			chunks := ChunkEntries(entries, tt.size)

			if len(chunks) != len(tt.wantSizes) {
				t.Fatalf("Expected %d chunks, got %d", len(tt.wantSizes), len(chunks))
			}

			// Concatenation must reproduce the input in order
			pos := 0
			for i, chunk := range chunks {
				if len(chunk) != tt.wantSizes[i] {
					t.Errorf("Chunk %d: expected size %d, got %d", i, tt.wantSizes[i], len(chunk))
				}
				for _, e := range chunk {
					if e.VideoID != entries[pos].VideoID {
						t.Errorf("Chunk %d: expected %s at position %d, got %s", i, entries[pos].VideoID, pos, e.VideoID)
					}
					pos++
				}
			}
			if pos != tt.count {
				t.Errorf("Expected %d entries across chunks, got %d", tt.count, pos)
			}
		})
	}
}

func TestChunkEntries_CountFormula(t *testing.T) {
	for n := 1; n <= 25; n++ {
		for k := 1; k <= 7; k++ {
			chunks := ChunkEntries(makeEntries(n), model.ChunkSize(k))
			want := (n + k - 1) / k
			if len(chunks) != want {
				t.Errorf("n=%d k=%d: expected %d chunks, got %d", n, k, want, len(chunks))
			}
		}
	}
}

func TestBuildPlaylistURL(t *testing.T) {
	chunk := []model.VideoEntry{
		model.NewVideoEntry("dQw4w9WgXcQ", "dQw4w9WgXcQ"),
		model.NewVideoEntry("https://youtu.be/oHg5SJYRHA0", "oHg5SJYRHA0"),
	}

	got := BuildPlaylistURL(chunk)
	want := "https://www.youtube.com/watch_videos?video_ids=dQw4w9WgXcQ,oHg5SJYRHA0"
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestBuildPlaylistURL_NoLengthCap(t *testing.T) {
	chunk := makeEntries(500)
	got := BuildPlaylistURL(chunk)

	ids := strings.Split(strings.TrimPrefix(got, WatchVideosURLPrefix), VideoIDSeparator)
	if len(ids) != 500 {
		t.Errorf("Expected 500 IDs in URL, got %d", len(ids))
	}
}

func TestGenerate(t *testing.T) {
	entries := append(makeEntries(5), model.NewVideoEntry("notaurl", ""))
	results := Generate(entries, 2)

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.ChunkIndex != i+1 {
			t.Errorf("Result %d: expected chunk index %d, got %d", i, i+1, r.ChunkIndex)
		}
		if r.TotalChunks != 3 {
			t.Errorf("Result %d: expected total chunks 3, got %d", i, r.TotalChunks)
		}
		if strings.Contains(r.URL, "notaurl") {
			t.Errorf("Result %d: invalid entry leaked into URL %s", i, r.URL)
		}
	}
	if got := model.TotalVideos(results); got != 5 {
		t.Errorf("Expected 5 videos in total, got %d", got)
	}
}

func TestGenerate_NoValidEntries(t *testing.T) {
	results := Generate([]model.VideoEntry{model.NewVideoEntry("x", "")}, 10)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}
