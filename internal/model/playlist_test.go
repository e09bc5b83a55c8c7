package model

import "testing"

func TestPlaylistResult_Label(t *testing.T) {
	tests := []struct {
		result   PlaylistResult
		expected string
	}{
		{PlaylistResult{Count: 2, ChunkIndex: 1, TotalChunks: 1}, "Playlist (2 videos)"},
		{PlaylistResult{Count: 50, ChunkIndex: 2, TotalChunks: 3}, "Playlist 2/3 (50 videos)"},
	}

	for _, test := range tests {
		result := test.result.Label()
		if result != test.expected {
			t.Errorf("Label() = '%s', expected '%s'", result, test.expected)
		}
	}
}

func TestPlaylistResult_LabelWith(t *testing.T) {
	p := PlaylistResult{Count: 1, ChunkIndex: 3, TotalChunks: 3}
	got := p.LabelWith("part %d of %d: %d", "all: %d")
	if got != "part 3 of 3: 1" {
		t.Errorf("unexpected label: %s", got)
	}
}

func TestTotalVideos(t *testing.T) {
	results := []PlaylistResult{{Count: 2}, {Count: 2}, {Count: 1}}
	if total := TotalVideos(results); total != 5 {
		t.Errorf("Expected 5 videos, got %d", total)
	}
}
