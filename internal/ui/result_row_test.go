package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-playlist-maker/internal/model"
)

func TestResultRow(t *testing.T) {
	test.NewApp()
	l := NewLocalization()

	result := model.PlaylistResult{
		URL:         "https://www.youtube.com/watch_videos?video_ids=dQw4w9WgXcQ,9bZkp7q19f0",
		Count:       2,
		ChunkIndex:  1,
		TotalChunks: 1,
	}
	row := NewResultRow(result, l)

	if !strings.HasSuffix(row.link.Text, "Playlist (2 videos)") {
		t.Errorf("Unexpected link text %q", row.link.Text)
	}
	if row.link.URL == nil || row.link.URL.String() != result.URL {
		t.Errorf("Link should point to %s, got %v", result.URL, row.link.URL)
	}
	if row.urlLabel.Text != result.URL {
		t.Errorf("URL label = %q, want %q", row.urlLabel.Text, result.URL)
	}

	var copied string
	row.SetCopyCallback(func(u string) { copied = u })
	test.Tap(row.copyBtn)
	if copied != result.URL {
		t.Errorf("Copy callback got %q, want %q", copied, result.URL)
	}

	next := model.PlaylistResult{URL: "https://www.youtube.com/watch_videos?video_ids=abc", Count: 1, ChunkIndex: 2, TotalChunks: 2}
	row.UpdateResult(next)
	if row.Result() != next {
		t.Errorf("Result() = %+v, want %+v", row.Result(), next)
	}
	if !strings.HasSuffix(row.link.Text, "Playlist 2/2 (1 videos)") {
		t.Errorf("Unexpected link text after update %q", row.link.Text)
	}

	min := row.MinSize()
	if min.Width < RowMinWidth || min.Height < RowMinHeight {
		t.Errorf("MinSize %v below row minimum", min)
	}
}

func TestResultsPanelSummary(t *testing.T) {
	test.NewApp()
	l := NewLocalization()
	panel := NewResultsPanel(l)

	if panel.summaryLabel.Visible() {
		t.Error("Summary should be hidden before any run")
	}

	panel.SetResults(nil)
	if !panel.summaryLabel.Visible() {
		t.Fatal("Summary should be visible after a completed run")
	}
	if !strings.Contains(panel.summaryLabel.Text, l.GetText(KeyNoPlaylists)) {
		t.Errorf("Expected no-playlists notice, got %q", panel.summaryLabel.Text)
	}

	results := []model.PlaylistResult{
		{URL: "u1", Count: 1, ChunkIndex: 1, TotalChunks: 2},
		{URL: "u2", Count: 1, ChunkIndex: 2, TotalChunks: 2},
	}
	panel.SetResults(results)
	if panel.summaryLabel.Text != l.GetText(KeyResults) {
		t.Errorf("Summary = %q, want %q", panel.summaryLabel.Text, l.GetText(KeyResults))
	}
	if got := panel.Results(); len(got) != 2 || got[1].URL != "u2" {
		t.Errorf("Unexpected panel results %+v", got)
	}

	panel.Clear()
	if panel.summaryLabel.Visible() || len(panel.Results()) != 0 {
		t.Error("Clear should hide the summary and drop results")
	}
}
