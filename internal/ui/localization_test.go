package ui

import (
	"testing"

	"github.com/ytget/yt-playlist-maker/internal/model"
)

func TestLocalizationFallback(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyGenerate); got != "Generate" {
		t.Errorf("Expected English default, got %q", got)
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != LangEnglish {
		t.Errorf("Unknown language should keep %s, got %s", LangEnglish, l.GetCurrentLanguage())
	}

	// Unknown keys return the key itself
	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key fallback, got %q", got)
	}
}

func TestLocalizationLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts[LangEnglish]

	for code := range l.GetAvailableLanguages() {
		if code == LangSystem {
			continue
		}
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("Language %s has no texts", code)
			continue
		}
		for key := range english {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", code, key)
			}
		}
	}
}

func TestResultLabel(t *testing.T) {
	tests := []struct {
		lang   string
		result model.PlaylistResult
		want   string
	}{
		{LangEnglish, model.PlaylistResult{Count: 3, ChunkIndex: 1, TotalChunks: 1}, "Playlist (3 videos)"},
		{LangEnglish, model.PlaylistResult{Count: 50, ChunkIndex: 2, TotalChunks: 3}, "Playlist 2/3 (50 videos)"},
		{LangRussian, model.PlaylistResult{Count: 7, ChunkIndex: 1, TotalChunks: 1}, "Плейлист (7 видео)"},
		{LangJapanese, model.PlaylistResult{Count: 10, ChunkIndex: 1, TotalChunks: 2}, "プレイリスト 1/2 (10件の動画)"},
	}

	for _, tt := range tests {
		t.Run(tt.lang+"/"+tt.want, func(t *testing.T) {
			l := NewLocalization()
			l.SetLanguage(tt.lang)
			if got := l.ResultLabel(tt.result); got != tt.want {
				t.Errorf("ResultLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProgressMessage(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		name     string
		progress model.Progress
		want     string
	}{
		{"starting", model.Progress{Phase: model.PhaseStarting}, "Starting..."},
		{"announce", model.Progress{Phase: model.PhaseProcessing, TotalChunks: 4}, "Processing 4 chunks..."},
		{"chunk", model.Progress{Phase: model.PhaseProcessing, Chunk: 2, TotalChunks: 4}, "Processing chunk 2/4..."},
		{"no valid", model.Progress{Phase: model.PhaseNoValid}, "No valid URLs found"},
		{"cancelled", model.Progress{Phase: model.PhaseCancelled}, "Cancelled"},
		{"unknown phase", model.Progress{Phase: "custom", Message: "raw"}, "raw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.ProgressMessage(tt.progress); got != tt.want {
				t.Errorf("ProgressMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestChunkSizeLabel(t *testing.T) {
	l := NewLocalization()

	if got := l.ChunkSizeLabel(model.ChunkSize(25)); got != "25" {
		t.Errorf("Expected 25, got %q", got)
	}
	if got := l.ChunkSizeLabel(model.Unlimited); got != "Unlimited" {
		t.Errorf("Expected Unlimited, got %q", got)
	}

	l.SetLanguage(LangPortugue)
	if got := l.ChunkSizeLabel(model.Unlimited); got == "Unlimited" {
		t.Error("Unlimited label should be localized")
	}
}
