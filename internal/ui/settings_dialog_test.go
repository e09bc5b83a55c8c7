package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-playlist-maker/internal/config"
	"github.com/ytget/yt-playlist-maker/internal/model"
)

func TestSettingsDialogApply(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app)
	l := NewLocalization()

	sd := NewSettingsDialog(settings, l, window)
	sd.loadCurrentSettings()

	if sd.chunkSizeSelect.Selected != "50" {
		t.Errorf("Expected default chunk size selected, got %q", sd.chunkSizeSelect.Selected)
	}
	if !sd.autoRevealCheck.Checked {
		t.Error("Auto reveal should default to checked")
	}

	dir := t.TempDir()
	sd.exportDirEntry.SetText(dir)
	sd.chunkSizeSelect.SetSelected(l.ChunkSizeLabel(model.Unlimited))
	sd.languageSelect.SetSelected("日本語")
	sd.autoRevealCheck.SetChecked(false)
	sd.apply()

	if got := settings.GetExportDirectory(); got != dir {
		t.Errorf("Export directory = %s, want %s", got, dir)
	}
	if got := settings.GetChunkSize(); !got.IsUnlimited() {
		t.Errorf("Chunk size = %s, want unlimited", got)
	}
	if got := settings.GetLanguage(); got != LangJapanese {
		t.Errorf("Language = %s, want %s", got, LangJapanese)
	}
	if settings.GetAutoRevealOnExport() {
		t.Error("Auto reveal should be disabled")
	}
}

func TestSettingsDialogKeepsDirectoryWhenEmpty(t *testing.T) {
	app := test.NewApp()
	window := test.NewWindow(nil)
	defer window.Close()

	settings := config.NewSettings(app)
	settings.SetExportDirectory("/srv/exports")

	sd := NewSettingsDialog(settings, NewLocalization(), window)
	sd.loadCurrentSettings()
	sd.exportDirEntry.SetText("")
	sd.apply()

	if got := settings.GetExportDirectory(); got != "/srv/exports" {
		t.Errorf("Empty entry should keep the stored directory, got %s", got)
	}
}
