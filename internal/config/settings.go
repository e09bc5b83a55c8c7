package config

import (
	"os"

	"fyne.io/fyne/v2"
	"github.com/ytget/yt-playlist-maker/internal/model"
	"github.com/ytget/yt-playlist-maker/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyExportDir        = "export_directory"
	KeyChunkSize        = "chunk_size"
	KeyLanguage         = "app_language"
	KeyAutoRevealExport = "auto_reveal_on_export"
)

// Default values
const (
	DefaultLanguage         = "system"
	DefaultAutoRevealExport = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetExportDirectory returns the directory CSV exports are written to
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = os.TempDir()
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetChunkSize returns the configured chunk size; invalid stored values fall back to the default
func (s *Settings) GetChunkSize() model.ChunkSize {
	value := s.app.Preferences().StringWithFallback(KeyChunkSize, model.DefaultChunkSize.String())
	size, err := model.ParseChunkSize(value)
	if err != nil {
		s.SetChunkSize(model.DefaultChunkSize)
		return model.DefaultChunkSize
	}
	return size
}

// SetChunkSize stores the chunk size in its textual form
func (s *Settings) SetChunkSize(size model.ChunkSize) {
	s.app.Preferences().SetString(KeyChunkSize, size.String())
}

// GetChunkSizeOptions returns the chunk sizes offered in the UI
func (s *Settings) GetChunkSizeOptions() []model.ChunkSize {
	return model.ChunkSizePresets
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnExport returns whether to reveal the CSV in the file manager after export
func (s *Settings) GetAutoRevealOnExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealExport, DefaultAutoRevealExport)
}

// SetAutoRevealOnExport sets whether to reveal exported files
func (s *Settings) SetAutoRevealOnExport(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealExport, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
		"ja":     "日本語",
	}
}
