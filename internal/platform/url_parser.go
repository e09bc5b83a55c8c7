package platform

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/ytget/yt-playlist-maker/internal/model"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Input separators
const (
	LineSeparator = "\n"
)

// Video ID shapes
const (
	BareVideoIDLength = 11
	videoIDClass      = `[a-zA-Z0-9_-]`
)

// Recognized reference forms in priority order; the first match wins.
// Forms are unanchored except the bare ID, which must be the whole line.
var defaultVideoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=(` + videoIDClass + `+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/(` + videoIDClass + `+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/shorts/(` + videoIDClass + `+)`),
	regexp.MustCompile(`(?:https?://)?youtu\.be/(` + videoIDClass + `+)`),
	regexp.MustCompile(fmt.Sprintf(`^(%s{%d})$`, videoIDClass, BareVideoIDLength)),
}

// URLParserService classifies lines of pasted text as YouTube video references
type URLParserService struct {
	patterns []*regexp.Regexp
}

// NewURLParserService creates a new URL parser service
func NewURLParserService() *URLParserService {
	return &URLParserService{
		patterns: defaultVideoIDPatterns,
	}
}

// ParseInput splits input into lines and classifies every non-blank line.
// Blank lines produce no entry, so they count neither as valid nor as invalid.
func (p *URLParserService) ParseInput(input string) []model.VideoEntry {
	lines := strings.Split(input, LineSeparator)
	entries := make([]model.VideoEntry, 0, len(lines))

	for _, line := range lines {
		line = trimLine(line)
		if line == "" {
			continue
		}
		entries = append(entries, model.NewVideoEntry(line, p.ExtractVideoID(line)))
	}

	return entries
}

// ExtractVideoID returns the video ID referenced by line, or "" if none
func (p *URLParserService) ExtractVideoID(line string) string {
	for _, pattern := range p.patterns {
		if match := pattern.FindStringSubmatch(line); len(match) > 1 {
			return match[1]
		}
	}
	return ""
}

// WatchURL returns the canonical watch URL for a video ID
func WatchURL(videoID string) string {
	return fmt.Sprintf(YouTubeVideoURLTemplate, videoID)
}

// IsBlank reports whether input holds nothing but whitespace and byte order marks
func IsBlank(input string) bool {
	return trimLine(input) == ""
}

// trimLine strips surrounding whitespace including a stray byte order mark
func trimLine(line string) string {
	return strings.TrimFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
