package platform

import (
	"regexp"
	"strings"
	"testing"
)

func TestURLParserService_ExtractVideoID(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{
			name:     "watch URL with scheme and www",
			line:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "watch URL without scheme",
			line:     "youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "watch URL with additional parameters",
			line:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PLAYLIST_ID&index=2",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "embed URL",
			line:     "https://www.youtube.com/embed/oHg5SJYRHA0",
			expected: "oHg5SJYRHA0",
		},
		{
			name:     "shorts URL",
			line:     "http://youtube.com/shorts/abc_DEF-123",
			expected: "abc_DEF-123",
		},
		{
			name:     "short link with timestamp",
			line:     "https://youtu.be/oHg5SJYRHA0?t=42",
			expected: "oHg5SJYRHA0",
		},
		{
			name:     "short link without scheme",
			line:     "youtu.be/oHg5SJYRHA0",
			expected: "oHg5SJYRHA0",
		},
		{
			name:     "URL forms accept IDs of any length",
			line:     "https://youtu.be/abc",
			expected: "abc",
		},
		{
			name:     "bare 11 character ID",
			line:     "dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "bare ID too short",
			line:     "dQw4w9WgXc",
			expected: "",
		},
		{
			name:     "bare ID too long",
			line:     "dQw4w9WgXcQQ",
			expected: "",
		},
		{
			name:     "bare ID with forbidden character",
			line:     "dQw4w9WgX.Q",
			expected: "",
		},
		{
			name:     "forms match anywhere in the line",
			line:     "https://m.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "dQw4w9WgXcQ",
		},
		{
			name:     "v parameter not first is not recognized",
			line:     "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ",
			expected: "",
		},
		{
			name:     "watch form wins over short link",
			line:     "https://youtu.be/AAAAAAAAAAA https://youtube.com/watch?v=BBBBBBBBBBB",
			expected: "BBBBBBBBBBB",
		},
		{
			name:     "other host",
			line:     "https://vimeo.com/123456",
			expected: "",
		},
		{
			name:     "plain text",
			line:     "notaurl",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewURLParserService()
			result := service.ExtractVideoID(tt.line)

			if result != tt.expected {
				t.Errorf("expected '%s', got '%s' for line: %s", tt.expected, result, tt.line)
			}
		})
	}
}

func TestURLParserService_ParseInput(t *testing.T) {
	service := NewURLParserService()
	input := "dQw4w9WgXcQ\n\n  https://youtu.be/oHg5SJYRHA0 \r\nnotaurl\n   \n\t\n"

	entries := service.ParseInput(input)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d: %+v", len(entries), entries)
	}

	expected := []struct {
		original string
		videoID  string
		valid    bool
	}{
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"https://youtu.be/oHg5SJYRHA0", "oHg5SJYRHA0", true},
		{"notaurl", "", false},
	}

	for i, want := range expected {
		got := entries[i]
		if got.Original != want.original || got.VideoID != want.videoID || got.Valid != want.valid {
			t.Errorf("entry %d: expected %+v, got %+v", i, want, got)
		}
	}
}

func TestURLParserService_ParseInput_BlankLinesDropped(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"only whitespace", "  \n\t\n\r\n", 0},
		{"byte order mark line", "\uFEFF\n", 0},
		{"one line", "x", 1},
		{"lines with blanks between", "a\n\nb\n\n\nc", 3},
	}

	service := NewURLParserService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := service.ParseInput(tt.input)
			if len(entries) != tt.expected {
				t.Errorf("expected %d entries, got %d", tt.expected, len(entries))
			}

			nonBlank := 0
			for _, line := range strings.Split(tt.input, "\n") {
				if trimLine(line) != "" {
					nonBlank++
				}
			}
			if len(entries) != nonBlank {
				t.Errorf("entry count %d differs from non-blank line count %d", len(entries), nonBlank)
			}
		})
	}
}

func TestURLParserService_ValidEntriesRoundTrip(t *testing.T) {
	service := NewURLParserService()
	idPattern := regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	input := strings.Join([]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/embed/oHg5SJYRHA0",
		"youtube.com/shorts/abc_DEF-123",
		"youtu.be/xyz",
		"M7lc1UVf-VE",
		"not a video",
	}, "\n")

	for _, entry := range service.ParseInput(input) {
		if !entry.Valid {
			continue
		}
		if !idPattern.MatchString(entry.VideoID) {
			t.Errorf("video ID %q does not match the ID grammar", entry.VideoID)
		}

		reparsed := service.ExtractVideoID(WatchURL(entry.VideoID))
		if reparsed != entry.VideoID {
			t.Errorf("round trip changed ID: %q -> %q", entry.VideoID, reparsed)
		}
	}
}

func TestWatchURL(t *testing.T) {
	expected := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	if got := WatchURL("dQw4w9WgXcQ"); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{" \t\r\n", true},
		{"\uFEFF", true},
		{"\uFEFF\n\uFEFF", true},
		{" \uFEFF \r\n", true},
		{"\uFEFFdQw4w9WgXcQ", false},
		{"\n\nx\n", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.expected {
			t.Errorf("IsBlank(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
		if tt.expected && len(NewURLParserService().ParseInput(tt.input)) != 0 {
			t.Errorf("blank input %q should parse to no entries", tt.input)
		}
	}
}
