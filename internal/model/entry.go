package model

import (
	"github.com/duke-git/lancet/v2/slice"
)

// VideoEntry is one non-blank input line classified by the URL parser
type VideoEntry struct {
	Original string `json:"original"`
	VideoID  string `json:"video_id,omitempty"` // empty when the line is not a recognized reference
	Valid    bool   `json:"valid"`
}

// NewVideoEntry creates an entry; it is valid iff a video ID was extracted
func NewVideoEntry(original, videoID string) VideoEntry {
	return VideoEntry{
		Original: original,
		VideoID:  videoID,
		Valid:    videoID != "",
	}
}

// RunStats summarizes a parsed input. Total counts non-blank lines only.
type RunStats struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// ComputeStats derives RunStats from the full parsed entry sequence
func ComputeStats(entries []VideoEntry) RunStats {
	valid := slice.CountBy(entries, func(_ int, e VideoEntry) bool {
		return e.Valid
	})
	return RunStats{
		Total:   len(entries),
		Valid:   valid,
		Invalid: len(entries) - valid,
	}
}

// ValidEntries returns the valid entries in input order
func ValidEntries(entries []VideoEntry) []VideoEntry {
	return slice.Filter(entries, func(_ int, e VideoEntry) bool {
		return e.Valid
	})
}
