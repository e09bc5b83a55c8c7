package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ChunkSize is the maximum number of videos per generated playlist.
// The zero value means no limit.
type ChunkSize int

const (
	// Unlimited puts every valid video into a single playlist
	Unlimited ChunkSize = 0

	// DefaultChunkSize keeps generated URLs comfortably below platform limits
	DefaultChunkSize ChunkSize = 50

	// UnlimitedValue is the textual form of Unlimited in settings and flags
	UnlimitedValue = "unlimited"
)

// ChunkSizePresets lists the choices offered in the UI
var ChunkSizePresets = []ChunkSize{10, 25, 50, 100, 200, Unlimited}

// ParseChunkSize parses "unlimited" or a positive decimal integer
func ParseChunkSize(value string) (ChunkSize, error) {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, UnlimitedValue) {
		return Unlimited, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid chunk size %q: %w", value, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid chunk size %q: must be at least 1 or %q", value, UnlimitedValue)
	}
	return ChunkSize(n), nil
}

// IsUnlimited reports whether the size is the Unlimited sentinel
func (c ChunkSize) IsUnlimited() bool {
	return c <= Unlimited
}

// String returns the textual form accepted by ParseChunkSize
func (c ChunkSize) String() string {
	if c.IsUnlimited() {
		return UnlimitedValue
	}
	return strconv.Itoa(int(c))
}
