package export

// Package export serializes generated playlists to CSV and writes them to disk.
