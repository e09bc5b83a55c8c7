package cli

// Package cli implements the yt-playlist-cli command tree on top of cobra.
// It reads URL lists from files, stdin or an interactive prompt and runs the
// same parser, generator and exporter as the desktop app.
