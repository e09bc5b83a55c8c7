package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconStop     = "⏹"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconCopy     = "📋"
	IconError    = "❌"
	IconWarning  = "⚠"
	IconLanguage = "🌐"
	IconLink     = "🔗"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	ProgressLabelFormat = "%d%%"
)

// Layout sizing
const (
	InputRows = 8

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 44

	// Mobile-specific sizing
	MobileInputRows = 12
)

// Timers
const (
	ElapsedTickInterval = time.Second
)
