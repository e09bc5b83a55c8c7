package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the generation and export services and renders
// progress, stats and the resulting playlist links. All UI strings are localized
// via Localization.
