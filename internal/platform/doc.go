package platform

// Package platform contains input parsing and OS integration glue: recognizing
// YouTube video references in pasted text, filesystem helpers, and revealing
// exported files in the system file manager.
