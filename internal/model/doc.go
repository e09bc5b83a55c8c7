package model

// Package model defines domain data structures used across the app: parsed
// video entries, run statistics, playlist results, and the run status machine.
// Structures are plain values so they can be handed to the UI and the CLI
// without sharing mutable state with the generator.
