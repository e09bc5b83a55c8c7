package generate

// Package generate turns parsed video entries into watch_videos playlist links.
// It partitions valid entries into chunks, builds one URL per chunk and drives
// the run lifecycle (Idle, Running, Completed, Cancelled, Failed) with progress
// reports and cooperative cancellation through context.Context.
