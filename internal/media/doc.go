package media

// Package media wraps the ffmpeg and ffprobe executables: probing a video,
// extracting preview frames for the trim slider and exporting the selected
// clip as a background task with progress updates.
