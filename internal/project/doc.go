package project

// Package project persists the trim selection of a video in a YAML sidecar
// next to it, so reopening the same file restores the slider.
