package platform

// Package platform contains OS integration: filesystem helpers, video file
// detection, and opening or revealing exported clips with system tools.
