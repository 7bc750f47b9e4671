package ui

import (
	"image/color"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconOpen     = "📂"
	IconExport   = "✂"
	IconStop     = "⏹"
	IconFolder   = "📁"
	IconPlay     = "▶"
	IconClose    = "×"
	IconError    = "❌"
)

// Text fragments
const (
	MiddleDotSeparator  = " · "
	DashPlaceholder     = "—"
	ProgressLabelFormat = "%d%%"
)

// Range slider geometry
const (
	RangeThumbWidth       float32 = 10
	RangeThumbHeight      float32 = 88
	RangeThumbRadius      float32 = 4
	RangeSelectionHeight  float32 = 64
	RangeFrameHeightRatio float32 = 0.6
	RangeSliderMinWidth   float32 = 240
	RangeSliderMinHeight  float32 = 96

	// Slider values span [0, RangeSliderScale]; timestamps are derived from it
	RangeSliderScale = 1000.0
)

// Range slider colors
var (
	RangeThumbColor     color.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	RangeSelectionColor color.Color = color.NRGBA{R: 0x33, G: 0xb5, B: 0xe5, A: 100}
)

// Layout sizing (export list)
const (
	StatusLabelWidth  float32 = 84
	PercentLabelWidth float32 = 48

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 56
)

// Debounce durations
const (
	UIUpdateDebounce    = 100 * time.Millisecond
	SidecarSaveDebounce = 750 * time.Millisecond
)

// Timeouts
const (
	ProbeTimeout   = 30 * time.Second
	ExtractTimeout = 2 * time.Minute
)
