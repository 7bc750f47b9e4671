package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ErrInvalidRange is returned when a trim range is empty or inverted
var ErrInvalidRange = errors.New("invalid trim range")

// TrimMode selects how ffmpeg writes the clip
type TrimMode string

const (
	// TrimModeCopy copies streams without re-encoding (fast, keyframe aligned)
	TrimModeCopy TrimMode = "copy"
	// TrimModeReencode re-encodes video and audio (slow, frame accurate)
	TrimModeReencode TrimMode = "reencode"
)

// TrimRange is a [Start, End] window inside a video
type TrimRange struct {
	Start time.Duration `yaml:"start"`
	End   time.Duration `yaml:"end"`
}

// Duration returns the length of the range, never negative
func (r TrimRange) Duration() time.Duration {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Valid reports whether the range selects a non-empty window
func (r TrimRange) Valid() bool {
	return r.Start >= 0 && r.End > r.Start
}

// Clamp limits the range to [0, total]
func (r TrimRange) Clamp(total time.Duration) TrimRange {
	clamp := func(d time.Duration) time.Duration {
		if d < 0 {
			return 0
		}
		if total > 0 && d > total {
			return total
		}
		return d
	}
	return TrimRange{Start: clamp(r.Start), End: clamp(r.End)}
}

// String formats the range as "start - end"
func (r TrimRange) String() string {
	return FormatTimestamp(r.Start) + " - " + FormatTimestamp(r.End)
}

// RangeFromSliderValues converts slider thumb values into timestamps.
// The slider maps [0, maxValue] linearly onto [0, total].
func RangeFromSliderValues(minThumb, maxThumb, maxValue float64, total time.Duration) TrimRange {
	if maxValue <= 0 || total <= 0 {
		return TrimRange{}
	}
	toDuration := func(v float64) time.Duration {
		return time.Duration(v / maxValue * float64(total))
	}
	return TrimRange{Start: toDuration(minThumb), End: toDuration(maxThumb)}.Clamp(total)
}

// SliderValues converts the range back to thumb values on a [0, maxValue] slider
func (r TrimRange) SliderValues(maxValue float64, total time.Duration) (float64, float64) {
	if total <= 0 {
		return 0, maxValue
	}
	c := r.Clamp(total)
	return float64(c.Start) / float64(total) * maxValue, float64(c.End) / float64(total) * maxValue
}

// ExportTask represents a single clip export
type ExportTask struct {
	ID         string
	InputPath  string
	OutputPath string
	Range      TrimRange
	Mode       TrimMode
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	LastError  string  // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayTitle returns the output file name without extension, falling back to the input name
func (et *ExportTask) GetDisplayTitle() string {
	path := et.OutputPath
	if path == "" {
		path = et.InputPath
	}
	if path == "" {
		return ""
	}
	name := filepath.Base(path)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}

// FormatTimestamp formats d as mm:ss.t, or hh:mm:ss.t past the hour
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := int64(d / (100 * time.Millisecond))
	hours := tenths / 36000
	minutes := (tenths % 36000) / 600
	seconds := (tenths % 600) / 10
	frac := tenths % 10

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d.%d", hours, minutes, seconds, frac)
	}
	return fmt.Sprintf("%02d:%02d.%d", minutes, seconds, frac)
}
