package ui

import (
	"errors"
	"math"
)

// Degenerate geometry reported by Track. The slider never propagates these;
// it falls back to the safe defaults documented on each method.
var (
	ErrDegenerateTrack      = errors.New("track has zero width")
	ErrDegenerateValueRange = errors.New("value range maximum is zero")
	ErrEmptyThumbnailSet    = errors.New("no thumbnails to draw")
)

// Track maps between pixel positions on [Start, End] and values on
// [0, MaxValue]. The lower bound of the value range does not take part in
// the mapping: value 0 always sits at Start.
type Track struct {
	Start    float32
	End      float32
	MaxValue float64
}

// NewTrack builds the track for a widget of the given width with equal
// padding on both sides. A width smaller than the padding collapses the track
// to a single point so that Start <= End always holds.
func NewTrack(width, padding float32, maxValue float64) Track {
	if padding < 0 {
		padding = 0
	}
	start := padding
	end := width - padding
	if end < start {
		end = start
	}
	return Track{Start: start, End: end, MaxValue: maxValue}
}

// Width returns End - Start
func (t Track) Width() float32 {
	return t.End - t.Start
}

// Degenerate reports whether the track has no usable width
func (t Track) Degenerate() bool {
	return t.Width() <= 0
}

// SlotWidth returns the width each of n frames gets when tiled along the
// track. It returns 0 with ErrEmptyThumbnailSet when there is nothing to tile
// and with ErrDegenerateTrack on a zero width track.
func (t Track) SlotWidth(n int) (float32, error) {
	if n <= 0 {
		return 0, ErrEmptyThumbnailSet
	}
	if t.Degenerate() {
		return 0, ErrDegenerateTrack
	}
	return t.Width() / float32(n), nil
}

// ValueAt returns the value for pixel x. On a zero width track it returns
// 0 with ErrDegenerateTrack.
func (t Track) ValueAt(x float32) (float64, error) {
	if t.Degenerate() {
		return 0, ErrDegenerateTrack
	}
	return float64(x-t.Start) / float64(t.Width()) * t.MaxValue, nil
}

// PositionOf returns the pixel x for value v. When the mapping is undefined
// it returns Start with the matching error.
func (t Track) PositionOf(v float64) (float32, error) {
	if t.MaxValue == 0 || math.IsNaN(t.MaxValue) {
		return t.Start, ErrDegenerateValueRange
	}
	return t.Start + float32(v/t.MaxValue*float64(t.Width())), nil
}

// Thumb identifies one of the two slider handles
type Thumb int

const (
	ThumbMin Thumb = iota
	ThumbMax
)

// String returns the thumb name used in logs
func (th Thumb) String() string {
	if th == ThumbMin {
		return "min"
	}
	return "max"
}

// NearestThumb picks the handle closest to pointer x. The min handle wins
// only when strictly closer; ties go to the max handle.
func NearestThumb(minX, maxX, x float32) Thumb {
	if abs32(minX-x) < abs32(maxX-x) {
		return ThumbMin
	}
	return ThumbMax
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
