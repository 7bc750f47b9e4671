// Package thumbnail scales video frames into the evenly spaced slots of a
// slider track.
package thumbnail

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// stripKey identifies one scaled rendition of the sources
type stripKey struct {
	generation uint64
	width      int
	height     int
}

// Strip holds host supplied frames and a memoized copy scaled to a slot size.
// Not safe for concurrent use; callers stay on the UI goroutine.
type Strip struct {
	sources    []image.Image
	generation uint64

	key    stripKey
	scaled []image.Image

	scaler xdraw.Scaler
}

// NewStrip creates an empty strip using bilinear filtering
func NewStrip() *Strip {
	return &Strip{scaler: xdraw.BiLinear}
}

// SetSources replaces the source frames and invalidates the scaled copy
func (s *Strip) SetSources(images []image.Image) {
	s.sources = append([]image.Image(nil), images...)
	s.generation++
	s.scaled = nil
	s.key = stripKey{}
}

// Len returns the number of source frames
func (s *Strip) Len() int {
	return len(s.sources)
}

// Scaled returns the last scaled sequence, nil if none was produced
func (s *Strip) Scaled() []image.Image {
	return s.scaled
}

// Fit scales every source frame to width x height. Repeated calls with the
// same size and sources return the cached sequence. A non-positive size or
// an empty source set yields nil.
func (s *Strip) Fit(width, height int) []image.Image {
	if width <= 0 || height <= 0 || len(s.sources) == 0 {
		s.scaled = nil
		s.key = stripKey{}
		return nil
	}

	key := stripKey{generation: s.generation, width: width, height: height}
	if s.scaled != nil && s.key == key {
		return s.scaled
	}

	scaled := make([]image.Image, len(s.sources))
	for i, src := range s.sources {
		scaled[i] = s.scale(src, width, height)
	}
	s.scaled = scaled
	s.key = key
	return scaled
}

func (s *Strip) scale(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if src == nil || src.Bounds().Empty() {
		return dst
	}
	s.scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// SlotWidth returns the integer slot width for n frames over a track of
// trackWidth pixels, or 0 when no slot fits.
func SlotWidth(trackWidth float32, n int) int {
	if n <= 0 || trackWidth <= 0 {
		return 0
	}
	return int(trackWidth / float32(n))
}
