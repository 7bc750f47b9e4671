package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/clip-trimmer/internal/thumbnail"
)

// NotifyMode controls how often OnChanged fires for pointer events
type NotifyMode int

const (
	// NotifyOnChange calls the listener once per event that moved a thumb
	NotifyOnChange NotifyMode = iota
	// NotifyEveryEvent also calls it after every pointer event, moved or not,
	// so a moving event produces two calls. Kept for hosts that count calls.
	NotifyEveryEvent
)

// RangeSliderStyle is the immutable look of a RangeSlider
type RangeSliderStyle struct {
	ThumbColor        color.Color
	ThumbSize         fyne.Size
	ThumbRadius       float32
	SelectionColor    color.Color
	SelectionHeight   float32
	FrameHeightRatio  float32
	HorizontalPadding float32
}

// DefaultRangeSliderStyle returns the style used by NewRangeSlider
func DefaultRangeSliderStyle() RangeSliderStyle {
	return RangeSliderStyle{
		ThumbColor:        RangeThumbColor,
		ThumbSize:         fyne.NewSize(RangeThumbWidth, RangeThumbHeight),
		ThumbRadius:       RangeThumbRadius,
		SelectionColor:    RangeSelectionColor,
		SelectionHeight:   RangeSelectionHeight,
		FrameHeightRatio:  RangeFrameHeightRatio,
		HorizontalPadding: RangeThumbWidth / 2,
	}
}

// RangeSlider is a two-thumb slider drawn over a strip of video frames.
// It is used to pick the start and end of a clip.
//
// All methods must be called on the UI goroutine.
type RangeSlider struct {
	widget.BaseWidget

	// MinValue and MaxValue bound the thumbs. Only MaxValue takes part in the
	// pixel mapping; a non-zero MinValue is not represented on the track.
	MinValue float64
	MaxValue float64

	MinThumbValue float64
	MaxThumbValue float64

	NotifyMode NotifyMode

	// OnChanged receives (MinThumbValue, MaxThumbValue). Single listener, last
	// assignment wins.
	OnChanged func(min, max float64)

	style      RangeSliderStyle
	trackStart float32
	trackEnd   float32
	strip      *thumbnail.Strip
}

var (
	_ fyne.Draggable     = (*RangeSlider)(nil)
	_ desktop.Mouseable  = (*RangeSlider)(nil)
	_ desktop.Cursorable = (*RangeSlider)(nil)
	_ mobile.Touchable   = (*RangeSlider)(nil)
)

// NewRangeSlider creates a slider over [0, 100] with both thumbs at the ends
func NewRangeSlider() *RangeSlider {
	return NewRangeSliderWithStyle(DefaultRangeSliderStyle())
}

// NewRangeSliderWithStyle creates a slider using a custom style
func NewRangeSliderWithStyle(style RangeSliderStyle) *RangeSlider {
	s := &RangeSlider{
		MinValue:      0,
		MaxValue:      100,
		MinThumbValue: 0,
		MaxThumbValue: 100,
		style:         style,
		strip:         thumbnail.NewStrip(),
	}
	s.ExtendBaseWidget(s)
	return s
}

// Style returns the slider style
func (s *RangeSlider) Style() RangeSliderStyle {
	return s.style
}

// TrackStart returns the left end of the track in widget coordinates
func (s *RangeSlider) TrackStart() float32 {
	return s.trackStart
}

// TrackEnd returns the right end of the track in widget coordinates
func (s *RangeSlider) TrackEnd() float32 {
	return s.trackEnd
}

// Track returns the current pixel/value mapping
func (s *RangeSlider) Track() Track {
	return Track{Start: s.trackStart, End: s.trackEnd, MaxValue: s.MaxValue}
}

// SetOnChanged installs the change listener, replacing any previous one
func (s *RangeSlider) SetOnChanged(fn func(min, max float64)) {
	s.OnChanged = fn
}

// SetRange sets the value bounds and pulls the thumbs inside them
func (s *RangeSlider) SetRange(minValue, maxValue float64) {
	if maxValue < minValue {
		minValue, maxValue = maxValue, minValue
	}
	s.MinValue = minValue
	s.MaxValue = maxValue
	s.MinThumbValue = clamp(s.MinThumbValue, minValue, maxValue)
	s.MaxThumbValue = clamp(s.MaxThumbValue, s.MinThumbValue, maxValue)
	s.Refresh()
}

// SetValues moves both thumbs without notifying the listener
func (s *RangeSlider) SetValues(minThumb, maxThumb float64) {
	if maxThumb < minThumb {
		minThumb, maxThumb = maxThumb, minThumb
	}
	s.MinThumbValue = clamp(minThumb, s.MinValue, s.MaxValue)
	s.MaxThumbValue = clamp(maxThumb, s.MinThumbValue, s.MaxValue)
	s.Refresh()
}

// Values returns (MinThumbValue, MaxThumbValue)
func (s *RangeSlider) Values() (float64, float64) {
	return s.MinThumbValue, s.MaxThumbValue
}

// SetThumbnails replaces the frames drawn along the track. An empty slice
// clears the strip. On a zero width track the frames are kept and scaled on
// the next resize.
func (s *RangeSlider) SetThumbnails(images []image.Image) {
	s.strip.SetSources(images)
	s.fitThumbnails()
	s.Refresh()
}

// Thumbnails returns the frames scaled for the current track
func (s *RangeSlider) Thumbnails() []image.Image {
	return s.strip.Scaled()
}

// Resize recomputes the track and the scaled frames before laying out
func (s *RangeSlider) Resize(size fyne.Size) {
	s.layoutTrack(size)
	s.BaseWidget.Resize(size)
}

func (s *RangeSlider) layoutTrack(size fyne.Size) {
	track := NewTrack(size.Width, s.style.HorizontalPadding, s.MaxValue)
	s.trackStart = track.Start
	s.trackEnd = track.End
	s.fitThumbnailsTo(size)
}

func (s *RangeSlider) fitThumbnails() {
	s.fitThumbnailsTo(s.Size())
}

func (s *RangeSlider) fitThumbnailsTo(size fyne.Size) {
	width := thumbnail.SlotWidth(s.trackEnd-s.trackStart, s.strip.Len())
	height := int(size.Height * s.style.FrameHeightRatio)
	s.strip.Fit(width, height)
}

// PointerDown handles a press at widget x
func (s *RangeSlider) PointerDown(x float32) {
	s.handlePointer(x)
}

// PointerMove handles a drag to widget x
func (s *RangeSlider) PointerMove(x float32) {
	s.handlePointer(x)
}

func (s *RangeSlider) handlePointer(x float32) {
	track := s.Track()
	if track.Degenerate() {
		return
	}

	minX, _ := track.PositionOf(s.MinThumbValue)
	maxX, _ := track.PositionOf(s.MaxThumbValue)
	value, _ := track.ValueAt(x)

	changed := s.moveThumb(NearestThumb(minX, maxX, x), value)
	if changed {
		s.notify()
		s.Refresh()
	}
	if s.NotifyMode == NotifyEveryEvent {
		s.notify()
	}
}

// moveThumb sets the given thumb to value, clamped so the thumbs stay
// ordered, and reports whether it moved.
func (s *RangeSlider) moveThumb(th Thumb, value float64) bool {
	switch th {
	case ThumbMin:
		newValue := clamp(value, s.MinValue, s.MaxThumbValue)
		if newValue != s.MinThumbValue {
			s.MinThumbValue = newValue
			return true
		}
	case ThumbMax:
		newValue := clamp(value, s.MinThumbValue, s.MaxValue)
		if newValue != s.MaxThumbValue {
			s.MaxThumbValue = newValue
			return true
		}
	}
	return false
}

func (s *RangeSlider) notify() {
	if s.OnChanged != nil {
		s.OnChanged(s.MinThumbValue, s.MaxThumbValue)
	}
}

// MouseDown implements desktop.Mouseable
func (s *RangeSlider) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	s.PointerDown(ev.Position.X)
}

// MouseUp implements desktop.Mouseable
func (s *RangeSlider) MouseUp(*desktop.MouseEvent) {}

// TouchDown implements mobile.Touchable
func (s *RangeSlider) TouchDown(ev *mobile.TouchEvent) {
	s.PointerDown(ev.Position.X)
}

// TouchUp implements mobile.Touchable
func (s *RangeSlider) TouchUp(*mobile.TouchEvent) {}

// TouchCancel implements mobile.Touchable
func (s *RangeSlider) TouchCancel(*mobile.TouchEvent) {}

// Dragged implements fyne.Draggable
func (s *RangeSlider) Dragged(ev *fyne.DragEvent) {
	s.PointerMove(ev.Position.X)
}

// DragEnd implements fyne.Draggable
func (s *RangeSlider) DragEnd() {}

// Cursor implements desktop.Cursorable
func (s *RangeSlider) Cursor() desktop.Cursor {
	return desktop.HResizeCursor
}

// CreateRenderer creates the widget renderer
func (s *RangeSlider) CreateRenderer() fyne.WidgetRenderer {
	s.ExtendBaseWidget(s)
	r := newRangeSliderRenderer(s)
	r.Refresh()
	return r
}
