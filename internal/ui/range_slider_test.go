package ui

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changeRecorder struct {
	calls [][2]float64
}

func (c *changeRecorder) record(min, max float64) {
	c.calls = append(c.calls, [2]float64{min, max})
}

// newTestSlider returns a slider whose track is exactly [0, width]
func newTestSlider(t *testing.T, width float32) *RangeSlider {
	t.Helper()
	test.NewApp()

	style := DefaultRangeSliderStyle()
	style.HorizontalPadding = 0
	s := NewRangeSliderWithStyle(style)
	s.Resize(fyne.NewSize(width, 100))
	return s
}

func frames(n int) []image.Image {
	out := make([]image.Image, n)
	for i := range out {
		img := image.NewRGBA(image.Rect(0, 0, 16, 9))
		img.Set(0, 0, color.RGBA{R: uint8(i * 40), A: 255})
		out[i] = img
	}
	return out
}

func canvasImages(r fyne.WidgetRenderer) []*canvas.Image {
	var images []*canvas.Image
	for _, obj := range r.Objects() {
		if img, ok := obj.(*canvas.Image); ok {
			images = append(images, img)
		}
	}
	return images
}

func TestNewRangeSlider_Defaults(t *testing.T) {
	test.NewApp()
	s := NewRangeSlider()

	assert.Equal(t, 0.0, s.MinValue)
	assert.Equal(t, 100.0, s.MaxValue)
	minValue, maxValue := s.Values()
	assert.Equal(t, 0.0, minValue)
	assert.Equal(t, 100.0, maxValue)
	assert.Equal(t, NotifyOnChange, s.NotifyMode)
	assert.Nil(t, s.OnChanged)
}

func TestRangeSlider_ResizeComputesTrack(t *testing.T) {
	test.NewApp()
	s := NewRangeSlider()
	s.Resize(fyne.NewSize(300, 100))

	pad := s.Style().HorizontalPadding
	assert.Equal(t, pad, s.TrackStart())
	assert.Equal(t, 300-pad, s.TrackEnd())
}

func TestRangeSlider_PointerDownMovesNearestThumb(t *testing.T) {
	s := newTestSlider(t, 100)
	rec := &changeRecorder{}
	s.SetOnChanged(rec.record)

	s.PointerDown(25)

	assert.InDelta(t, 25.0, s.MinThumbValue, 1e-6)
	assert.Equal(t, 100.0, s.MaxThumbValue)
	require.Len(t, rec.calls, 1)
	assert.InDelta(t, 25.0, rec.calls[0][0], 1e-6)
	assert.Equal(t, 100.0, rec.calls[0][1])
}

func TestRangeSlider_PointerNearMaxThumb(t *testing.T) {
	s := newTestSlider(t, 100)
	rec := &changeRecorder{}
	s.SetOnChanged(rec.record)

	s.PointerDown(80)

	assert.Equal(t, 0.0, s.MinThumbValue)
	assert.InDelta(t, 80.0, s.MaxThumbValue, 1e-6)
	require.Len(t, rec.calls, 1)
}

func TestRangeSlider_TieGoesToMaxThumb(t *testing.T) {
	s := newTestSlider(t, 100)

	s.PointerDown(50)

	assert.Equal(t, 0.0, s.MinThumbValue)
	assert.InDelta(t, 50.0, s.MaxThumbValue, 1e-6)
}

func TestRangeSlider_MinThumbClampedToMaxThumb(t *testing.T) {
	s := newTestSlider(t, 100)
	s.SetValues(40, 50)

	moved := s.moveThumb(ThumbMin, 60)

	assert.True(t, moved)
	assert.Equal(t, 50.0, s.MinThumbValue)
	assert.Equal(t, 50.0, s.MaxThumbValue)
}

func TestRangeSlider_MaxThumbClampedToMinThumb(t *testing.T) {
	s := newTestSlider(t, 100)
	s.SetValues(40, 50)

	s.moveThumb(ThumbMax, 10)

	assert.Equal(t, 40.0, s.MaxThumbValue)
}

func TestRangeSlider_ClampedToValueRange(t *testing.T) {
	s := newTestSlider(t, 100)
	s.SetValues(20, 80)

	s.PointerDown(-50)
	assert.Equal(t, 0.0, s.MinThumbValue)

	s.PointerDown(500)
	assert.Equal(t, 100.0, s.MaxThumbValue)
}

func TestRangeSlider_NoNotificationWithoutMovement(t *testing.T) {
	s := newTestSlider(t, 100)
	rec := &changeRecorder{}
	s.SetOnChanged(rec.record)

	s.PointerDown(0) // min thumb already at 0
	s.PointerMove(0)

	assert.Empty(t, rec.calls)
}

func TestRangeSlider_NotifyEveryEvent(t *testing.T) {
	s := newTestSlider(t, 100)
	s.NotifyMode = NotifyEveryEvent
	rec := &changeRecorder{}
	s.SetOnChanged(rec.record)

	s.PointerDown(25)
	assert.Len(t, rec.calls, 2, "moving event notifies inside the change and once more after")

	s.PointerMove(25)
	assert.Len(t, rec.calls, 3, "non-moving event still notifies once")

	for _, call := range rec.calls {
		assert.InDelta(t, 25.0, call[0], 1e-6)
		assert.Equal(t, 100.0, call[1])
	}
}

func TestRangeSlider_LastListenerWins(t *testing.T) {
	s := newTestSlider(t, 100)
	first := &changeRecorder{}
	second := &changeRecorder{}
	s.SetOnChanged(first.record)
	s.SetOnChanged(second.record)

	s.PointerDown(30)

	assert.Empty(t, first.calls)
	assert.Len(t, second.calls, 1)

	s.SetOnChanged(nil)
	assert.NotPanics(t, func() { s.PointerDown(10) })
}

func TestRangeSlider_OrderingHoldsForRandomGestures(t *testing.T) {
	s := newTestSlider(t, 200)
	s.MaxValue = 1000
	s.SetValues(0, 1000)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		x := rng.Float32()*300 - 50
		if i%5 == 0 {
			s.PointerDown(x)
		} else {
			s.PointerMove(x)
		}
		require.LessOrEqual(t, s.MinThumbValue, s.MaxThumbValue, "after event %d at x=%v", i, x)
		require.GreaterOrEqual(t, s.MinThumbValue, s.MinValue)
		require.LessOrEqual(t, s.MaxThumbValue, s.MaxValue)
	}
}

func TestRangeSlider_DesktopAndTouchEvents(t *testing.T) {
	s := newTestSlider(t, 100)

	s.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(20, 50)},
		Button:     desktop.MouseButtonSecondary,
	})
	assert.Equal(t, 0.0, s.MinThumbValue, "secondary button is ignored")

	s.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(20, 50)},
		Button:     desktop.MouseButtonPrimary,
	})
	assert.InDelta(t, 20.0, s.MinThumbValue, 1e-6)

	s.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(30, 50)}})
	assert.InDelta(t, 30.0, s.MinThumbValue, 1e-6)

	s.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(90, 50)}})
	assert.InDelta(t, 90.0, s.MaxThumbValue, 1e-6)

	s.DragEnd()
	s.TouchUp(&mobile.TouchEvent{})
	s.TouchCancel(&mobile.TouchEvent{})
	s.MouseUp(&desktop.MouseEvent{})
	assert.Equal(t, desktop.HResizeCursor, s.Cursor())
}

func TestRangeSlider_ZeroWidthIsSafe(t *testing.T) {
	s := newTestSlider(t, 0)
	rec := &changeRecorder{}
	s.SetOnChanged(rec.record)

	assert.NotPanics(t, func() {
		s.PointerDown(10)
		s.PointerMove(-10)
		s.SetThumbnails(frames(3))
		test.WidgetRenderer(s).Refresh()
	})
	assert.Empty(t, rec.calls)
	assert.Nil(t, s.Thumbnails(), "no scaled frames on a zero width track")
	assert.Equal(t, 0.0, s.MinThumbValue)
	assert.Equal(t, 100.0, s.MaxThumbValue)

	s.Resize(fyne.NewSize(120, 100))
	assert.Len(t, s.Thumbnails(), 3, "frames are scaled once the track has width")
}

func TestRangeSlider_ZeroMaxValueIsSafe(t *testing.T) {
	s := newTestSlider(t, 100)
	s.SetRange(0, 0)

	assert.NotPanics(t, func() {
		s.PointerDown(40)
		test.WidgetRenderer(s).Layout(s.Size())
	})
	assert.Equal(t, 0.0, s.MinThumbValue)
	assert.Equal(t, 0.0, s.MaxThumbValue)
}

func TestRangeSlider_EmptyThumbnailsRenderNothing(t *testing.T) {
	s := newTestSlider(t, 200)
	s.SetThumbnails(nil)

	r := test.WidgetRenderer(s)
	r.Refresh()

	assert.Empty(t, canvasImages(r))
	assert.Len(t, r.Objects(), 3, "selection and two thumbs only")
}

func TestRangeSlider_ThumbnailsTileTheTrack(t *testing.T) {
	s := newTestSlider(t, 200)
	s.SetThumbnails(frames(4))

	scaled := s.Thumbnails()
	require.Len(t, scaled, 4)
	assert.Equal(t, image.Rect(0, 0, 50, 60), scaled[0].Bounds())

	r := test.WidgetRenderer(s)
	r.Layout(s.Size())
	images := canvasImages(r)
	require.Len(t, images, 4)
	for i, img := range images {
		assert.Equal(t, fyne.NewPos(float32(i)*50, 20), img.Position())
		assert.Equal(t, fyne.NewSize(50, 60), img.Size())
	}
}

func TestRangeSlider_ResizeIsIdempotent(t *testing.T) {
	s := newTestSlider(t, 200)
	s.SetThumbnails(frames(2))
	before := s.Thumbnails()

	s.Resize(fyne.NewSize(200, 100))
	after := s.Thumbnails()

	require.Len(t, after, 2)
	for i := range before {
		assert.Same(t, before[i], after[i])
	}

	s.Resize(fyne.NewSize(300, 100))
	assert.Equal(t, image.Rect(0, 0, 150, 60), s.Thumbnails()[0].Bounds())
}

func TestRangeSlider_RenderOrderAndSelection(t *testing.T) {
	s := newTestSlider(t, 100)
	s.SetThumbnails(frames(2))
	s.SetValues(20, 60)

	r := test.WidgetRenderer(s).(*rangeSliderRenderer)
	r.Layout(s.Size())

	objects := r.Objects()
	require.Len(t, objects, 5)
	assert.IsType(t, &canvas.Image{}, objects[0])
	assert.IsType(t, &canvas.Image{}, objects[1])
	assert.Same(t, r.selection, objects[2])
	assert.Same(t, r.minThumb, objects[3])
	assert.Same(t, r.maxThumb, objects[4])

	selH := s.Style().SelectionHeight
	assert.Equal(t, fyne.NewPos(20, 50-selH/2), r.selection.Position())
	assert.Equal(t, fyne.NewSize(40, selH), r.selection.Size())

	thumb := s.Style().ThumbSize
	assert.Equal(t, fyne.NewPos(20-thumb.Width/2, 50-thumb.Height/2), r.minThumb.Position())
	assert.Equal(t, fyne.NewPos(60-thumb.Width/2, 50-thumb.Height/2), r.maxThumb.Position())
}

func TestRangeSlider_SetRangeKeepsThumbsInside(t *testing.T) {
	s := newTestSlider(t, 100)
	s.SetValues(10, 90)

	s.SetRange(20, 50)

	assert.Equal(t, 20.0, s.MinThumbValue)
	assert.Equal(t, 50.0, s.MaxThumbValue)

	s.SetRange(80, 30) // swapped bounds are normalized
	assert.Equal(t, 30.0, s.MinValue)
	assert.Equal(t, 80.0, s.MaxValue)
}

func TestRangeSlider_SetValuesOrdersThumbs(t *testing.T) {
	s := newTestSlider(t, 100)
	rec := &changeRecorder{}
	s.SetOnChanged(rec.record)

	s.SetValues(70, 30)

	assert.Equal(t, 30.0, s.MinThumbValue)
	assert.Equal(t, 70.0, s.MaxThumbValue)
	assert.Empty(t, rec.calls, "programmatic moves do not notify")
}

func TestRangeSlider_MinSize(t *testing.T) {
	test.NewApp()
	s := NewRangeSlider()

	minSize := s.MinSize()
	assert.GreaterOrEqual(t, minSize.Width, RangeSliderMinWidth)
	assert.GreaterOrEqual(t, minSize.Height, RangeThumbHeight)
}
