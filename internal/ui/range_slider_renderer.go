package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// rangeSliderRenderer draws frames, then the selection, then the thumbs
type rangeSliderRenderer struct {
	slider *RangeSlider

	frames      []*canvas.Image
	frameImages []image.Image
	selection   *canvas.Rectangle
	minThumb    *canvas.Rectangle
	maxThumb    *canvas.Rectangle

	objects []fyne.CanvasObject
}

func newRangeSliderRenderer(s *RangeSlider) *rangeSliderRenderer {
	style := s.style
	r := &rangeSliderRenderer{
		slider:    s,
		selection: canvas.NewRectangle(style.SelectionColor),
		minThumb:  newThumbRect(style),
		maxThumb:  newThumbRect(style),
	}
	r.rebuildObjects()
	return r
}

func newThumbRect(style RangeSliderStyle) *canvas.Rectangle {
	thumb := canvas.NewRectangle(style.ThumbColor)
	thumb.CornerRadius = style.ThumbRadius
	thumb.Resize(style.ThumbSize)
	return thumb
}

// Layout positions every object for the given size
func (r *rangeSliderRenderer) Layout(size fyne.Size) {
	s := r.slider
	track := s.Track()
	centerY := size.Height / 2

	r.syncFrames()
	if frameWidth, err := track.SlotWidth(len(r.frames)); err == nil {
		for i, img := range r.frames {
			b := r.frameImages[i].Bounds()
			w, h := float32(b.Dx()), float32(b.Dy())
			img.Resize(fyne.NewSize(w, h))
			img.Move(fyne.NewPos(track.Start+float32(i)*frameWidth, centerY-h/2))
		}
	}

	minX, _ := track.PositionOf(s.MinThumbValue)
	maxX, _ := track.PositionOf(s.MaxThumbValue)

	left, right := minX, maxX
	if right < left {
		left, right = right, left
	}
	selH := s.style.SelectionHeight
	r.selection.Move(fyne.NewPos(left, centerY-selH/2))
	r.selection.Resize(fyne.NewSize(right-left, selH))

	r.placeThumb(r.minThumb, minX, centerY)
	r.placeThumb(r.maxThumb, maxX, centerY)
}

func (r *rangeSliderRenderer) placeThumb(thumb *canvas.Rectangle, x, centerY float32) {
	size := r.slider.style.ThumbSize
	thumb.Resize(size)
	thumb.Move(fyne.NewPos(x-size.Width/2, centerY-size.Height/2))
}

// MinSize fits both thumbs on a minimal track
func (r *rangeSliderRenderer) MinSize() fyne.Size {
	thumb := r.slider.style.ThumbSize
	return fyne.NewSize(
		fyne.Max(RangeSliderMinWidth, thumb.Width*2),
		fyne.Max(RangeSliderMinHeight, thumb.Height),
	)
}

// Refresh re-syncs the frames and redraws
func (r *rangeSliderRenderer) Refresh() {
	style := r.slider.style
	r.selection.FillColor = style.SelectionColor
	r.minThumb.FillColor = style.ThumbColor
	r.maxThumb.FillColor = style.ThumbColor

	r.Layout(r.slider.Size())
	for _, obj := range r.objects {
		canvas.Refresh(obj)
	}
}

// Objects returns frames first so they render behind the selection and thumbs
func (r *rangeSliderRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy is a no-op
func (r *rangeSliderRenderer) Destroy() {}

// syncFrames rebuilds the canvas images when the scaled sequence changed
func (r *rangeSliderRenderer) syncFrames() {
	scaled := r.slider.strip.Scaled()
	if sameImages(scaled, r.frameImages) {
		return
	}

	r.frameImages = scaled
	r.frames = make([]*canvas.Image, len(scaled))
	for i, img := range scaled {
		ci := canvas.NewImageFromImage(img)
		ci.FillMode = canvas.ImageFillStretch
		ci.ScaleMode = canvas.ImageScaleSmooth
		r.frames[i] = ci
	}
	r.rebuildObjects()
}

func (r *rangeSliderRenderer) rebuildObjects() {
	objects := make([]fyne.CanvasObject, 0, len(r.frames)+3)
	for _, img := range r.frames {
		objects = append(objects, img)
	}
	r.objects = append(objects, r.selection, r.minThumb, r.maxThumb)
}

func sameImages(a, b []image.Image) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
