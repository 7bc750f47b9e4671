package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Touch-friendly sizing
const (
	MobileSliderHeight  float32 = 120
	DesktopSliderHeight float32 = RangeSliderMinHeight
	MobileSpacing       float32 = 16
	DesktopSpacing      float32 = 8
)

// DeviceLayout picks sizes and arrangements for the current device
type DeviceLayout struct {
	device fyne.Device
}

// NewDeviceLayout creates a layout helper for the running device
func NewDeviceLayout() *DeviceLayout {
	return &DeviceLayout{device: fyne.CurrentDevice()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (d *DeviceLayout) IsMobileDevice() bool {
	return d.device != nil && d.device.IsMobile()
}

// IsLandscape returns true if device is in landscape orientation
func (d *DeviceLayout) IsLandscape() bool {
	if d.device == nil {
		return true
	}
	orientation := d.device.Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// SliderHeight returns the minimum height of the trim slider. Thumbs get
// taller on touch screens.
func (d *DeviceLayout) SliderHeight() float32 {
	if d.IsMobileDevice() {
		return MobileSliderHeight
	}
	return DesktopSliderHeight
}

// Spacing returns appropriate spacing between control groups
func (d *DeviceLayout) Spacing() float32 {
	if d.IsMobileDevice() {
		return MobileSpacing
	}
	return DesktopSpacing
}

// Controls arranges the time labels and action buttons. Portrait phones
// stack them so the buttons stay reachable.
func (d *DeviceLayout) Controls(times, actions fyne.CanvasObject) *fyne.Container {
	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(d.Spacing(), d.Spacing()))

	if d.IsMobileDevice() && !d.IsLandscape() {
		return container.NewVBox(times, gap, actions)
	}
	return container.NewBorder(nil, nil, nil, container.NewHBox(gap, actions), times)
}
