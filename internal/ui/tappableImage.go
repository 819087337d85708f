package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// tappableImage is the display surface: it shows one picture or video frame and
// reports taps.
type tappableImage struct {
	widget.BaseWidget
	image    *canvas.Image
	onTapped func()
}

// newTappableImage creates a new tappableImage widget.
func newTappableImage(onTapped func()) *tappableImage {
	ti := &tappableImage{
		image:    &canvas.Image{},
		onTapped: onTapped,
	}
	ti.image.FillMode = canvas.ImageFillContain
	ti.image.ScaleMode = canvas.ImageScaleFastest
	ti.ExtendBaseWidget(ti)
	return ti
}

// CreateRenderer is a mandatory method for a Fyne widget.
func (t *tappableImage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.image)
}

// Tapped is called when the widget is tapped.
func (t *tappableImage) Tapped(_ *fyne.PointEvent) {
	if t.onTapped != nil {
		t.onTapped()
	}
}

// SetImage swaps the displayed picture. nil clears the surface.
func (t *tappableImage) SetImage(img image.Image) {
	t.image.Image = img
	t.image.Resource = nil
	t.image.Refresh()
}

// Image returns the picture currently shown.
func (t *tappableImage) Image() image.Image {
	return t.image.Image
}

// SetMinSize sets the minimum size of the tappable image.
func (t *tappableImage) SetMinSize(size fyne.Size) {
	t.image.SetMinSize(size)
}
