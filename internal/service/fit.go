package service

import (
	"image"

	"github.com/nfnt/resize"
)

// FitSize computes the size of a srcW x srcH picture scaled into a viewW x viewH
// viewport with its aspect ratio kept: the dimension that is larger relative to
// the viewport fills its axis exactly and the other shrinks proportionally.
func FitSize(srcW, srcH, viewW, viewH int) (int, int) {
	if srcW <= 0 || srcH <= 0 || viewW <= 0 || viewH <= 0 {
		return 0, 0
	}
	// Integer cross-multiplication compares the aspect ratios exactly.
	var w, h int
	if srcW*viewH > viewW*srcH {
		w = viewW
		h = viewW * srcH / srcW
	} else {
		h = viewH
		w = viewH * srcW / srcH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Fit returns img scaled to the viewport with Lanczos3 resampling. An image that
// already has the fitted size is returned unchanged.
func Fit(img image.Image, viewW, viewH int) image.Image {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), viewW, viewH)
	if w == 0 || (w == b.Dx() && h == b.Dy()) {
		return img
	}
	return resize.Resize(uint(w), uint(h), img, resize.Lanczos3)
}
