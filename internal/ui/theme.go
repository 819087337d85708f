package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// viewerTheme is always dark, puts pictures on a black backdrop and tightens
// padding around the status bar.
type viewerTheme struct {
	fyne.Theme
}

var _ fyne.Theme = (*viewerTheme)(nil)

func newViewerTheme(base fyne.Theme) fyne.Theme {
	return &viewerTheme{Theme: base}
}

func (t *viewerTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return color.Black
	}
	return t.Theme.Color(name, theme.VariantDark)
}

func (t *viewerTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNamePadding {
		return 2
	}
	return t.Theme.Size(name)
}
