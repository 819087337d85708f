package ui

import (
	"fmt"
	"image"
	"path/filepath"

	"path2peace/internal/slideshow"
)

var _ slideshow.Display = (*App)(nil)

// ShowImage replaces the display surface with img.
func (a *App) ShowImage(img image.Image) {
	a.UI.errorLabel.Hide()
	a.UI.surface.SetImage(img)
}

// ShowError replaces the display surface with a text message.
func (a *App) ShowError(msg string) {
	a.UI.surface.SetImage(nil)
	a.UI.errorLabel.SetText(msg)
	a.UI.errorLabel.Show()
	a.addLogMessage(msg)
}

// Notify writes msg to the status log, leaving the surface untouched.
func (a *App) Notify(msg string) {
	a.addLogMessage(msg)
}

// SetStatus updates the status line, the window title and the navigation buttons.
func (a *App) SetStatus(st slideshow.Status) {
	if st.IntroPlaying {
		a.UI.prevBtn.Disable()
		a.UI.nextBtn.Disable()
		a.UI.statusPathLabel.SetText("Playing intro  |  Q to skip")
		a.UI.MainWin.SetTitle(a.cfg.Window.Title)
		return
	}

	if st.Index > 0 {
		a.UI.prevBtn.Enable()
	} else {
		a.UI.prevBtn.Disable()
	}
	if st.Index < st.Count-1 {
		a.UI.nextBtn.Enable()
	} else {
		a.UI.nextBtn.Disable()
	}

	name := filepath.Base(st.Path)
	statusText := fmt.Sprintf("%s  |  Image %d / %d", name, st.Index+1, st.Count)
	if a.cfg.SlideshowInterval() > 0 {
		statusText += ternaryString(st.AutoPaused, "  |  Paused", "  |  Playing")
	}
	a.UI.statusPathLabel.SetText(statusText)
	a.UI.MainWin.SetTitle(fmt.Sprintf("%s - %s", a.cfg.Window.Title, name))
}

func (a *App) toggleAutoAdvance() {
	if a.cfg.SlideshowInterval() <= 0 {
		a.addLogMessage("Slideshow timer is disabled in the configuration")
		return
	}
	paused := a.ctrl.ToggleAutoAdvance()
	a.addLogMessage(ternaryString(paused, "Slideshow paused", "Slideshow playing"))
}

func ternaryString(condition bool, trueVal, falseVal string) string {
	if condition {
		return trueVal
	}
	return falseVal
}
