package ui

import (
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

func (a *App) buildStatusBar() *fyne.Container {
	a.UI.prevBtn = widget.NewButtonWithIcon("Prev", theme.NavigateBackIcon(), func() { a.ctrl.Prev() })
	a.UI.nextBtn = widget.NewButtonWithIcon("Next", theme.NavigateNextIcon(), func() { a.ctrl.Next() })
	a.UI.nextBtn.IconPlacement = widget.ButtonIconTrailingText
	a.UI.statusPathLabel = widget.NewLabel("Ready")
	a.UI.statusPathLabel.Truncation = fyne.TextTruncateEllipsis

	a.UI.statusLogLabel = widget.NewLabel("")
	a.UI.statusLogLabel.Truncation = fyne.TextTruncateEllipsis
	a.UI.statusLogUpBtn = widget.NewButtonWithIcon("", theme.MoveUpIcon(), nil)
	a.UI.statusLogDownBtn = widget.NewButtonWithIcon("", theme.MoveDownIcon(), nil)
	a.statusLog = newStatusLog(a.UI.statusLogLabel, a.UI.statusLogUpBtn, a.UI.statusLogDownBtn, a.cfg.Log.MaxMessages)

	return container.NewVBox(
		widget.NewSeparator(),
		container.NewBorder(nil, nil,
			container.NewHBox(a.UI.prevBtn, a.UI.nextBtn),
			nil,
			a.UI.statusPathLabel,
		),
		container.NewBorder(nil, nil,
			container.NewHBox(a.UI.statusLogUpBtn, a.UI.statusLogDownBtn),
			nil,
			a.UI.statusLogLabel,
		),
	)
}

func (a *App) buildMainMenu() *fyne.MainMenu {
	return fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Close", a.shutdown),
		),
		fyne.NewMenu("View",
			fyne.NewMenuItem("Next Image", func() { a.ctrl.Next() }),
			fyne.NewMenuItem("Previous Image", func() { a.ctrl.Prev() }),
			fyne.NewMenuItem("Play Audio", func() { a.ctrl.Activate() }),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Skip Intro Video", func() { a.ctrl.SkipIntroVideo() }),
			fyne.NewMenuItem("Pause/Resume Slideshow", a.toggleAutoAdvance),
		),
		fyne.NewMenu("Help",
			fyne.NewMenuItem("Keyboard Shortcuts", a.showShortcuts),
			fyne.NewMenuItem("About", func() {
				NewAbout(&a.UI.MainWin, "About", a.cfg.Window.Title, theme.MediaPlayIcon()).Show()
			}),
		),
	)
}

func (a *App) buildMainUI() fyne.CanvasObject {
	a.UI.MainWin.SetMaster()
	// set main mod key to super on darwin hosts, else set it to ctrl
	if runtime.GOOS == "darwin" {
		a.UI.mainModKey = fyne.KeyModifierSuper
	} else {
		a.UI.mainModKey = fyne.KeyModifierControl
	}

	a.UI.surface = newTappableImage(func() { a.ctrl.Activate() })
	a.UI.surface.SetMinSize(fyne.NewSize(200, 150))
	a.UI.errorLabel = widget.NewLabel("")
	a.UI.errorLabel.Alignment = fyne.TextAlignCenter
	a.UI.errorLabel.Wrapping = fyne.TextWrapWord
	a.UI.errorLabel.Hide()

	status := a.buildStatusBar()
	a.UI.MainWin.SetMainMenu(a.buildMainMenu())
	a.buildKeyboardShortcuts()

	return container.NewBorder(
		nil,    // Top
		status, // Bottom
		nil,
		nil,
		container.NewStack(
			a.UI.surface,
			container.NewCenter(a.UI.errorLabel),
		),
	)
}
