// Package ui  Shortcuts for keyboard actions
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

func (a *App) buildKeyboardShortcuts() {
	// ctrl+q quits through the same path as closing the window
	a.UI.MainWin.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: a.UI.mainModKey,
	}, func(_ fyne.Shortcut) { a.shutdown() })

	a.UI.MainWin.Canvas().SetOnTypedKey(a.handleKey)
}

func (a *App) handleKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyRight:
		a.ctrl.Next()
	case fyne.KeyLeft:
		a.ctrl.Prev()
	case fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter:
		a.ctrl.Activate()
	case fyne.KeyQ:
		a.ctrl.SkipIntroVideo()
	case fyne.KeyP:
		a.toggleAutoAdvance()
	// close dialogs with esc key
	case fyne.KeyEscape:
		if len(a.UI.MainWin.Canvas().Overlays().List()) > 0 {
			a.UI.MainWin.Canvas().Overlays().Top().Hide()
		}
	}
}

var shortcutHelp = [][2]string{
	{"Next Image", "Arrow Right"},
	{"Previous Image", "Arrow Left"},
	{"Play Audio", "Space or Enter (or click the image)"},
	{"Skip Intro Video", "Q"},
	{"Pause/Resume Slideshow", "P"},
	{"Close Dialog", "Esc"},
	{"Quit Application", "Ctrl+Q"},
}

func (a *App) showShortcuts() {
	win := a.app.NewWindow("Keyboard Shortcuts")
	table := widget.NewTable(
		func() (int, int) { return len(shortcutHelp) + 1, 2 }, // +1 for header row
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			isHeader := id.Row == 0
			if isHeader {
				label.SetText(ternaryString(id.Col == 0, "Description", "Shortcut"))
			} else {
				label.SetText(shortcutHelp[id.Row-1][id.Col])
			}
			label.TextStyle.Bold = isHeader
		},
	)
	table.SetColumnWidth(0, 220)
	table.SetColumnWidth(1, 280)
	win.SetContent(table)
	win.Resize(fyne.NewSize(500, 320))
	win.Show()
}
