// Package ui  Setup for the Path2Peace application
package ui

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/widget"

	"path2peace/internal/audio"
	"path2peace/internal/config"
	"path2peace/internal/scan"
	"path2peace/internal/service"
	"path2peace/internal/slideshow"
	"path2peace/internal/video"
)

// App represents the whole application with all its windows, widgets and functions
type App struct {
	app fyne.App
	UI  UI

	cfg    *config.Config
	assets *scan.Assets
	ctrl   *slideshow.Controller

	statusLog *statusLog
	closeOnce sync.Once
}

// UI holds the widgets the controller drives.
type UI struct {
	MainWin    fyne.Window
	mainModKey fyne.KeyModifier

	surface    *tappableImage
	errorLabel *widget.Label
	prevBtn    *widget.Button
	nextBtn    *widget.Button

	statusPathLabel  *widget.Label
	statusLogLabel   *widget.Label
	statusLogUpBtn   *widget.Button
	statusLogDownBtn *widget.Button
}

// deps are the collaborators the controller is built with.
type deps struct {
	audio     slideshow.AudioPlayer
	imager    slideshow.Imager
	dispatch  slideshow.Dispatcher
	openVideo slideshow.VideoOpener
	spawn     func(func())
}

// CreateApplication is the GUI entrypoint. It returns an error for the fatal
// startup failures: invalid configuration, an unusable asset layout or an
// audio device that cannot be opened.
func CreateApplication() error {
	baseDir, err := executableDir()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	cfg, err := config.Load(baseDir, "")
	if err != nil {
		return err
	}

	assets, err := scan.Index(baseDir, cfg)
	if err != nil {
		return fmt.Errorf("failed to index assets in %s: %w", baseDir, err)
	}
	log.Printf("Found %d pictures and %d intro videos", len(assets.Media), len(assets.Intro))

	engine, err := audio.NewEngine(audio.DefaultSampleRate)
	if err != nil {
		return fmt.Errorf("failed to initialize audio: %w", err)
	}

	opener := video.Opener{FFmpegPath: cfg.Intro.FFmpegPath, FFprobePath: cfg.Intro.FFprobePath}

	a := app.NewWithID("com.github.path2peace")
	ui := newApp(a, cfg, assets, deps{
		audio:     engine,
		imager:    service.NewImageService(),
		dispatch:  slideshow.DispatcherFunc(fyne.Do),
		openVideo: videoOpener(opener),
	})

	a.Lifecycle().SetOnStarted(func() {
		ui.ctrl.Start(context.Background())
	})

	ui.UI.MainWin.CenterOnScreen()
	ui.UI.MainWin.ShowAndRun()

	// The event loop can end without the close intercept running.
	if err := ui.ctrl.Close(); err != nil {
		log.Printf("Error closing audio: %v", err)
	}
	return nil
}

// newApp builds the window and the controller without starting either.
func newApp(a fyne.App, cfg *config.Config, assets *scan.Assets, d deps) *App {
	a.Settings().SetTheme(newViewerTheme(a.Settings().Theme()))

	ui := &App{app: a, cfg: cfg, assets: assets}
	ui.UI.MainWin = a.NewWindow(cfg.Window.Title)
	ui.UI.MainWin.SetContent(ui.buildMainUI())
	ui.UI.MainWin.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	ui.UI.MainWin.SetFixedSize(cfg.Window.Fixed)
	ui.UI.MainWin.SetCloseIntercept(ui.shutdown)

	ui.ctrl = slideshow.New(slideshow.Options{
		Media:         assets.Media,
		Intro:         assets.Intro,
		Display:       ui,
		Audio:         d.audio,
		Imager:        d.imager,
		UI:            d.dispatch,
		OpenVideo:     d.openVideo,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		FrameInterval: cfg.FrameInterval(),
		AutoAdvance:   cfg.SlideshowInterval(),
		Logger:        func(msg string) { log.Print(msg) },
		Go:            d.spawn,
	})
	return ui
}

// shutdown releases the controller (and with it the audio device) before the
// window goes away. It runs on window close and on Ctrl+Q.
func (a *App) shutdown() {
	a.closeOnce.Do(func() {
		log.Println("Shutting down...")
		if err := a.ctrl.Close(); err != nil {
			log.Printf("Error closing audio: %v", err)
		}
		a.UI.MainWin.Close()
	})
}

// addLogMessage adds a message to the UI log display.
func (a *App) addLogMessage(message string) {
	if a.statusLog != nil {
		a.statusLog.Add(message)
		return
	}
	log.Printf("status log not ready, console log: %s", message)
}

// videoOpener adapts the ffmpeg decoder to the controller's frame source.
func videoOpener(o video.Opener) slideshow.VideoOpener {
	return func(ctx context.Context, path string) (slideshow.FrameSource, error) {
		d, err := o.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
