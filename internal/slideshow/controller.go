// Package slideshow drives the viewer: it owns the current position, plays the
// intro videos on a background worker and mediates between the asset index and
// the display, audio and video collaborators.
//
// Every exported Controller method must be called on the UI thread. Background
// work (image loading, the intro worker, auto-advance) reaches the controller
// only by posting closures through the Dispatcher.
package slideshow

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"sync"
	"time"

	"path2peace/internal/scan"
)

// State is the controller's position in its state machine.
type State int

const (
	// Introing plays the intro sequence; navigation and audio are locked.
	Introing State = iota
	// Idle waits for a command.
	Idle
	// Navigating is the transient state of a Next or Prev.
	Navigating
	// PlayingAudio is the transient state of starting a clip.
	PlayingAudio
)

func (s State) String() string {
	switch s {
	case Introing:
		return "Introing"
	case Idle:
		return "Idle"
	case Navigating:
		return "Navigating"
	case PlayingAudio:
		return "PlayingAudio"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Status is a snapshot of the playback state for the status bar.
type Status struct {
	State        State
	Index        int
	Count        int
	Path         string
	IntroPlaying bool
	AutoPaused   bool
}

// Display is the UI surface. ShowImage and ShowError replace the display surface
// wholesale; Notify writes an inline message and leaves the surface alone.
type Display interface {
	ShowImage(img image.Image)
	ShowError(msg string)
	Notify(msg string)
	SetStatus(st Status)
}

// AudioPlayer plays one clip at a time.
type AudioPlayer interface {
	Play(path string) error
	Stop()
	Close() error
}

// Imager decodes pictures and fits pictures or frames to the viewport.
type Imager interface {
	Load(path string, width, height int) (image.Image, error)
	Fit(img image.Image, width, height int) image.Image
}

// Dispatcher posts f to the UI thread's command queue and returns immediately.
type Dispatcher interface {
	Do(f func())
}

// DispatcherFunc adapts a function to Dispatcher.
type DispatcherFunc func(f func())

// Do calls d(f).
func (d DispatcherFunc) Do(f func()) { d(f) }

// FrameSource yields the frames of one video. Next returns io.EOF at the end of
// the stream. Interval is the frame pacing, 0 when unknown.
type FrameSource interface {
	Next() (image.Image, error)
	Interval() time.Duration
	Close() error
}

// VideoOpener starts decoding the video at path.
type VideoOpener func(ctx context.Context, path string) (FrameSource, error)

// Options wires a Controller to its collaborators.
type Options struct {
	Media scan.MediaSet
	Intro scan.IntroSequence

	Display   Display
	Audio     AudioPlayer
	Imager    Imager
	UI        Dispatcher
	OpenVideo VideoOpener

	// Width and Height are the display viewport used to fit pictures and frames.
	Width  int
	Height int

	// FrameInterval paces intro frames whose source reports no interval.
	FrameInterval time.Duration

	// AutoAdvance enables the slideshow timer when positive.
	AutoAdvance time.Duration

	// Logger receives console diagnostics. Defaults to the standard logger.
	Logger func(string)

	// Go runs background loads. Defaults to starting a goroutine.
	Go func(f func())
}

// Controller is the viewer's state machine.
type Controller struct {
	media         scan.MediaSet
	intro         scan.IntroSequence
	display       Display
	audio         AudioPlayer
	imager        Imager
	ui            Dispatcher
	openVideo     VideoOpener
	width, height int
	frameInterval time.Duration
	logger        func(string)
	spawn         func(f func())

	// UI-thread state.
	index        int
	state        State
	introPlaying bool
	closed       bool
	loadGen      uint64

	introCancel context.CancelFunc
	introDone   chan struct{}
	skip        chan struct{}

	auto       *AutoAdvance
	autoCancel context.CancelFunc

	closeOnce sync.Once
	closeErr  error
}

// New builds a controller in the Idle state at index 0. Nothing is displayed
// until Start.
func New(opts Options) *Controller {
	c := &Controller{
		media:         opts.Media,
		intro:         opts.Intro,
		display:       opts.Display,
		audio:         opts.Audio,
		imager:        opts.Imager,
		ui:            opts.UI,
		openVideo:     opts.OpenVideo,
		width:         opts.Width,
		height:        opts.Height,
		frameInterval: opts.FrameInterval,
		logger:        opts.Logger,
		spawn:         opts.Go,
		state:         Idle,
		skip:          make(chan struct{}, 1),
	}
	if c.logger == nil {
		c.logger = func(msg string) { log.Print(msg) }
	}
	if c.spawn == nil {
		c.spawn = func(f func()) { go f() }
	}
	if c.frameInterval <= 0 {
		c.frameInterval = 25 * time.Millisecond
	}
	if opts.AutoAdvance > 0 {
		c.auto = NewAutoAdvance(opts.AutoAdvance)
	}
	return c
}

// Start enters Introing when there is an intro sequence, otherwise shows the
// first picture. Cancelling ctx stops the intro worker and auto-advance.
func (c *Controller) Start(ctx context.Context) {
	if c.auto != nil {
		autoCtx, cancel := context.WithCancel(ctx)
		c.autoCancel = cancel
		go c.auto.Run(autoCtx, func() { c.ui.Do(c.autoNext) })
	}

	if len(c.intro) == 0 || c.openVideo == nil {
		c.state = Idle
		c.index = 0
		c.showCurrent()
		c.publishStatus()
		return
	}

	c.state = Introing
	c.introPlaying = true
	if c.auto != nil {
		c.auto.Pause(true)
	}
	introCtx, cancel := context.WithCancel(ctx)
	c.introCancel = cancel
	c.introDone = make(chan struct{})
	c.publishStatus()
	c.logger(fmt.Sprintf("Playing %d intro video(s)", len(c.intro)))
	go c.runIntro(introCtx, c.intro)
}

// Next moves to the following picture. It is a no-op on the last picture.
func (c *Controller) Next() {
	c.pauseAuto()
	c.step(1)
}

// Prev moves to the preceding picture. It is a no-op on the first picture.
func (c *Controller) Prev() {
	c.pauseAuto()
	c.step(-1)
}

func (c *Controller) step(delta int) {
	if c.closed || c.introPlaying {
		return
	}
	target := c.index + delta
	if target < 0 || target >= len(c.media) {
		return
	}
	c.state = Navigating
	c.index = target
	c.showCurrent()
	c.state = Idle
	c.publishStatus()
}

func (c *Controller) autoNext() {
	if c.closed || c.introPlaying || c.auto == nil || c.auto.IsPaused() {
		return
	}
	c.step(1)
}

// Activate plays the clip paired with the current picture, stopping any clip in
// progress. It does nothing while the intro plays. A missing clip is reported
// inline and changes nothing else.
func (c *Controller) Activate() {
	if c.closed || c.introPlaying {
		return
	}
	path := c.media[c.index].Audio
	if _, err := os.Stat(path); err != nil {
		c.report(fmt.Sprintf("Error: Audio file not found: %s", path))
		return
	}

	c.state = PlayingAudio
	c.audio.Stop()
	if err := c.audio.Play(path); err != nil {
		c.report(fmt.Sprintf("Error playing audio: %v", err))
	} else {
		c.logger(fmt.Sprintf("Playing audio from: %s", path))
	}
	c.state = Idle
}

// SkipIntroVideo asks the intro worker to stop the video it is playing and move
// on to the next one.
func (c *Controller) SkipIntroVideo() {
	if c.closed || !c.introPlaying {
		return
	}
	select {
	case c.skip <- struct{}{}:
	default:
	}
}

// ToggleAutoAdvance pauses or resumes the slideshow timer and reports whether
// it is now paused. Without a timer it reports true.
func (c *Controller) ToggleAutoAdvance() bool {
	if c.auto == nil {
		return true
	}
	c.auto.TogglePlayPause()
	c.publishStatus()
	return c.auto.IsPaused()
}

func (c *Controller) pauseAuto() {
	if c.auto != nil && !c.auto.IsPaused() {
		c.auto.Pause(false)
		c.publishStatus()
	}
}

// Close stops the intro worker and auto-advance, waits for the worker to exit,
// then releases the audio engine. The caller tears down the display afterwards.
// Close is idempotent.
func (c *Controller) Close() error {
	c.closeOnce.Do(func() {
		c.closed = true
		if c.autoCancel != nil {
			c.autoCancel()
		}
		if c.introCancel != nil {
			c.introCancel()
			<-c.introDone
		}
		if c.audio != nil {
			c.closeErr = c.audio.Close()
		}
	})
	return c.closeErr
}

// Index returns the current position.
func (c *Controller) Index() int { return c.index }

// Count returns the number of pictures.
func (c *Controller) Count() int { return len(c.media) }

// State returns the current state.
func (c *Controller) State() State { return c.state }

// IntroPlaying reports whether the intro sequence is still running.
func (c *Controller) IntroPlaying() bool { return c.introPlaying }

// Status returns a snapshot for the status bar.
func (c *Controller) Status() Status {
	st := Status{
		State:        c.state,
		Index:        c.index,
		Count:        len(c.media),
		IntroPlaying: c.introPlaying,
		AutoPaused:   c.auto == nil || c.auto.IsPaused(),
	}
	if c.index >= 0 && c.index < len(c.media) {
		st.Path = c.media[c.index].Image
	}
	return st
}

func (c *Controller) publishStatus() {
	if c.display != nil && !c.closed {
		c.display.SetStatus(c.Status())
	}
}

// report logs msg and shows it inline.
func (c *Controller) report(msg string) {
	c.logger(msg)
	if c.display != nil {
		c.display.Notify(msg)
	}
}

// showCurrent loads the current picture off the UI thread. A newer request
// supersedes older ones still in flight.
func (c *Controller) showCurrent() {
	c.loadGen++
	gen := c.loadGen
	path := c.media[c.index].Image
	c.spawn(func() {
		img, err := c.imager.Load(path, c.width, c.height)
		c.ui.Do(func() { c.applyLoad(gen, path, img, err) })
	})
}

func (c *Controller) applyLoad(gen uint64, path string, img image.Image, err error) {
	if c.closed || c.introPlaying || gen != c.loadGen {
		return
	}
	if err != nil {
		msg := fmt.Sprintf("Error loading image: %v", err)
		if errors.Is(err, os.ErrNotExist) {
			msg = fmt.Sprintf("Error: Image not found: %s", path)
		}
		c.logger(msg)
		c.display.ShowError(msg)
		return
	}
	c.display.ShowImage(img)
}
