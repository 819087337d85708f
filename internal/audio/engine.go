// Package audio plays the clip paired with the displayed picture. One clip plays
// at a time: starting a clip stops the previous one.
package audio

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// DefaultSampleRate is the speaker rate; clips at other rates are resampled.
const DefaultSampleRate beep.SampleRate = 44100

const resampleQuality = 4

// ErrClosed is returned by Play after Close.
var ErrClosed = errors.New("audio engine closed")

// clip bundles the resources of the playing clip.
type clip struct {
	path     string
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
}

func (c *clip) close() {
	if c.streamer != nil {
		c.streamer.Close()
	}
}

// Engine owns the speaker for the lifetime of the viewer.
type Engine struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	current    *clip
	closed     bool

	// output hooks; nil means the speaker package
	play  func(beep.Streamer)
	clear func()
}

// NewEngine initialises the speaker. Failure here is fatal for the viewer.
func NewEngine(sampleRate beep.SampleRate) (*Engine, error) {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to initialize audio output: %w", err)
	}
	return &Engine{sampleRate: sampleRate}, nil
}

// openClip decodes path without touching the speaker, so a bad file leaves the
// current clip playing.
func openClip(path string, rate beep.SampleRate) (*clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio file not found: %w", err)
	}
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode audio %s: %w", path, err)
	}

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}
	return &clip{
		path:     path,
		streamer: streamer,
		ctrl:     &beep.Ctrl{Streamer: s},
	}, nil
}

// Play stops whatever is playing and starts path. It returns once playback has
// started; the end of the clip is not tracked.
func (e *Engine) Play(path string) error {
	if e.isClosed() {
		return ErrClosed
	}
	c, err := openClip(path, e.sampleRate)
	if err != nil {
		return err
	}
	return e.start(c)
}

// start replaces the current clip with c. Last write wins.
func (e *Engine) start(c *clip) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		c.close()
		return ErrClosed
	}
	e.stopLocked()
	e.current = c
	if e.play != nil {
		e.play(c.ctrl)
	} else {
		speaker.Play(c.ctrl)
	}
	return nil
}

func (e *Engine) isClosed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// Stop silences the current clip. It is a no-op when nothing is playing.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	if e.current == nil {
		return
	}
	if e.clear != nil {
		e.clear()
	} else {
		speaker.Clear()
	}
	e.current.close()
	e.current = nil
}

// playing returns the path of the clip last started, or "".
func (e *Engine) playing() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return ""
	}
	return e.current.path
}

// Close stops playback and releases the speaker. It is safe to call twice.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.stopLocked()
	e.closed = true
	if e.play == nil {
		speaker.Close()
	}
	return nil
}
