package slideshow

import (
	"context"
	"errors"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"path2peace/internal/scan"
)

// taggedImage carries the path or frame name it was produced from.
type taggedImage struct {
	image.Image
	tag string
}

func tagged(tag string) *taggedImage {
	return &taggedImage{Image: image.NewRGBA(image.Rect(0, 0, 1, 1)), tag: tag}
}

func tagOf(img image.Image) string {
	if t, ok := img.(*taggedImage); ok {
		return t.tag
	}
	return "?"
}

type fakeDisplay struct {
	shown    []string
	errors   []string
	notices  []string
	statuses []Status
}

func (d *fakeDisplay) ShowImage(img image.Image) { d.shown = append(d.shown, tagOf(img)) }
func (d *fakeDisplay) ShowError(msg string)      { d.errors = append(d.errors, msg) }
func (d *fakeDisplay) Notify(msg string)         { d.notices = append(d.notices, msg) }
func (d *fakeDisplay) SetStatus(st Status)       { d.statuses = append(d.statuses, st) }

func (d *fakeDisplay) last() string {
	if len(d.shown) == 0 {
		return ""
	}
	return d.shown[len(d.shown)-1]
}

// eventLog records cross-collaborator ordering.
type eventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *eventLog) add(e string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *eventLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

type fakeAudio struct {
	log     *eventLog
	playErr error
	closes  int
}

func (a *fakeAudio) Play(path string) error {
	a.log.add("play:" + filepath.Base(path))
	return a.playErr
}

func (a *fakeAudio) Stop() { a.log.add("stop") }

func (a *fakeAudio) Close() error {
	a.closes++
	a.log.add("audio-close")
	return nil
}

type fakeImager struct {
	fail map[string]error
	fits atomic.Int32
}

func (f *fakeImager) Load(path string, _, _ int) (image.Image, error) {
	if err := f.fail[filepath.Base(path)]; err != nil {
		return nil, err
	}
	return tagged(filepath.Base(path)), nil
}

func (f *fakeImager) Fit(img image.Image, _, _ int) image.Image {
	f.fits.Add(1)
	return img
}

// queue is a Dispatcher that holds posted closures until the test pumps them.
type queue struct {
	mu    sync.Mutex
	items []func()
}

func (q *queue) Do(f func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, f)
}

func (q *queue) drain() int {
	q.mu.Lock()
	items := q.items
	q.items = nil
	q.mu.Unlock()
	for _, f := range items {
		f()
	}
	return len(items)
}

// pump runs posted closures on the test goroutine until cond holds.
func (q *queue) pump(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for condition")
		}
		if q.drain() == 0 {
			time.Sleep(time.Millisecond)
		}
	}
}

type fakeSource struct {
	name    string
	frames  int
	endless bool
	failAt  int
	log     *eventLog
	pos     int
	closed  atomic.Bool
}

func (s *fakeSource) Next() (image.Image, error) {
	if s.closed.Load() {
		return nil, errors.New("read from closed source")
	}
	if s.failAt > 0 && s.pos == s.failAt {
		return nil, errors.New("corrupt stream")
	}
	if !s.endless && s.pos >= s.frames {
		return nil, io.EOF
	}
	s.pos++
	return tagged(s.name + "#" + strconv.Itoa(s.pos)), nil
}

func (s *fakeSource) Interval() time.Duration { return time.Millisecond }

func (s *fakeSource) Close() error {
	s.closed.Store(true)
	if s.log != nil {
		s.log.add("source-close:" + s.name)
	}
	return nil
}

// fakeOpener hands out prepared sources by base name.
type fakeOpener struct {
	mu      sync.Mutex
	sources map[string]*fakeSource
	opened  []string
}

func (o *fakeOpener) open(_ context.Context, path string) (FrameSource, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	name := filepath.Base(path)
	o.opened = append(o.opened, name)
	src, ok := o.sources[name]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return src, nil
}

func (o *fakeOpener) openedNames() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.opened...)
}

// mediaFixture creates n picture/clip pairs with real clip files on disk.
func mediaFixture(t *testing.T, n int) scan.MediaSet {
	t.Helper()
	dir := t.TempDir()
	media := make(scan.MediaSet, n)
	for i := range media {
		img := filepath.Join(dir, "img"+strconv.Itoa(i)+".png")
		clip := filepath.Join(dir, "a"+strconv.Itoa(i)+".mp3")
		require.NoError(t, os.WriteFile(clip, []byte("ID3"), 0o644))
		media[i] = scan.Pair{Image: img, Audio: clip}
	}
	return media
}

type harness struct {
	ctrl    *Controller
	display *fakeDisplay
	audio   *fakeAudio
	imager  *fakeImager
	events  *eventLog
}

func syncDispatch(f func()) { f() }

// newHarness builds a controller whose loads and dispatches run inline.
func newHarness(t *testing.T, media scan.MediaSet, mutate func(*Options)) *harness {
	t.Helper()
	h := &harness{
		display: &fakeDisplay{},
		events:  &eventLog{},
		imager:  &fakeImager{},
	}
	h.audio = &fakeAudio{log: h.events}
	opts := Options{
		Media:         media,
		Display:       h.display,
		Audio:         h.audio,
		Imager:        h.imager,
		UI:            DispatcherFunc(syncDispatch),
		Width:         800,
		Height:        600,
		FrameInterval: time.Millisecond,
		Logger:        func(string) {},
		Go:            func(f func()) { f() },
	}
	if mutate != nil {
		mutate(&opts)
	}
	h.ctrl = New(opts)
	t.Cleanup(func() { _ = h.ctrl.Close() })
	return h
}
