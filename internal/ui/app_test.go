package ui

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"path2peace/internal/config"
	"path2peace/internal/scan"
	"path2peace/internal/service"
	"path2peace/internal/slideshow"
)

type recordingAudio struct {
	played []string
	stops  int
	closes int
}

func (r *recordingAudio) Play(path string) error {
	r.played = append(r.played, filepath.Base(path))
	return nil
}

func (r *recordingAudio) Stop()        { r.stops++ }
func (r *recordingAudio) Close() error { r.closes++; return nil }

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.White)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

// newTestApp builds the viewer over n generated pictures with loads and
// dispatches running inline.
func newTestApp(t *testing.T, n int) (*App, *recordingAudio, scan.MediaSet) {
	t.Helper()
	dir := t.TempDir()
	var images, clips []string
	for i := 0; i < n; i++ {
		img := filepath.Join(dir, "pic"+string(rune('0'+i))+".png")
		clip := filepath.Join(dir, "pic"+string(rune('0'+i))+".mp3")
		writePNG(t, img, 400, 100)
		require.NoError(t, os.WriteFile(clip, []byte("ID3"), 0o644))
		images = append(images, img)
		clips = append(clips, clip)
	}
	media, err := scan.NewMediaSet(images, clips)
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	rec := &recordingAudio{}
	a := newApp(test.NewTempApp(t), cfg, &scan.Assets{Media: media}, deps{
		audio:    rec,
		imager:   service.NewImageService(),
		dispatch: slideshow.DispatcherFunc(func(f func()) { f() }),
		spawn:    func(f func()) { f() },
	})
	a.ctrl.Start(context.Background())
	return a, rec, media
}

func key(name fyne.KeyName) *fyne.KeyEvent {
	return &fyne.KeyEvent{Name: name}
}

func TestStartShowsFittedFirstPicture(t *testing.T) {
	a, _, _ := newTestApp(t, 2)

	img := a.UI.surface.Image()
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 800, 200), img.Bounds())
	assert.False(t, a.UI.errorLabel.Visible())
	assert.Contains(t, a.UI.statusPathLabel.Text, "Image 1 / 2")
	assert.True(t, a.UI.prevBtn.Disabled())
	assert.False(t, a.UI.nextBtn.Disabled())
}

func TestKeysDriveController(t *testing.T) {
	a, rec, _ := newTestApp(t, 3)

	a.handleKey(key(fyne.KeyRight))
	a.handleKey(key(fyne.KeyRight))
	a.handleKey(key(fyne.KeyRight))
	assert.Equal(t, 2, a.ctrl.Index())
	assert.True(t, a.UI.nextBtn.Disabled())

	a.handleKey(key(fyne.KeyLeft))
	assert.Equal(t, 1, a.ctrl.Index())

	a.handleKey(key(fyne.KeySpace))
	a.handleKey(key(fyne.KeyReturn))
	assert.Equal(t, []string{"pic1.mp3", "pic1.mp3"}, rec.played)
	assert.Equal(t, 2, rec.stops)

	a.handleKey(key(fyne.KeyQ))
	assert.Equal(t, slideshow.Idle, a.ctrl.State())
}

func TestTapPlaysAudio(t *testing.T) {
	a, rec, _ := newTestApp(t, 1)

	test.Tap(a.UI.surface)

	assert.Equal(t, []string{"pic0.mp3"}, rec.played)
}

func TestMissingAudioGoesToStatusLog(t *testing.T) {
	a, rec, media := newTestApp(t, 1)
	require.NoError(t, os.Remove(media[0].Audio))
	before := a.UI.surface.Image()

	a.handleKey(key(fyne.KeySpace))

	assert.Empty(t, rec.played)
	msgs := a.statusLog.Messages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, "Error: Audio file not found: "+media[0].Audio, msgs[len(msgs)-1])
	assert.Same(t, before, a.UI.surface.Image())
	assert.False(t, a.UI.errorLabel.Visible())
}

func TestBrokenPictureShowsErrorText(t *testing.T) {
	a, _, media := newTestApp(t, 2)
	require.NoError(t, os.WriteFile(media[1].Image, []byte("not a png"), 0o644))

	a.handleKey(key(fyne.KeyRight))

	assert.Equal(t, 1, a.ctrl.Index())
	assert.True(t, a.UI.errorLabel.Visible())
	assert.True(t, strings.HasPrefix(a.UI.errorLabel.Text, "Error loading image"))
	assert.Nil(t, a.UI.surface.Image())

	a.handleKey(key(fyne.KeyLeft))
	assert.False(t, a.UI.errorLabel.Visible())
	assert.NotNil(t, a.UI.surface.Image())
}

func TestIntroStatusDisablesNavigation(t *testing.T) {
	a, _, _ := newTestApp(t, 3)
	a.handleKey(key(fyne.KeyRight))

	a.SetStatus(slideshow.Status{IntroPlaying: true})

	assert.True(t, a.UI.prevBtn.Disabled())
	assert.True(t, a.UI.nextBtn.Disabled())
	assert.Contains(t, a.UI.statusPathLabel.Text, "intro")
}

func TestToggleWithoutSlideshowTimer(t *testing.T) {
	a, _, _ := newTestApp(t, 1)

	a.handleKey(key(fyne.KeyP))

	msgs := a.statusLog.Messages()
	require.NotEmpty(t, msgs)
	assert.Contains(t, msgs[len(msgs)-1], "disabled")
}

func TestShutdownClosesAudioOnce(t *testing.T) {
	a, rec, _ := newTestApp(t, 1)

	a.shutdown()
	a.shutdown()

	assert.Equal(t, 1, rec.closes)
}
