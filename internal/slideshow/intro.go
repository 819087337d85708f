package slideshow

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"time"
)

var errSkipped = errors.New("intro video skipped")

// runIntro is the intro worker. It touches only immutable controller fields and
// talks to the UI thread through c.ui.
func (c *Controller) runIntro(ctx context.Context, videos []string) {
	defer close(c.introDone)

	for _, path := range videos {
		if ctx.Err() != nil {
			return
		}
		err := c.playVideo(ctx, path)
		switch {
		case err == nil:
		case errors.Is(err, errSkipped):
			c.logger(fmt.Sprintf("Skipped intro video: %s", filepath.Base(path)))
		case ctx.Err() != nil:
			return
		default:
			msg := fmt.Sprintf("Error playing video %s: %v", filepath.Base(path), err)
			c.logger(msg)
			c.ui.Do(func() { c.notifyIntro(msg) })
		}
	}

	if ctx.Err() != nil {
		return
	}
	c.ui.Do(c.finishIntro)
}

// playVideo streams one video to the display. The frame source is closed on
// every return path.
func (c *Controller) playVideo(ctx context.Context, path string) error {
	src, err := c.openVideo(ctx, path)
	if err != nil {
		return err
	}
	defer src.Close()

	c.drainSkip()
	interval := src.Interval()
	if interval <= 0 {
		interval = c.frameInterval
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.skip:
			return errSkipped
		default:
		}

		frame, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		fitted := c.imager.Fit(frame, c.width, c.height)
		c.ui.Do(func() { c.presentFrame(fitted) })

		if !sleepCtx(ctx, interval) {
			return ctx.Err()
		}
	}
}

func (c *Controller) drainSkip() {
	for {
		select {
		case <-c.skip:
		default:
			return
		}
	}
}

func (c *Controller) presentFrame(frame image.Image) {
	if c.closed || !c.introPlaying {
		return
	}
	c.display.ShowImage(frame)
}

func (c *Controller) notifyIntro(msg string) {
	if c.closed {
		return
	}
	c.display.Notify(msg)
}

// finishIntro is the completion message: Introing becomes Idle on picture 0.
func (c *Controller) finishIntro() {
	if c.closed || !c.introPlaying {
		return
	}
	c.introPlaying = false
	c.state = Idle
	c.index = 0
	if c.auto != nil {
		c.auto.ResumeAfterOperation()
	}
	c.logger("Intro finished")
	c.showCurrent()
	c.publishStatus()
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
