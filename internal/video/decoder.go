// Package video decodes intro videos into a sequence of frames by streaming raw
// RGB from an ffmpeg subprocess.
package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"
)

// Opener starts decoders with the configured ffmpeg and ffprobe executables.
type Opener struct {
	FFmpegPath  string
	FFprobePath string
}

// Decoder yields the frames of one video in order. Close must be called on every
// path, including early termination.
type Decoder struct {
	path   string
	info   *StreamInfo
	cmd    *exec.Cmd
	stdout io.ReadCloser
	stderr bytes.Buffer
	frames *frameReader

	closeOnce sync.Once
	closeErr  error
}

// Open probes path and starts ffmpeg decoding it. Cancelling ctx kills ffmpeg.
func (o Opener) Open(ctx context.Context, path string) (*Decoder, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("video not found: %w", err)
	}

	info, err := Probe(ctx, o.FFprobePath, path)
	if err != nil {
		return nil, err
	}

	d := &Decoder{path: path, info: info}
	d.cmd = exec.CommandContext(ctx, o.FFmpegPath, decodeArgs(path)...)
	d.cmd.Stderr = &d.stderr

	d.stdout, err = d.cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open ffmpeg output: %w", err)
	}
	if err := d.cmd.Start(); err != nil {
		return nil, newFFmpegError("ffmpeg decode", d.cmd, "", err)
	}
	d.frames = newFrameReader(d.stdout, info.Width, info.Height)
	return d, nil
}

// decodeArgs streams path as raw rgb24 frames on stdout. Autorotation is off so
// frames keep the stored width and height that ffprobe reported.
func decodeArgs(path string) []string {
	return []string{
		"-v", "error",
		"-nostdin",
		"-noautorotate",
		"-i", path,
		"-an",
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"-",
	}
}

// Info returns the probed stream description.
func (d *Decoder) Info() *StreamInfo {
	return d.info
}

// Interval is the frame pacing reported by the stream, 0 when unknown.
func (d *Decoder) Interval() time.Duration {
	return d.info.FrameInterval()
}

// Next returns the next frame, or io.EOF once the stream has ended.
func (d *Decoder) Next() (image.Image, error) {
	frame, err := d.frames.next()
	if err == nil {
		return frame, nil
	}
	if errors.Is(err, io.EOF) {
		// A clean end of output still needs ffmpeg's verdict.
		if waitErr := d.wait(); waitErr != nil {
			return nil, waitErr
		}
		return nil, io.EOF
	}
	d.wait()
	return nil, newFFmpegError("ffmpeg decode", d.cmd, d.stderr.String(), err)
}

func (d *Decoder) wait() error {
	d.closeOnce.Do(func() {
		if err := d.cmd.Wait(); err != nil {
			d.closeErr = newFFmpegError("ffmpeg decode", d.cmd, d.stderr.String(), err)
		}
	})
	return d.closeErr
}

// Close stops ffmpeg if it is still running and reaps it.
func (d *Decoder) Close() error {
	if d.cmd == nil || d.cmd.Process == nil {
		return nil
	}
	killed := false
	d.closeOnce.Do(func() {
		killed = true
		d.cmd.Process.Kill()
		d.stdout.Close()
		d.cmd.Wait()
	})
	if killed {
		return nil
	}
	return d.closeErr
}

// frameReader cuts a raw rgb24 byte stream into frames.
type frameReader struct {
	r      io.Reader
	width  int
	height int
	buf    []byte
}

func newFrameReader(r io.Reader, width, height int) *frameReader {
	return &frameReader{
		r:      r,
		width:  width,
		height: height,
		buf:    make([]byte, width*height*3),
	}
}

// next reads one frame. A stream that ends between frames returns io.EOF; one
// that ends inside a frame returns io.ErrUnexpectedEOF.
func (fr *frameReader) next() (*image.RGBA, error) {
	if _, err := io.ReadFull(fr.r, fr.buf); err != nil {
		return nil, err
	}
	return rgb24ToRGBA(fr.buf, fr.width, fr.height), nil
}

// rgb24ToRGBA converts packed 3-byte pixels to an opaque RGBA image.
func rgb24ToRGBA(src []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i+2 < len(src) && j+3 < len(img.Pix); i, j = i+3, j+4 {
		img.Pix[j] = src[i]
		img.Pix[j+1] = src[i+1]
		img.Pix[j+2] = src[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}
