package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRate(t *testing.T) {
	assert.Equal(t, 25.0, parseRate("25/1"))
	assert.InDelta(t, 29.97, parseRate("30000/1001"), 0.001)
	assert.Equal(t, 24.0, parseRate("24"))
	assert.Zero(t, parseRate("0/0"))
	assert.Zero(t, parseRate(""))
	assert.Zero(t, parseRate("abc/1"))
}

func TestParseProbeOutput(t *testing.T) {
	data := []byte(`{"streams":[{"codec_name":"h264","width":1280,"height":720,"r_frame_rate":"50/1","avg_frame_rate":"25/1"}]}`)
	info, err := ParseProbeOutput(data)
	require.NoError(t, err)
	assert.Equal(t, 1280, info.Width)
	assert.Equal(t, 720, info.Height)
	assert.Equal(t, "h264", info.CodecName)
	assert.Equal(t, 25.0, info.FrameRate(), "average rate wins over the container rate")
	assert.Equal(t, 40*time.Millisecond, info.FrameInterval())
}

func TestParseProbeOutputErrors(t *testing.T) {
	_, err := ParseProbeOutput([]byte(`not json`))
	assert.ErrorContains(t, err, "failed to parse ffprobe output")

	_, err = ParseProbeOutput([]byte(`{"streams":[]}`))
	assert.ErrorContains(t, err, "no video stream")

	_, err = ParseProbeOutput([]byte(`{"streams":[{"width":0,"height":10}]}`))
	assert.ErrorContains(t, err, "invalid video dimensions")
}

func TestFrameIntervalUnknown(t *testing.T) {
	var info StreamInfo
	assert.Zero(t, info.FrameInterval())
}

func TestFrameReader(t *testing.T) {
	// Two 2x1 frames of packed RGB.
	raw := []byte{
		10, 20, 30, 40, 50, 60,
		70, 80, 90, 100, 110, 120,
	}
	fr := newFrameReader(bytes.NewReader(raw), 2, 1)

	first, err := fr.next()
	require.NoError(t, err)
	assert.Equal(t, 2, first.Bounds().Dx())
	assert.Equal(t, 1, first.Bounds().Dy())
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, first.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 40, G: 50, B: 60, A: 255}, first.RGBAAt(1, 0))

	second, err := fr.next()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 100, G: 110, B: 120, A: 255}, second.RGBAAt(1, 0))

	_, err = fr.next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestFrameReaderTruncated(t *testing.T) {
	fr := newFrameReader(bytes.NewReader([]byte{1, 2, 3, 4}), 2, 1)
	_, err := fr.next()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestFFmpegError(t *testing.T) {
	base := errors.New("exit status 1")
	fe := &FFmpegError{Operation: "ffprobe", ExitCode: 1, Stderr: "moov atom not found", Original: base}

	assert.Equal(t, "ffprobe failed: exit status 1 (exit code: 1): moov atom not found", fe.Error())
	assert.ErrorIs(t, fe, base)

	wrapped := fmt.Errorf("intro: %w", fe)
	var target *FFmpegError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "moov atom not found", target.Stderr)
	assert.False(t, errors.As(base, &target))
}

func TestOpenMissingVideo(t *testing.T) {
	o := Opener{FFmpegPath: "ffmpeg", FFprobePath: "ffprobe"}
	_, err := o.Open(context.Background(), filepath.Join(t.TempDir(), "Logo.mp4"))
	assert.ErrorContains(t, err, "video not found")
}

func TestDecodeArgsKeepStoredOrientation(t *testing.T) {
	args := decodeArgs("/intro/portrait.mp4")

	input := -1
	noRotate := -1
	for i, a := range args {
		switch a {
		case "-i":
			input = i
		case "-noautorotate":
			noRotate = i
		}
	}
	require.NotEqual(t, -1, input)
	require.NotEqual(t, -1, noRotate, "autorotation must be disabled")
	assert.Less(t, noRotate, input, "-noautorotate is an input option")
	assert.Equal(t, "/intro/portrait.mp4", args[input+1])
	assert.Equal(t, []string{"-pix_fmt", "rgb24", "-"}, args[len(args)-3:])
}
