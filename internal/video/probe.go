package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// StreamInfo is the part of an ffprobe video stream the decoder needs.
type StreamInfo struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	RFrameRate   string `json:"r_frame_rate"`
	AvgFrameRate string `json:"avg_frame_rate"`
	CodecName    string `json:"codec_name"`
}

type ffprobeOutput struct {
	Streams []StreamInfo `json:"streams"`
}

// FrameRate returns frames per second, preferring the average rate.
// It returns 0 when ffprobe reported neither.
func (s StreamInfo) FrameRate() float64 {
	if fps := parseRate(s.AvgFrameRate); fps > 0 {
		return fps
	}
	return parseRate(s.RFrameRate)
}

// FrameInterval is the display time of one frame, or 0 when unknown.
func (s StreamInfo) FrameInterval() time.Duration {
	fps := s.FrameRate()
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}

// parseRate reads ffprobe rationals such as "30000/1001" or plain "25".
func parseRate(rate string) float64 {
	num, den, found := strings.Cut(rate, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	if !found {
		return n
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}

// ParseProbeOutput extracts the first video stream from ffprobe JSON output.
func ParseProbeOutput(data []byte) (*StreamInfo, error) {
	var out ffprobeOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	if len(out.Streams) == 0 {
		return nil, fmt.Errorf("no video stream found")
	}
	s := out.Streams[0]
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("invalid video dimensions %dx%d", s.Width, s.Height)
	}
	return &s, nil
}

// Probe runs ffprobe on the first video stream of path.
func Probe(ctx context.Context, ffprobePath, path string) (*StreamInfo, error) {
	cmd := exec.CommandContext(ctx, ffprobePath,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height,r_frame_rate,avg_frame_rate,codec_name",
		"-of", "json",
		path,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return nil, newFFmpegError("ffprobe", cmd, stderr.String(), err)
	}

	info, err := ParseProbeOutput(output)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return info, nil
}
