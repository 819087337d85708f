// Package config holds the viewer settings: asset directories, window geometry
// and playback timing.
package config

import "time"

const (
	// FileName is the optional settings file looked up next to the executable.
	FileName = "path2peace.yaml"

	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600

	// DefaultFrameIntervalMs paces intro frames when the video reports no frame rate.
	DefaultFrameIntervalMs = 25

	DefaultMaxLogMessages = 100
)

// Config is the complete viewer configuration.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Assets    AssetConfig     `yaml:"assets"`
	Intro     IntroConfig     `yaml:"intro"`
	Slideshow SlideshowConfig `yaml:"slideshow"`
	Log       LogConfig       `yaml:"log"`
}

// WindowConfig sets the display viewport. Fixed pins the window to the viewport
// size; otherwise the window opens at that size and may be resized.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Fixed  bool   `yaml:"fixed"`
}

// AssetConfig names the asset directories, relative to the executable, and the
// extensions accepted in each.
type AssetConfig struct {
	ImagesDir       string   `yaml:"images_dir"`
	AudioDir        string   `yaml:"audio_dir"`
	VideosDir       string   `yaml:"videos_dir"`
	ImageExtensions []string `yaml:"image_extensions"`
	AudioExtensions []string `yaml:"audio_extensions"`
	VideoExtensions []string `yaml:"video_extensions"`
}

// IntroConfig controls the intro video phase. When Videos is empty every video in
// the videos directory is played in lexical order.
type IntroConfig struct {
	Enabled         bool     `yaml:"enabled"`
	Videos          []string `yaml:"videos"`
	FrameIntervalMs int      `yaml:"frame_interval_ms"`
	FFmpegPath      string   `yaml:"ffmpeg_path"`
	FFprobePath     string   `yaml:"ffprobe_path"`
}

// SlideshowConfig enables auto-advance when IntervalSeconds is positive.
type SlideshowConfig struct {
	IntervalSeconds float64 `yaml:"interval_seconds"`
}

// LogConfig sizes the in-window message log.
type LogConfig struct {
	MaxMessages int `yaml:"max_messages"`
}

// DefaultConfig returns the layout the viewer ships with.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Path2Peace",
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Fixed:  true,
		},
		Assets: AssetConfig{
			ImagesDir:       "images",
			AudioDir:        "mp3",
			VideosDir:       "mp4",
			ImageExtensions: []string{".png", ".jpg", ".jpeg", ".gif"},
			AudioExtensions: []string{".mp3"},
			VideoExtensions: []string{".mp4", ".mov", ".mkv", ".webm", ".avi"},
		},
		Intro: IntroConfig{
			Enabled:         true,
			Videos:          []string{"loading.mp4", "Hello.mp4", "Logo.mp4"},
			FrameIntervalMs: DefaultFrameIntervalMs,
			FFmpegPath:      "ffmpeg",
			FFprobePath:     "ffprobe",
		},
		Log: LogConfig{
			MaxMessages: DefaultMaxLogMessages,
		},
	}
}

// FrameInterval is the fallback delay between intro frames.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Intro.FrameIntervalMs) * time.Millisecond
}

// SlideshowInterval is the auto-advance period; zero means disabled.
func (c *Config) SlideshowInterval() time.Duration {
	if c.Slideshow.IntervalSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Slideshow.IntervalSeconds*1000) * time.Millisecond //nolint:durationcheck
}
