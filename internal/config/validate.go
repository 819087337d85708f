package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errors []string

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errors = append(errors, fmt.Sprintf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}

	if err := c.Assets.Validate(); err != nil {
		errors = append(errors, fmt.Sprintf("assets config: %v", err))
	}

	if c.Intro.FrameIntervalMs <= 0 {
		errors = append(errors, "intro frame interval must be positive")
	}
	if c.Intro.Enabled && c.Intro.FFmpegPath == "" {
		errors = append(errors, "ffmpeg path is required when the intro is enabled")
	}

	if c.Slideshow.IntervalSeconds < 0 {
		errors = append(errors, "slideshow interval cannot be negative (use 0 to disable)")
	}

	if c.Log.MaxMessages < 0 {
		errors = append(errors, "log max messages cannot be negative")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Validate checks the asset directory names and extension lists.
func (ac *AssetConfig) Validate() error {
	var errors []string

	if ac.ImagesDir == "" {
		errors = append(errors, "images directory is required")
	}
	if ac.AudioDir == "" {
		errors = append(errors, "audio directory is required")
	}
	if len(ac.ImageExtensions) == 0 {
		errors = append(errors, "at least one image extension is required")
	}
	if len(ac.AudioExtensions) == 0 {
		errors = append(errors, "at least one audio extension is required")
	}
	for _, ext := range append(append(append([]string{}, ac.ImageExtensions...), ac.AudioExtensions...), ac.VideoExtensions...) {
		if !strings.HasPrefix(ext, ".") {
			errors = append(errors, fmt.Sprintf("extension %q must start with a dot", ext))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}
	return nil
}
