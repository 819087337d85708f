package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"path2peace/internal/config"
	"path2peace/internal/scan"
	"path2peace/internal/service"
)

var (
	passLabel = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
)

// checker prints one PASS/FAIL line per check and counts failures.
type checker struct {
	cmd      *cobra.Command
	failures int
}

func (c *checker) pass(format string, args ...any) {
	c.cmd.Printf("%s %s\n", passLabel("PASS"), fmt.Sprintf(format, args...))
}

func (c *checker) fail(format string, args ...any) {
	c.failures++
	c.cmd.Printf("%s %s\n", failLabel("FAIL"), fmt.Sprintf(format, args...))
}

func newProgressBar(cmd *cobra.Command, total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(15),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func runCheck(cmd *cobra.Command, base string, cfg *config.Config, decode bool, probe ProbeFunc) error {
	c := &checker{cmd: cmd}

	assets, err := scan.Index(base, cfg)
	if err != nil {
		c.fail("asset index: %v", err)
		return fmt.Errorf("%d check(s) failed", c.failures)
	}
	c.pass("asset index: %d picture/recording pairs, %d intro video(s)", len(assets.Media), len(assets.Intro))

	for _, p := range assets.Media {
		for _, path := range []string{p.Image, p.Audio} {
			if _, err := os.Stat(path); err != nil {
				c.fail("%s: %v", filepath.Base(path), err)
			}
		}
	}
	for _, v := range assets.Intro {
		if _, err := os.Stat(v); err != nil {
			c.fail("intro %s: %v", filepath.Base(v), err)
		}
	}

	if decode {
		imgSvc := service.NewImageService()
		bar := newProgressBar(cmd, len(assets.Media), "Decoding pictures")
		for _, p := range assets.Media {
			if _, _, err := imgSvc.GetImageInfo(p.Image); err != nil {
				c.fail("%v", err)
			}
			_ = bar.Add(1)
		}
		_ = bar.Finish()

		if len(assets.Intro) > 0 {
			bar = newProgressBar(cmd, len(assets.Intro), "Probing intro videos")
			for _, v := range assets.Intro {
				if _, err := probe(cmd.Context(), cfg.Intro.FFprobePath, v); err != nil {
					c.fail("intro %s: %v", filepath.Base(v), err)
				}
				_ = bar.Add(1)
			}
			_ = bar.Finish()
		}
	}

	if c.failures > 0 {
		return fmt.Errorf("%d check(s) failed", c.failures)
	}
	c.pass("all assets present")
	return nil
}
