package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"path2peace/internal/config"
)

// ErrCountMismatch reports image and audio lists of different lengths. Pairing
// them by position would attach clips to the wrong pictures.
var ErrCountMismatch = errors.New("image and audio counts differ")

// ErrNoMedia reports an empty image/audio set.
var ErrNoMedia = errors.New("no images found")

// Pair is one navigation stop: a picture and the clip played when it is clicked.
type Pair struct {
	Image string
	Audio string
}

// MediaSet is the ordered, index-aligned list of pairs driving navigation.
type MediaSet []Pair

// IntroSequence is the ordered list of videos played before the slideshow.
type IntroSequence []string

// Assets is everything the viewer needs from disk.
type Assets struct {
	Media MediaSet
	Intro IntroSequence
}

// NewMediaSet pairs images and audios by position.
func NewMediaSet(images, audios []string) (MediaSet, error) {
	if len(images) != len(audios) {
		return nil, fmt.Errorf("%w: %d images, %d audio clips", ErrCountMismatch, len(images), len(audios))
	}
	if len(images) == 0 {
		return nil, ErrNoMedia
	}
	set := make(MediaSet, len(images))
	for i := range images {
		if images[i] == "" || audios[i] == "" {
			return nil, fmt.Errorf("empty path at position %d", i)
		}
		set[i] = Pair{Image: images[i], Audio: audios[i]}
	}
	return set, nil
}

// Index resolves the asset directories under baseDir and builds the media set and
// intro sequence. A missing videos directory just means there is no intro.
func Index(baseDir string, cfg *config.Config) (*Assets, error) {
	images, err := ListFiles(filepath.Join(baseDir, cfg.Assets.ImagesDir), cfg.Assets.ImageExtensions)
	if err != nil {
		return nil, fmt.Errorf("images: %w", err)
	}
	audios, err := ListFiles(filepath.Join(baseDir, cfg.Assets.AudioDir), cfg.Assets.AudioExtensions)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	media, err := NewMediaSet(images, audios)
	if err != nil {
		return nil, err
	}

	intro, err := introSequence(baseDir, cfg)
	if err != nil {
		return nil, fmt.Errorf("videos: %w", err)
	}

	return &Assets{Media: media, Intro: intro}, nil
}

// introSequence keeps the configured order when videos are named explicitly.
// Named files are included even if absent so the player can report them.
func introSequence(baseDir string, cfg *config.Config) (IntroSequence, error) {
	if !cfg.Intro.Enabled || cfg.Assets.VideosDir == "" {
		return nil, nil
	}
	dir := filepath.Join(baseDir, cfg.Assets.VideosDir)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if len(cfg.Intro.Videos) > 0 {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		seq := make(IntroSequence, 0, len(cfg.Intro.Videos))
		for _, name := range cfg.Intro.Videos {
			seq = append(seq, filepath.Join(absDir, name))
		}
		return seq, nil
	}

	videos, err := ListFiles(dir, cfg.Assets.VideoExtensions)
	if err != nil {
		return nil, err
	}
	return IntroSequence(videos), nil
}
