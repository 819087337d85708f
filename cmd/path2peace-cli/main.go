package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"path2peace/internal/config"
	"path2peace/internal/scan"
	"path2peace/internal/service"
	"path2peace/internal/video"
)

var (
	baseDirFlag string
	configFlag  string
	verboseFlag bool
	decodeFlag  bool
)

// ProbeFunc reads the stream parameters of one video.
type ProbeFunc func(ctx context.Context, ffprobePath, path string) (*video.StreamInfo, error)

// NewRootCmd creates the root command for the CLI application. probe is
// injected so tests can run without ffprobe.
func NewRootCmd(probe ProbeFunc) *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "path2peace-cli",
		Short:         "Path2Peace CLI - inspect and verify the viewer's asset layout",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List picture/recording pairs and the intro sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, base, err := loadConfig()
			if err != nil {
				return err
			}
			assets, err := scan.Index(base, cfg)
			if err != nil {
				return err
			}
			printAssets(cmd, assets, verboseFlag)
			return nil
		},
	}
	listCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show image dimensions, size and EXIF fields")
	rootCmd.AddCommand(listCmd)

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that every asset the viewer needs is present and readable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, base, err := loadConfig()
			if err != nil {
				return err
			}
			return runCheck(cmd, base, cfg, decodeFlag, probe)
		},
	}
	checkCmd.Flags().BoolVar(&decodeFlag, "decode", false, "Decode every picture and probe every intro video")
	rootCmd.AddCommand(checkCmd)

	probeCmd := &cobra.Command{
		Use:   "probe [video...]",
		Short: "Show width, height and frame rate of videos (default: the intro sequence)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, base, err := loadConfig()
			if err != nil {
				return err
			}
			videos := args
			if len(videos) == 0 {
				assets, err := scan.Index(base, cfg)
				if err != nil {
					return err
				}
				videos = assets.Intro
			}
			if len(videos) == 0 {
				cmd.Println("No intro videos configured.")
				return nil
			}
			failed := 0
			for _, v := range videos {
				info, err := probe(cmd.Context(), cfg.Intro.FFprobePath, v)
				if err != nil {
					cmd.Printf("%s: %v\n", filepath.Base(v), err)
					failed++
					continue
				}
				cmd.Printf("%s: %dx%d @ %.2f fps (%s)\n", filepath.Base(v), info.Width, info.Height, info.FrameRate(), info.CodecName)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d video(s) could not be probed", failed, len(videos))
			}
			return nil
		},
	}
	rootCmd.AddCommand(probeCmd)

	rootCmd.PersistentFlags().StringVar(&baseDirFlag, "base", "", "Asset root directory (default: directory of the executable)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to a path2peace.yaml file")

	return rootCmd
}

// loadConfig resolves the asset root and loads the configuration found there.
func loadConfig() (*config.Config, string, error) {
	base := baseDirFlag
	if base == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, "", fmt.Errorf("failed to locate executable: %w", err)
		}
		base = filepath.Dir(exe)
	}
	base, err := filepath.Abs(base)
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(base, configFlag)
	if err != nil {
		return nil, "", err
	}
	return cfg, base, nil
}

func printAssets(cmd *cobra.Command, assets *scan.Assets, verbose bool) {
	imgSvc := service.NewImageService()

	cmd.Printf("Pictures (%d):\n", len(assets.Media))
	for i, p := range assets.Media {
		cmd.Printf("%4d. %s <-> %s\n", i+1, filepath.Base(p.Image), filepath.Base(p.Audio))
		if !verbose {
			continue
		}
		info, _, err := imgSvc.GetImageInfo(p.Image)
		if err != nil {
			cmd.Printf("      %v\n", err)
			continue
		}
		cmd.Printf("      %dx%d, %s bytes\n", info.Width, info.Height, formatNumberWithCommas(info.Size))
		keys := make([]string, 0, len(info.EXIFData))
		for k := range info.EXIFData {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			cmd.Printf("      %s: %s\n", k, strings.TrimSpace(info.EXIFData[k]))
		}
	}

	cmd.Printf("Intro (%d):\n", len(assets.Intro))
	for i, v := range assets.Intro {
		cmd.Printf("%4d. %s\n", i+1, filepath.Base(v))
	}
}

// formatNumberWithCommas renders n with thousands separators.
func formatNumberWithCommas(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func main() {
	rootCmd := NewRootCmd(video.Probe)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
