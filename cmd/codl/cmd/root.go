package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codl-go/codl/internal/client"
	"github.com/codl-go/codl/internal/config"
	"github.com/codl-go/codl/internal/models"
)

var (
	downloadMode  string
	videoQuality  string
	audioFormat   string
	audioBitrate  string
	filenameStyle string
	youtubeCodec  string
	youtubeDub    string
	alwaysProxy   bool
	noMetadata    bool
	twitterGif    bool
)

func init() {
	rootCmd.Flags().StringVarP(&downloadMode, "mode", "m", "",
		"download mode: auto, audio or mute")
	rootCmd.Flags().StringVarP(&videoQuality, "quality", "q", "",
		"video quality: 144 to 2160, or max")
	rootCmd.Flags().StringVar(&audioFormat, "audio-format", "",
		"audio format: best, mp3, ogg, wav or opus")
	rootCmd.Flags().StringVar(&audioBitrate, "audio-bitrate", "",
		"audio bitrate in kbps: 8 to 320")
	rootCmd.Flags().StringVar(&filenameStyle, "filename-style", "",
		"filename style: classic, pretty, basic or nerdy")
	rootCmd.Flags().StringVar(&youtubeCodec, "youtube-codec", "",
		"preferred youtube video codec: h264, av1 or vp9")
	rootCmd.Flags().StringVar(&youtubeDub, "youtube-dub", "",
		"youtube dub language, ISO 639-1 code")
	rootCmd.Flags().BoolVar(&alwaysProxy, "always-proxy", false,
		"tunnel all media through the instance")
	rootCmd.Flags().BoolVar(&noMetadata, "no-metadata", false,
		"strip metadata from the returned file")
	rootCmd.Flags().BoolVar(&twitterGif, "twitter-gif", false,
		"convert looping twitter videos to gif")
}

// rootCmd downloads a single media URL through the configured cobalt instance
var rootCmd = &cobra.Command{
	Use:   "codl <url>",
	Short: "Download media through a cobalt instance",
	Long: `Download media through a cobalt instance.

The instance is configured through the INSTANCE_URL environment variable
(required) and AUTH_TOKEN (optional). The resolved media is written to the
current directory under the filename reported by the instance.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Arguments are validated by now; runtime failures should not re-print usage.
		cmd.SilenceUsage = true

		cfg := config.GetConfig()
		if cfg.InstanceURL == "" {
			return errors.New("INSTANCE_URL is not set")
		}

		c, err := client.NewClient(cfg)
		if err != nil {
			return err
		}
		defer c.Close()

		res, err := c.Download(cmd.Context(), args[0], processOptions())
		if err != nil {
			return err
		}

		if err := os.WriteFile(res.Filename, res.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", res.Filename, err)
		}

		fmt.Printf("saved to %s\n", res.Filename)
		return nil
	},
}

// processOptions maps the root command's flags onto a ProcessOptions value.
func processOptions() *models.ProcessOptions {
	return &models.ProcessOptions{
		VideoQuality:      videoQuality,
		AudioFormat:       models.AudioFormat(audioFormat),
		AudioBitrate:      audioBitrate,
		FilenameStyle:     models.FilenameStyle(filenameStyle),
		DownloadMode:      models.DownloadMode(downloadMode),
		YoutubeVideoCodec: models.VideoCodec(youtubeCodec),
		YoutubeDubLang:    youtubeDub,
		AlwaysProxy:       alwaysProxy,
		DisableMetadata:   noMetadata,
		TwitterGif:        twitterGif,
	}
}

// Execute runs the root command and exits non-zero on any propagated error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
