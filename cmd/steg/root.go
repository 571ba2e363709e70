package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/softveil/steg/internal/config"
)

var (
	rootFlags struct {
		ConfigPath string
		Verbose    bool
	}

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "steg",
	Short: "Hide and reveal text messages in lossless images",
	Long: `steg embeds a UTF-8 message in the least-significant bits of a
lossless raster image (PNG, BMP or TIFF) and extracts it again.

Keep stego images away from lossy codecs: re-saving one as JPEG or WebP
silently destroys the payload.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()

		if rootFlags.ConfigPath != "" {
			loaded, err := config.Load(rootFlags.ConfigPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		if rootFlags.Verbose {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.ConfigPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.Verbose, "verbose", "v", false, "Enable debug output")
}
