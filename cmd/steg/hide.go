package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/softveil/steg"
	"github.com/softveil/steg/internal/util"
)

var hideFlags struct {
	Image       string
	Message     string
	MessageFile string
	Out         string
}

var hideCmd = &cobra.Command{
	Use:   "hide",
	Short: "Embed a message in a cover image",
	Long: `Embeds a UTF-8 message in the least-significant bits of the cover
image and writes the result to a lossless output image.`,
	Run: func(cmd *cobra.Command, args []string) {
		msg := hideFlags.Message
		if hideFlags.MessageFile != "" {
			raw, err := os.ReadFile(hideFlags.MessageFile)
			if err != nil {
				log.Fatal().Err(err).Msg("Unable to read the message file")
			}
			msg = string(raw)
		}
		msg = util.FixUnicode(msg)

		out := hideFlags.Out
		if out == "" {
			out = cfg.DefaultOutput
		}

		written, err := steg.EncodeMessageToImage(hideFlags.Image, msg, out,
			steg.WithLogger(zlogAdapter{l: log.Logger}))
		if err != nil {
			log.Fatal().Err(err).Msg("Encoding failed")
		}
		fmt.Println(written)
	},
}

func init() {
	hideCmd.Flags().StringVarP(&hideFlags.Image, "img", "i", "", "Path to the cover image")
	hideCmd.Flags().StringVarP(&hideFlags.Message, "message", "m", "", "Message text to embed")
	hideCmd.Flags().StringVar(&hideFlags.MessageFile, "message-file", "", "Read the message from a file instead")
	hideCmd.Flags().StringVarP(&hideFlags.Out, "out", "o", "", "Path to write the stego image to")
	_ = hideCmd.MarkFlagRequired("img")
	hideCmd.MarkFlagsOneRequired("message", "message-file")
	hideCmd.MarkFlagsMutuallyExclusive("message", "message-file")
	rootCmd.AddCommand(hideCmd)
}
