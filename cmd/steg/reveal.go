package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/softveil/steg"
)

var revealFlags struct {
	Image string
}

var revealCmd = &cobra.Command{
	Use:   "reveal",
	Short: "Extract the message hidden in a stego image",
	Run: func(cmd *cobra.Command, args []string) {
		msg, err := steg.DecodeMessageFromImage(revealFlags.Image,
			steg.WithLogger(zlogAdapter{l: log.Logger}))
		if err != nil {
			log.Fatal().Err(err).Msg("Decoding failed")
		}
		fmt.Println(msg)
	},
}

func init() {
	revealCmd.Flags().StringVarP(&revealFlags.Image, "img", "i", "", "Path to the stego image")
	_ = revealCmd.MarkFlagRequired("img")
	rootCmd.AddCommand(revealCmd)
}
