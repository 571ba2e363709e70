package main

import (
	"fmt"
	"image"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/softveil/steg"
)

var capacityFlags struct {
	Image string
}

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Show how much a cover image can carry",
	Run: func(cmd *cobra.Command, args []string) {
		f, err := os.Open(capacityFlags.Image)
		if err != nil {
			log.Fatal().Err(err).Msg("Unable to open the image")
		}
		defer f.Close()

		img, format, err := image.Decode(f)
		if err != nil {
			log.Fatal().Err(err).Msg("Unable to decode the image")
		}

		b := img.Bounds()
		fmt.Printf("Format:       %s\n", format)
		fmt.Printf("Dimensions:   %dx%d px\n", b.Dx(), b.Dy())
		fmt.Printf("Capacity:     %d bits\n", steg.Capacity(img))
		fmt.Printf("Max message:  %d bytes\n", steg.MaxMessageLen(img))
	},
}

func init() {
	capacityCmd.Flags().StringVarP(&capacityFlags.Image, "img", "i", "", "Path to the cover image")
	_ = capacityCmd.MarkFlagRequired("img")
	rootCmd.AddCommand(capacityCmd)
}
