package main

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/softveil/steg"
)

var analyzeFlags struct {
	Cover string
	Stego string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compare a stego image against its cover",
	Long:  `Calculates MSE, PSNR and per-channel change statistics between a cover image and the stego image derived from it.`,
	Run: func(cmd *cobra.Command, args []string) {
		report, err := steg.AnalyzeImages(analyzeFlags.Cover, analyzeFlags.Stego)
		if err != nil {
			log.Fatal().Err(err).Msg("Analysis failed")
		}

		fmt.Printf("MSE (mean squared error):  %.6f\n", report.MSE)
		if math.IsInf(report.PSNR, 1) {
			fmt.Printf("PSNR:                      inf (images are identical)\n")
		} else {
			fmt.Printf("PSNR:                      %.2f dB\n", report.PSNR)
		}
		fmt.Printf("Changed channels:          %d of %d\n", report.ChangedChannels, report.TotalChannels)
		fmt.Printf("Max channel delta:         %d\n", report.MaxDelta)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFlags.Cover, "cover", "c", "", "Path to the original cover image")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.Stego, "stego", "s", "", "Path to the stego image")
	_ = analyzeCmd.MarkFlagRequired("cover")
	_ = analyzeCmd.MarkFlagRequired("stego")
	rootCmd.AddCommand(analyzeCmd)
}
