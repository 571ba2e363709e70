package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/softveil/steg"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the steg version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("steg v" + steg.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
