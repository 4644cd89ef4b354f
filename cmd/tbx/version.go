package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tbx"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tbx",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tbx version %s\n", tbx.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
