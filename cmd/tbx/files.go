package main

import "github.com/aretw0/tbx/internal/cli"

const fileArgs = "[encoding=ENC] FILE..."

func init() {
	rootCmd.AddCommand(
		newToolCommand(cli.Markers, fileArgs),
		newToolCommand(cli.Characters, fileArgs),
		newToolCommand(cli.Validate, fileArgs),
	)
}
