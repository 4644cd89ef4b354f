package main

import "github.com/aretw0/tbx/internal/cli"

const tierArgs = "[encoding=ENC] TIER FILE..."

func init() {
	rootCmd.AddCommand(
		newToolCommand(cli.Tokens, tierArgs),
		newToolCommand(cli.Types, tierArgs),
		newToolCommand(cli.Values, tierArgs),
	)
}
