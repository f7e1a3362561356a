package cmd

import (
	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/recast/internal/recast"
)

// formats returns the recast formats subcommand.
func formats() func() (*cli.Command, error) {
	return func() (*cli.Command, error) {
		return cli.New(
			"formats",
			cli.Short("List the supported formats and their media types"),
			cli.Allow(cli.NoArgs()),
			cli.Run(func(cmd *cli.Command, args []string) error {
				app := recast.New(false, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
				return app.Formats()
			}),
		)
	}
}
