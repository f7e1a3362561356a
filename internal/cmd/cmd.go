// Package cmd implements recast's CLI.
package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/recast/internal/config"
	"go.followtheprocess.codes/recast/internal/recast"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the recast CLI.
func Build(ctx context.Context) (*cli.Command, error) {
	path, err := config.Path()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	var debug bool

	return cli.New(
		"recast",
		cli.Short("Convert HTTP message bodies between content types"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Convert interactively by pasting in a request", "recast"),
		cli.Example(
			"Convert the body of a saved request from JSON to form encoding",
			"recast convert ./request.txt --from json --to form",
		),
		cli.Example("List the supported formats", "recast formats"),
		cli.Allow(cli.NoArgs()),
		cli.Flag(&debug, "debug", 'd', cfg.Debug, "Enable debug logs"),
		cli.SubCommands(convert(ctx, cfg), formats()),
		cli.Run(func(cmd *cli.Command, args []string) error {
			app := recast.New(debug, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())
			return app.Interactive(ctx)
		}),
	)
}
