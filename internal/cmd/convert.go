package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/recast/internal/config"
	"go.followtheprocess.codes/recast/internal/recast"
)

const convertLong = `
The file argument should point to a file containing either a raw HTTP
message (in which case the body is extracted by locating the blank line
separating it from the headers) or just a bare body.

Additional files may be given as extra arguments and are converted
concurrently, with the results shown in argument order.

The converted body is printed along with the new Content-Type header, or
saved with '--output' when converting a single file.
`

// convert returns the recast convert subcommand.
func convert(ctx context.Context, cfg config.Config) func() (*cli.Command, error) {
	return func() (*cli.Command, error) {
		var options recast.ConvertOptions

		return cli.New(
			"convert",
			cli.Short("Convert the body of one or more saved messages"),
			cli.Long(convertLong),
			cli.RequiredArg("file", "Path to a file containing the raw message"),
			cli.Flag(&options.From, "from", 'f', cfg.From, "Format the body is currently in"),
			cli.Flag(&options.To, "to", 't', cfg.To, "Format to convert the body to"),
			cli.Flag(&options.Output, "output", 'o', "", "Write the converted body to a file"),
			cli.Flag(&options.Debug, "debug", 'd', cfg.Debug, "Enable debug logging"),
			cli.Run(func(cmd *cli.Command, args []string) error {
				app := recast.New(options.Debug, cmd.Stdin(), cmd.Stdout(), cmd.Stderr())

				files := append([]string{cmd.Arg("file")}, args[1:]...)

				return app.Convert(ctx, files, options)
			}),
		)
	}
}
