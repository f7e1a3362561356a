// Package recast implements the functionality of the program, the CLI in
// package cmd is simply the entrypoint to exported functions and methods in
// this package.
package recast

import (
	"io"
	"time"

	"charm.land/log/v2"
	"go.followtheprocess.codes/hue"
)

// Styles.
const (
	// headerKeyStyle is the style used for printing header keys like
	// Content-Type when we show converted output on the command line.
	headerKeyStyle = hue.Cyan

	// dimmed is the style used for printing informational content like
	// separators or file names.
	dimmed = hue.BrightBlack | hue.Italic

	// sepWidth is the width in characters of the horizontal line separator
	// between sections of output.
	sepWidth = 80
)

// Recast represents the recast program.
type Recast struct {
	stdin  io.Reader   // Raw message input is read from here in interactive mode
	stdout io.Writer   // Normal program output is written here
	stderr io.Writer   // Logs and errors are written here
	logger *log.Logger // The logger for the application
}

// New returns a new [Recast].
func New(debug bool, stdin io.Reader, stdout, stderr io.Writer) Recast {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(stderr, log.Options{
		TimeFormat:      time.RFC3339Nano,
		Level:           level,
		Prefix:          "recast",
		ReportTimestamp: true,
	})

	logger.SetStyles(defaultLogStyles())

	return Recast{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}
