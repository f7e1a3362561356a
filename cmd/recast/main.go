package main

import (
	"context"
	"os"

	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/recast/internal/cmd"
)

func main() {
	if err := run(); err != nil {
		msg.Error("%s", err)
		os.Exit(1)
	}
}

func run() error {
	root, err := cmd.Build(context.Background())
	if err != nil {
		return err
	}

	return root.Execute()
}
