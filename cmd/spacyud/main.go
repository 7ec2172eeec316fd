package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// UI contains the input and output streams of the application.
// Used for injecting buffers during testing.
type UI struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fmt.Fprintf(ui.Err, "spacyud: %v\n", err)
		os.Exit(1)
	}
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "spacyud",
		Usage:     "convert spaCy dependency parses into Universal Dependencies documents",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Commands: []*cli.Command{
			newConvertCommand(ui),
			newParseCommand(ui),
			newBatchCommand(ui),
			newValidateCommand(ui),
			newReplCommand(ui),
			newVersionCommand(ui),
		},
	}
}
