package main

import (
	"os"

	"github.com/Makepad-fr/loidraft/internal/cli"
)

func main() {
	// Hand the args to the CLI runner; no subcommand opens the editor.
	os.Exit(cli.Run(os.Args[1:]))
}
