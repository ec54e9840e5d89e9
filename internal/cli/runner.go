package cli

import (
	"errors"
	"os"

	"github.com/Makepad-fr/loidraft/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks failures caused by bad arguments.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func newUsageError(msg string) error { return usageError{msg: msg} }

// Run executes the command line and returns an exit code.
func Run(args []string) int {
	app := &App{}
	cmd := newRootCmd(app)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		app.log.Printf("error: %v", err)
	}
	// Closed here rather than in a post-run hook, which cobra skips on error.
	if cerr := app.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return exitCode(err)
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ue usageError
	if errors.As(err, &ue) {
		ui.Fail(os.Stderr, err.Error())
		return exitUsage
	}
	ui.Fail(os.Stderr, err.Error())
	return exitError
}
