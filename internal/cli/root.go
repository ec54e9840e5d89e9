package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/loidraft/internal/config"
	"github.com/Makepad-fr/loidraft/internal/editor"
	"github.com/Makepad-fr/loidraft/internal/logging"
	"github.com/Makepad-fr/loidraft/internal/model"
	"github.com/Makepad-fr/loidraft/internal/tui"
	"github.com/Makepad-fr/loidraft/internal/ui"
)

// App carries root flags and loaded settings into subcommands.
type App struct {
	ConfigPath string
	NoColor    bool

	cfg config.Config
	log *logging.Logger
}

// Close releases the log file. It is safe to call when no log was opened.
func (app *App) Close() error {
	err := app.log.Close()
	app.log = nil
	return err
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "loidraft",
		Short:         "Draft commercial real-estate Letters of Intent",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive editor
  loidraft

  # Print the letter with the default clauses
  loidraft preview --tenant "Acme Retail LLC"

  # Move Commission to the top and hide Base Rent
  loidraft preview --move commission:rent --exclude rent
`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return newUsageError(fmt.Sprintf("unknown command %q for %q", args[0], cmd.CommandPath()))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(app.ConfigPath)
		if err != nil {
			return err
		}
		app.cfg = cfg
		ui.SetTheme(cfg.Theme)
		ui.ConfigureColor(app.NoColor || cfg.Theme == "mono")

		l, err := logging.New(cfg.LogFile, cfg.Debug)
		if err != nil {
			return err
		}
		app.log = l
		app.log.Printf("start %s (config=%q)", cmd.CommandPath(), cfg.Path)
		return nil
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newUsageError(err.Error())
	})

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "Path to loidraft.yaml (default: $LOIDRAFT_CONFIG or ./loidraft.yaml)")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newClausesCmd(app))
	cmd.AddCommand(newExportCmd(app))

	return cmd
}

func runTUI(app *App) error {
	ed := editor.New(app.cfg.Deal, model.DefaultClauses()).WithLogger(app.log)
	return tui.Run(ed, tui.Options{
		MarkdownStyle: app.cfg.MarkdownStyle,
		Logger:        app.log,
		AltScreen:     true,
	})
}
