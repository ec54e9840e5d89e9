package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/loidraft/internal/export"
	"github.com/Makepad-fr/loidraft/internal/model"
	"github.com/Makepad-fr/loidraft/internal/ui"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		f        sessionFlags
		exporter export.Exporter = export.Stub{}
	)
	cmd := &cobra.Command{
		Use:       "export <docx|pdf>",
		Short:     "Export the letter (placeholder: prints a notice, writes nothing)",
		ValidArgs: []string{"docx", "pdf"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return newUsageError("usage: loidraft export <docx|pdf>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := export.ParseKind(args[0])
			if err != nil {
				if errors.Is(err, export.ErrUnknownKind) {
					return newUsageError(err.Error())
				}
				return err
			}
			ed, err := f.build(cmd, app)
			if err != nil {
				return err
			}
			notice, err := exporter.Export(cmd.Context(), kind, ed.Preview())
			if err != nil {
				return err
			}
			app.log.Printf("export %s: written=%t", kind, notice.Written)
			ui.Notice(cmd.OutOrStdout(), notice.Message)
			return nil
		},
	}
	f.register(cmd, model.DefaultDeal())
	return cmd
}
