package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/loidraft/internal/editor"
	"github.com/Makepad-fr/loidraft/internal/model"
	"github.com/Makepad-fr/loidraft/internal/store/jsonstore"
)

// sessionFlags describe a non-interactive session: deal fields plus the
// clause edits to replay before rendering.
type sessionFlags struct {
	tenant, location, signature string
	clausesPath                 string
	exclude, include, moves     []string
}

func (f *sessionFlags) register(cmd *cobra.Command, deal model.DealContext) {
	cmd.Flags().StringVar(&f.tenant, "tenant", deal.Tenant, "Tenant name")
	cmd.Flags().StringVar(&f.location, "location", deal.Location, "Property location")
	cmd.Flags().StringVar(&f.signature, "signature", deal.Signature, "Signature block")
	cmd.Flags().StringVar(&f.clausesPath, "clauses", "", "Read the clause set from a JSON file instead of the built-in seed")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil, "Clause ids to hide (comma separated)")
	cmd.Flags().StringSliceVar(&f.include, "include", nil, "Clause ids to include (comma separated)")
	cmd.Flags().StringArrayVar(&f.moves, "move", nil, "Move a clause onto a target, as id:target (repeatable, applied in order)")
}

// build replays the flags onto a fresh session. Unknown ids are ignored.
func (f *sessionFlags) build(cmd *cobra.Command, app *App) (*editor.Editor, error) {
	clauses := model.DefaultClauses()
	if f.clausesPath != "" {
		loaded, err := jsonstore.Load(f.clausesPath)
		if err != nil {
			return nil, err
		}
		clauses = loaded
	}

	deal := app.cfg.Deal
	if cmd.Flags().Changed("tenant") {
		deal.Tenant = f.tenant
	}
	if cmd.Flags().Changed("location") {
		deal.Location = f.location
	}
	if cmd.Flags().Changed("signature") {
		deal.Signature = f.signature
	}

	ed := editor.New(deal, clauses).WithLogger(app.log)
	for _, mv := range f.moves {
		from, to, ok := strings.Cut(mv, ":")
		if !ok || strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			return nil, newUsageError(fmt.Sprintf("--move: expected id:target, got %q", mv))
		}
		ed.Reorder(strings.TrimSpace(from), strings.TrimSpace(to))
	}
	for _, id := range f.include {
		ed.SetIncluded(strings.TrimSpace(id), true)
	}
	for _, id := range f.exclude {
		ed.SetIncluded(strings.TrimSpace(id), false)
	}
	return ed, nil
}

func newPreviewCmd(app *App) *cobra.Command {
	var f sessionFlags
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the generated letter",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed, err := f.build(cmd, app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ed.Preview())
			return nil
		},
	}
	f.register(cmd, model.DefaultDeal())
	return cmd
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return newUsageError(fmt.Sprintf("%s: unexpected argument %q", cmd.CommandPath(), args[0]))
	}
	return nil
}
