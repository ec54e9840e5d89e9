package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/loidraft/internal/model"
	"github.com/Makepad-fr/loidraft/internal/store/jsonstore"
	"github.com/Makepad-fr/loidraft/internal/ui"
)

const excerptWidth = 80

func newClausesCmd(app *App) *cobra.Command {
	var (
		asJSON      bool
		clausesPath string
	)
	cmd := &cobra.Command{
		Use:   "clauses",
		Short: "List the clause set",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clauses := model.DefaultClauses()
			if clausesPath != "" {
				loaded, err := jsonstore.Load(clausesPath)
				if err != nil {
					return err
				}
				clauses = loaded
			}
			if asJSON {
				return jsonstore.Encode(cmd.OutOrStdout(), clauses)
			}
			ui.Panel(cmd.OutOrStdout(), clauseLines(clauses))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the clause set as JSON")
	cmd.Flags().StringVar(&clausesPath, "clauses", "", "Read the clause set from a JSON file")
	return cmd
}

// -------------- rendering helpers --------------

func clauseLines(clauses model.ClauseList) []string {
	t := ui.Current()
	included := len(clauses.Included())

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Clauses"),
		t.Success.Render(t.SymDone), included,
		t.Pending.Render(t.SymUnchecked), len(clauses)-included,
		t.Accent.Render("Total"), len(clauses),
	)

	lines := []string{header, t.Muted.Render(ui.ProgressBar(included, len(clauses), 28)), ""}
	if len(clauses) == 0 {
		return append(lines, t.Muted.Render("no clauses"))
	}
	for i, c := range clauses {
		box := t.Muted.Render(t.Box(false))
		if c.Included {
			box = t.Success.Render(t.Box(true))
		}
		lines = append(lines,
			fmt.Sprintf("%s %s %s %s", t.Muted.Render(fmt.Sprintf("%2d.", i+1)), box, c.Title, t.Muted.Render("("+c.ID+")")),
			"      "+t.Muted.Render(model.Excerpt(c.Body, excerptWidth)),
		)
	}
	lines = append(lines, "", t.Muted.Render("Tip: hide a clause with `loidraft preview --exclude rent`"))
	return lines
}
