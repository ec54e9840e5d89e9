package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/Makepad-fr/loidraft/internal/model"
	"github.com/Makepad-fr/loidraft/internal/ui"
)

const excerptWidth = 80

// clauseItem adapts model.Clause to bubbles/list.Item.
type clauseItem struct {
	model.Clause
	Grabbed bool
}

// Implement list.Item interface
func (i clauseItem) FilterValue() string { return i.Clause.Title }

// clauseDelegate renders two lines per clause: grip, title and include box,
// then a body excerpt.
type clauseDelegate struct{}

func (d clauseDelegate) Height() int                               { return 2 }
func (d clauseDelegate) Spacing() int                              { return 1 }
func (d clauseDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d clauseDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(clauseItem)
	if !ok {
		return
	}
	t := ui.Current()

	box := t.Muted.Render(t.Box(false) + " hidden")
	if it.Included {
		box = t.Success.Render(t.Box(true) + " include")
	}
	title := t.Title.Render(it.Title)
	grip := t.Muted.Render(t.Grip)
	if it.Grabbed {
		grip = t.Grabbed.Render(t.Grip)
		title = t.Grabbed.Render(it.Title + "  (moving)")
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}

	width := m.Width()
	line := fmt.Sprintf("%s%s %s  %s", prefix, grip, title, box)
	excerpt := "    " + t.Muted.Render(model.Excerpt(it.Body, excerptWidth))
	if width > 0 {
		line = xansi.Truncate(line, width, "…")
		excerpt = xansi.Truncate(excerpt, width, "…")
	}
	fmt.Fprintf(w, "%s\n%s", line, excerpt)
}
