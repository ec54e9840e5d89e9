package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/loidraft/internal/editor"
	"github.com/Makepad-fr/loidraft/internal/export"
	"github.com/Makepad-fr/loidraft/internal/logging"
	"github.com/Makepad-fr/loidraft/internal/ui"
)

type route int

const (
	routeHome route = iota
	routeDashboard
	routeEditor
)

var routeLabels = []string{"Home", "Dashboard", "LOI Editor"}

// focusArea is what receives keys inside the editor view.
type focusArea int

const (
	focusClauses focusArea = iota
	focusTenant
	focusLocation
	focusSignature
	focusCount
)

// Options configure the interactive program.
type Options struct {
	MarkdownStyle string
	Exporter      export.Exporter
	Logger        *logging.Logger
	Now           func() time.Time
	AltScreen     bool
}

type appModel struct {
	route         route
	width, height int
	ed            *editor.Editor
	opts          Options

	page viewport.Model // Home and Dashboard
	md   *markdownRenderer

	focus   focusArea
	inputs  [3]textinput.Model // tenant, location, signature
	list    list.Model
	preview viewport.Model

	// Inline body edit; editingID is empty when inactive.
	body      textarea.Model
	editingID string
	loaded    string

	status    string
	statusErr bool
}

// Run starts the Bubble Tea program over an editing session.
func Run(ed *editor.Editor, opts Options) error {
	m := newAppModel(ed, opts)
	var progOpts []tea.ProgramOption
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, progOpts...)
	_, err := p.Run()
	return err
}

func newAppModel(ed *editor.Editor, opts Options) appModel {
	if opts.Exporter == nil {
		opts.Exporter = export.Stub{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	l := list.New(nil, clauseDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.GoToStart.SetKeys("home")
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted

	// Extend help with the editor's bindings
	grabBind := key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grab/drop"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "include"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit text"))
	docxBind := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export docx"))
	pdfBind := key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "export pdf"))
	fieldsBind := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "deal fields"))
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{grabBind, toggleBind, editBind, docxBind, pdfBind}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{grabBind, toggleBind, editBind, docxBind, pdfBind, fieldsBind}
	}

	m := appModel{
		ed:      ed,
		opts:    opts,
		list:    l,
		page:    viewport.New(0, 0),
		md:      newMarkdownRenderer(opts.MarkdownStyle),
		preview: viewport.New(0, 0),
	}

	deal := ed.Deal()
	for i, v := range []string{deal.Tenant, deal.Location, deal.Signature} {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 0
		ti.SetValue(v)
		ti.CursorEnd()
		m.inputs[i] = ti
	}
	m.inputs[0].Placeholder = "Tenant"
	m.inputs[1].Placeholder = "Location"
	m.inputs[2].Placeholder = "Signature Block"

	m.body = textarea.New()
	m.body.Placeholder = "Clause text..."
	m.body.ShowLineNumbers = false
	m.body.CharLimit = 0
	m.body.MaxHeight = 0
	m.body.MaxWidth = 0

	m.syncList("")
	m.refresh()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		sel := m.selectedID()
		m.layout()
		m.syncList(sel)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	default:
		if m.editingID != "" {
			m.body, cmd = m.body.Update(msg)
		} else if m.focus != focusClauses {
			i := int(m.focus - focusTenant)
			m.inputs[i], cmd = m.inputs[i].Update(msg)
		}
	}
	m.refresh()
	return m, cmd
}

func (m *appModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// body edit mode
	if m.editingID != "" {
		switch msg.String() {
		case "ctrl+s":
			// The textarea normalizes tabs, so an untouched body is kept as loaded.
			if v := m.body.Value(); v != m.loaded {
				m.ed.SetBody(m.editingID, v)
				m.opts.Logger.Printf("edit body %s", m.editingID)
			}
			m.closeBodyEditor()
			m.syncList(m.selectedID())
			return nil
		case "esc":
			m.closeBodyEditor()
			return nil
		}
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return cmd
	}

	// deal field mode
	if m.route == routeEditor && m.focus != focusClauses {
		switch msg.String() {
		case "tab":
			return m.setFocus((m.focus + 1) % focusCount)
		case "shift+tab":
			return m.setFocus((m.focus + focusCount - 1) % focusCount)
		case "esc", "enter":
			return m.setFocus(focusClauses)
		}
		i := int(m.focus - focusTenant)
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		m.pushField(m.focus)
		return cmd
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "1":
		m.setRoute(routeHome)
		return nil
	case "2":
		m.setRoute(routeDashboard)
		return nil
	case "3":
		m.setRoute(routeEditor)
		return nil
	}

	if m.route != routeEditor {
		switch msg.String() {
		case "tab":
			m.setRoute((m.route + 1) % route(len(routeLabels)))
			return nil
		case "shift+tab":
			m.setRoute((m.route + route(len(routeLabels)) - 1) % route(len(routeLabels)))
			return nil
		case "enter":
			if m.route == routeHome {
				m.setRoute(routeEditor)
			}
			return nil
		}
		var cmd tea.Cmd
		m.page, cmd = m.page.Update(msg)
		return cmd
	}

	return m.handleClauseKey(msg)
}

func (m *appModel) handleClauseKey(msg tea.KeyMsg) tea.Cmd {
	id := m.selectedID()
	switch msg.String() {
	case "tab":
		return m.setFocus(focusTenant)
	case "shift+tab":
		return m.setFocus(focusSignature)
	case " ", "space":
		if v, ok := m.ed.ToggleIncluded(id); ok {
			m.opts.Logger.Printf("include %s=%t", id, v)
		}
		m.syncList(id)
		return nil
	case "g", "enter":
		if grabbed, ok := m.ed.Dragging(); ok {
			m.ed.DropOn(id)
			m.opts.Logger.Printf("reorder %s onto %s", grabbed, id)
			m.status = ""
			m.syncList(grabbed)
			return nil
		}
		if msg.String() == "g" && id != "" {
			m.ed.StartDrag(id)
			m.setStatus("Moving clause. Select a target and press g to drop, esc to cancel.", false)
			m.syncList(id)
		}
		return nil
	case "esc":
		if _, ok := m.ed.Dragging(); ok {
			m.ed.CancelDrag()
			m.status = ""
			m.syncList(id)
		}
		return nil
	case "e":
		if c, _, ok := m.ed.Clauses().Find(id); ok {
			m.editingID = id
			m.body.SetValue(c.Body)
			m.loaded = m.body.Value()
			m.layout()
			return m.body.Focus()
		}
		return nil
	case "x":
		m.runExport(export.DOCX)
		return nil
	case "p":
		m.runExport(export.PDF)
		return nil
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *appModel) runExport(kind export.Kind) {
	notice, err := m.opts.Exporter.Export(context.Background(), kind, m.ed.Preview())
	if err != nil {
		m.opts.Logger.Printf("export %s: %v", kind, err)
		m.setStatus(fmt.Sprintf("%s export failed: %v", kind, err), true)
		return
	}
	m.opts.Logger.Printf("export %s: written=%t", kind, notice.Written)
	m.setStatus(notice.Message, false)
}

func (m *appModel) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

func (m *appModel) setRoute(r route) {
	m.route = r
	m.page.GotoTop()
	if r != routeEditor {
		m.ed.CancelDrag()
		m.syncList(m.selectedID())
	}
	m.opts.Logger.Debugf("route %s", routeLabels[r])
}

func (m *appModel) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if int(f-focusTenant) == i {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

// pushField writes one deal input back to the session; the others keep
// whatever the session already holds.
func (m *appModel) pushField(f focusArea) {
	switch f {
	case focusTenant:
		m.ed.SetTenant(m.inputs[0].Value())
	case focusLocation:
		m.ed.SetLocation(m.inputs[1].Value())
	case focusSignature:
		m.ed.SetSignature(m.inputs[2].Value())
	}
}

func (m *appModel) closeBodyEditor() {
	m.editingID, m.loaded = "", ""
	m.body.Blur()
	m.body.Reset()
	m.layout()
}

func (m appModel) selectedID() string {
	if it, ok := m.list.SelectedItem().(clauseItem); ok {
		return it.ID
	}
	return ""
}

// syncList rebuilds list rows from the editor and keeps selectID selected.
func (m *appModel) syncList(selectID string) {
	grabbed, _ := m.ed.Dragging()
	clauses := m.ed.Clauses()
	items := make([]list.Item, 0, len(clauses))
	idx := 0
	for i, c := range clauses {
		items = append(items, clauseItem{Clause: c, Grabbed: c.ID == grabbed})
		if c.ID == selectID {
			idx = i
		}
	}
	m.list.SetItems(items)
	m.list.Select(idx)

	t := ui.Current()
	included := len(clauses.Included())
	m.list.Title = fmt.Sprintf("Clauses   %s %d  %s %d",
		t.Success.Render(t.SymDone), included,
		t.Pending.Render(t.SymUnchecked), len(clauses)-included,
	)
}

// refresh recomputes every derived view from current session state.
func (m *appModel) refresh() {
	m.preview.SetContent(ui.Current().Paper.Width(max(m.preview.Width, 1)).Render(m.ed.Preview()))
	switch m.route {
	case routeHome:
		m.page.SetContent(m.md.render(homeMarkdown, m.page.Width))
	case routeDashboard:
		m.page.SetContent(m.md.render(dashboardMarkdown(), m.page.Width))
	}
}

const (
	headerHeight = 2
	footerHeight = 2
	dealHeight   = 8
	bodyHeight   = 8
)

func (m *appModel) layout() {
	w, h := m.width, m.height
	if w <= 0 || h <= 0 {
		return
	}
	inner := max(h-headerHeight-footerHeight, 6)
	m.page.Width, m.page.Height = w, inner

	leftW := w / 2
	rightW := w - leftW

	for i := range m.inputs {
		m.inputs[i].Width = max(leftW-20, 10)
	}

	listH := inner - dealHeight - 1
	if m.editingID != "" {
		listH -= bodyHeight
		m.body.SetWidth(max(leftW-4, 10))
		m.body.SetHeight(bodyHeight - 3)
	}
	m.list.SetSize(max(leftW-2, 10), max(listH, 6))

	m.preview.Width = max(rightW-4, 10)
	tipsHeight := len(tips) + 3
	m.preview.Height = max(inner-tipsHeight-3, 4)
}

func (m appModel) View() string {
	header := m.headerView()
	footer := m.footerView()
	var content string
	switch m.route {
	case routeEditor:
		content = m.editorView()
	default:
		content = m.page.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (m appModel) headerView() string {
	t := ui.Current()
	logo := t.Title.Render("LOIDraft") + t.Muted.Render(" by ") + t.Accent.Render("Intenra")
	tabs := make([]string, 0, len(routeLabels))
	for i, label := range routeLabels {
		s := fmt.Sprintf("%d %s", i+1, label)
		if route(i) == m.route {
			tabs = append(tabs, t.TabActive.Render(s))
		} else {
			tabs = append(tabs, t.Tab.Render(s))
		}
	}
	nav := strings.Join(tabs, " ")
	gap := max(m.width-lipgloss.Width(logo)-lipgloss.Width(nav), 1)
	return logo + strings.Repeat(" ", gap) + nav + "\n"
}

func (m appModel) footerView() string {
	t := ui.Current()
	left := fmt.Sprintf("© %d Intenra. All rights reserved.", m.opts.Now().Year())
	right := "Prototype UI. For demonstration only."
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return "\n" + t.Muted.Render(left+strings.Repeat(" ", gap)+right)
}

func (m appModel) editorView() string {
	t := ui.Current()
	leftW := max(m.width/2, 20)
	card := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)

	labels := []string{"Tenant", "Location", "Signature Block"}
	fields := make([]string, 0, len(labels)+1)
	fields = append(fields, t.Title.Render("Deal Details"))
	for i, label := range labels {
		l := t.Muted.Render(fmt.Sprintf("%-16s", label))
		if m.focus == focusTenant+focusArea(i) {
			l = t.Accent.Render(fmt.Sprintf("%-16s", label))
		}
		fields = append(fields, l+m.inputs[i].View())
	}
	deal := card.Width(max(leftW-2, 10)).Render(strings.Join(fields, "\n"))

	left := []string{deal, m.list.View()}
	if m.editingID != "" {
		c, _, _ := m.ed.Clauses().Find(m.editingID)
		title := fmt.Sprintf("Edit %s  %s", c.Title, t.Muted.Render("ctrl+s apply · esc discard"))
		left = append(left, card.Render(title+"\n"+m.body.View()))
	}
	status := t.Muted.Render("Grab to reorder. Space to include or hide.")
	if m.status != "" {
		status = t.Pending.Render(m.status)
		if m.statusErr {
			status = t.Error.Render(m.status)
		}
	}
	left = append(left, status)

	previewTitle := t.Title.Render("Preview") + "  " + t.Muted.Render("Auto updates as you edit")
	tipLines := []string{t.Title.Render("Tips")}
	for _, tip := range tips {
		tipLines = append(tipLines, t.Muted.Render("• "+tip))
	}
	right := lipgloss.JoinVertical(lipgloss.Left,
		card.Render(previewTitle+"\n"+m.preview.View()),
		card.Render(strings.Join(tipLines, "\n")),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(leftW).Render(lipgloss.JoinVertical(lipgloss.Left, left...)),
		right,
	)
}
