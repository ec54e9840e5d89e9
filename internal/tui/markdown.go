package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownRenderer renders page copy with one standard glamour style. The
// renderer is rebuilt only when the wrap width changes. A fixed style avoids
// the terminal background query WithAutoStyle performs, which can block.
type markdownRenderer struct {
	style string
	width int
	r     *glamour.TermRenderer
}

func newMarkdownRenderer(style string) *markdownRenderer {
	if style == "" {
		style = "dark"
	}
	return &markdownRenderer{style: style}
}

func (mr *markdownRenderer) render(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	width = max(width, 20)
	if mr.r == nil || mr.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(mr.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mr.r, mr.width = r, width
	}
	out, err := mr.r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
