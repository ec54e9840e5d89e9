package tui

import (
	"fmt"
	"strings"
)

const homeMarkdown = `
COMMERCIAL REAL ESTATE

# Draft professional LOIs in minutes

LOIDraft lets you structure, reorder, and export clean Letters of Intent quickly.
Built for brokers and developers who need speed and consistency.

**Press enter to open the LOI Editor.**

| < 10 min | > 90% | DOCX + PDF |
|---|---|---|
| to first LOI | clause coverage | export ready |

## Live Preview

- Drag to reorder clauses
- Toggle include or hide
- Export to DOCX or PDF

## Features

- **Fast.** Enter deal details and generate a clean LOI without retyping common clauses.
- **Flexible.** Reorder clauses and hide sections to match each negotiation.
- **Professional.** Export DOCX and PDF with your branding and formatting.
`

// dashboardCards is how many mock LOIs the dashboard shows.
const dashboardCards = 6

func dashboardMarkdown() string {
	var b strings.Builder
	b.WriteString("# Your LOIs\n\n")
	b.WriteString("This prototype shows how saved LOIs would appear once persistence is wired up.\n\n")
	for i := 1; i <= dashboardCards; i++ {
		fmt.Fprintf(&b, "### Sample LOI #%d\n\n", i)
		fmt.Fprintf(&b, "*Oct %d, 2025*  \nTenant: Demo Retail  \n`View` `Download`\n\n", 10+i)
	}
	return b.String()
}

var tips = []string{
	"Grab a clause with g, move, then g again to drop it.",
	"Press space to hide a clause from the document.",
	"Press x or p when you are ready to generate the LOI.",
}
