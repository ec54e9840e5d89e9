package model

import (
	"fmt"
	"strings"
)

// PreviewHeader opens every generated letter.
const PreviewHeader = "LETTER OF INTENT"

// GeneratePreview renders the letter text. Only included clauses appear,
// numbered from 1 in list order. Pure: neither argument is modified.
func GeneratePreview(deal DealContext, clauses ClauseList) string {
	var body []string
	n := 0
	for _, c := range clauses {
		if !c.Included {
			continue
		}
		n++
		body = append(body, fmt.Sprintf("%d. %s\n\n%s", n, c.Title, c.Body))
	}

	var b strings.Builder
	b.WriteString(PreviewHeader)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Tenant: %s\nLocation: %s\n\n", deal.Tenant, deal.Location)
	b.WriteString(strings.Join(body, "\n\n"))
	fmt.Fprintf(&b, "\n\nSincerely,\n%s", deal.Signature)
	return b.String()
}
