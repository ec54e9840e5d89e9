package model

import (
	"errors"
	"fmt"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Clause is one block of boilerplate LOI text.
// ID never changes after creation; it is the sort and drag key.
type Clause struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Included bool   `json:"included"`
}

// ClauseList is an ordered set of clauses, unique by ID.
// Methods never mutate the receiver; they return a fresh list.
type ClauseList []Clause

var (
	ErrEmptyID     = errors.New("clause id is empty")
	ErrDuplicateID = errors.New("duplicate clause id")
)

// Clone returns an independent copy.
func (l ClauseList) Clone() ClauseList {
	if l == nil {
		return nil
	}
	out := make(ClauseList, len(l))
	copy(out, l)
	return out
}

func (l ClauseList) indexOf(id string) int {
	for i, c := range l {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the clause with the given id and its position.
func (l ClauseList) Find(id string) (Clause, int, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Clause{}, -1, false
	}
	return l[i], i, true
}

// IDs returns the clause ids in list order.
func (l ClauseList) IDs() []string {
	out := make([]string, 0, len(l))
	for _, c := range l {
		out = append(out, c.ID)
	}
	return out
}

// Included returns only the included clauses, order kept.
func (l ClauseList) Included() ClauseList {
	out := make(ClauseList, 0, len(l))
	for _, c := range l {
		if c.Included {
			out = append(out, c)
		}
	}
	return out
}

// Reorder moves the clause movingID so that it ends up at the index targetID
// held before the move. Moving up lands right before the target, moving down
// lands right after it. Equal or unknown ids return an unchanged copy.
func (l ClauseList) Reorder(movingID, targetID string) ClauseList {
	out := l.Clone()
	if movingID == targetID {
		return out
	}
	from, to := out.indexOf(movingID), out.indexOf(targetID)
	if from < 0 || to < 0 {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append(ClauseList{moved}, out[to:]...)...)
	return out
}

// SetIncluded flips the inclusion flag of one clause. The bool reports whether
// the id was found.
func (l ClauseList) SetIncluded(id string, included bool) (ClauseList, bool) {
	out := l.Clone()
	i := out.indexOf(id)
	if i < 0 {
		return out, false
	}
	out[i].Included = included
	return out, true
}

// SetBody replaces the body text of one clause.
func (l ClauseList) SetBody(id, body string) (ClauseList, bool) {
	out := l.Clone()
	i := out.indexOf(id)
	if i < 0 {
		return out, false
	}
	out[i].Body = body
	return out, true
}

// Validate checks the list invariants: every id is non-empty and unique.
func (l ClauseList) Validate() error {
	seen := make(map[string]struct{}, len(l))
	for i, c := range l {
		id := strings.TrimSpace(c.ID)
		if id == "" {
			return fmt.Errorf("clause %d: %w", i+1, ErrEmptyID)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("clause %q: %w", id, ErrDuplicateID)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Excerpt shortens a clause body for list rows.
func Excerpt(body string, width int) string {
	if width <= 0 || xansi.StringWidth(body) <= width {
		return body
	}
	return xansi.Truncate(body, width, "") + "…"
}
