// Package editor owns one LOI drafting session: the deal fields, the ordered
// clause list and the in-flight drag gesture. Unknown ids are ignored rather
// than reported as errors; a form should never break on a stale row.
package editor

import (
	"github.com/Makepad-fr/loidraft/internal/logging"
	"github.com/Makepad-fr/loidraft/internal/model"
)

// Editor is single-owner, in-memory session state. It is not safe for
// concurrent use; the TUI drives it from its update loop.
type Editor struct {
	deal    model.DealContext
	clauses model.ClauseList
	drag    model.DragState
	log     *logging.Logger
}

// New seeds a session. The clause list is copied.
func New(deal model.DealContext, clauses model.ClauseList) *Editor {
	return &Editor{deal: deal, clauses: clauses.Clone()}
}

// NewDefault seeds a session from the built-in deal and clause set.
func NewDefault() *Editor {
	return New(model.DefaultDeal(), model.DefaultClauses())
}

// WithLogger attaches a logger for no-op diagnostics.
func (e *Editor) WithLogger(l *logging.Logger) *Editor {
	e.log = l
	return e
}

func (e *Editor) Deal() model.DealContext { return e.deal }

func (e *Editor) SetTenant(v string)    { e.deal.Tenant = v }
func (e *Editor) SetLocation(v string)  { e.deal.Location = v }
func (e *Editor) SetSignature(v string) { e.deal.Signature = v }

// Clauses returns a copy of the current list.
func (e *Editor) Clauses() model.ClauseList { return e.clauses.Clone() }

// Reorder moves movingID to targetID's position.
func (e *Editor) Reorder(movingID, targetID string) {
	for _, id := range []string{movingID, targetID} {
		if _, _, ok := e.clauses.Find(id); !ok {
			e.log.Debugf("reorder: unknown clause %q", id)
		}
	}
	e.clauses = e.clauses.Reorder(movingID, targetID)
}

// SetIncluded reports whether the id was found.
func (e *Editor) SetIncluded(id string, included bool) bool {
	next, ok := e.clauses.SetIncluded(id, included)
	if !ok {
		e.log.Debugf("set included: unknown clause %q", id)
		return false
	}
	e.clauses = next
	return true
}

// ToggleIncluded flips the inclusion flag and returns the new value.
func (e *Editor) ToggleIncluded(id string) (bool, bool) {
	c, _, ok := e.clauses.Find(id)
	if !ok {
		e.log.Debugf("toggle: unknown clause %q", id)
		return false, false
	}
	e.SetIncluded(id, !c.Included)
	return !c.Included, true
}

func (e *Editor) SetBody(id, body string) bool {
	next, ok := e.clauses.SetBody(id, body)
	if !ok {
		e.log.Debugf("set body: unknown clause %q", id)
		return false
	}
	e.clauses = next
	return true
}

// StartDrag grabs a clause. Unknown ids leave the gesture idle.
func (e *Editor) StartDrag(id string) {
	if _, _, ok := e.clauses.Find(id); !ok {
		e.log.Debugf("start drag: unknown clause %q", id)
		e.drag = e.drag.Cancel()
		return
	}
	e.drag = e.drag.StartDrag(id)
}

// DropOn releases the grabbed clause onto targetID.
func (e *Editor) DropOn(targetID string) {
	if id, ok := e.drag.Active(); ok {
		e.log.Debugf("drop %q on %q", id, targetID)
	}
	e.drag, e.clauses = e.drag.Drop(targetID, e.clauses)
}

func (e *Editor) CancelDrag() { e.drag = e.drag.Cancel() }

// Dragging returns the grabbed id while a drag is in progress.
func (e *Editor) Dragging() (string, bool) { return e.drag.Active() }

// Preview is derived from current state on every call.
func (e *Editor) Preview() string {
	return model.GeneratePreview(e.deal, e.clauses)
}
