package model

// DragState tracks the grabbed clause during a reorder gesture.
// The zero value is idle.
type DragState struct {
	id       string
	dragging bool
}

// Active reports the grabbed id, if any.
func (d DragState) Active() (string, bool) {
	return d.id, d.dragging
}

// StartDrag grabs id. Starting again replaces the grabbed id.
func (d DragState) StartDrag(id string) DragState {
	if id == "" {
		return DragState{}
	}
	return DragState{id: id, dragging: true}
}

// Drop releases the grabbed clause onto targetID and returns the reordered
// list with the machine back to idle. Dropping while idle changes nothing.
func (d DragState) Drop(targetID string, list ClauseList) (DragState, ClauseList) {
	if !d.dragging {
		return d, list.Clone()
	}
	return DragState{}, list.Reorder(d.id, targetID)
}

// Cancel abandons the gesture.
func (d DragState) Cancel() DragState {
	return DragState{}
}
