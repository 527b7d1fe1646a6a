package planner

import "github.com/alexanderramin/travelscape/internal/domain"

// UndoBuffer remembers the single most recent activity deletion. Recording
// a second deletion before undoing the first loses the first for good.
// The buffer never expires on its own: the few-second undo toast in the
// board is a presentation timer, not a data rule.
type UndoBuffer struct {
	dayID    string
	activity domain.Activity
	pending  bool
}

// Record snapshots a just-deleted activity and its origin day, overwriting
// any earlier recording.
func (u *UndoBuffer) Record(dayID string, a domain.Activity) {
	u.dayID = dayID
	u.activity = a.Clone()
	u.pending = true
}

// Pending reports whether an undo is available.
func (u *UndoBuffer) Pending() bool { return u.pending }

// Clear empties the buffer.
func (u *UndoBuffer) Clear() {
	u.dayID = ""
	u.activity = domain.Activity{}
	u.pending = false
}

// Undo re-appends the recorded activity to the end of its origin day as it
// exists in the snapshot passed in now, never against a captured older
// version. Restore is to the end of the list, not the original index.
// With an empty buffer or a vanished origin day, the snapshot comes back
// unchanged and the second return is false.
func (u *UndoBuffer) Undo(s Snapshot) (Snapshot, bool) {
	if !u.pending {
		return s, false
	}
	if s.DayByID(u.dayID) == -1 {
		return s, false
	}
	out := s.AppendActivity(u.dayID, u.activity)
	u.Clear()
	return out, true
}
