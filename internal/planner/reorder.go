package planner

import "github.com/alexanderramin/travelscape/internal/domain"

// MoveRequest describes one drop of an activity card: where it was picked
// up and where it was released. An empty ToDay means the drop was
// cancelled. Indices come straight from the board and can be stale during
// rapid interaction, so Move absorbs anything malformed as a no-op.
type MoveRequest struct {
	FromDay   string
	FromIndex int
	ToDay     string
	ToIndex   int
}

// MoveKind classifies a completed move for the confirmation toast.
type MoveKind int

const (
	MoveNone MoveKind = iota
	MoveReordered
	MoveCrossDay
)

// MoveOutcome reports what a Move did. DestTitle is the destination day's
// title, set only for cross-day moves.
type MoveOutcome struct {
	Kind      MoveKind
	DestTitle string
}

// Changed reports whether the move produced a new snapshot.
func (o MoveOutcome) Changed() bool { return o.Kind != MoveNone }

// Move computes the snapshot after a drop.
//
// Same-day moves remove the activity first and insert at ToIndex of the
// shortened list, the standard list-reorder semantics. Cross-day moves
// transfer the activity value unchanged; only membership and position
// change. Cancelled drops, unknown day ids, identical source/destination
// positions, and out-of-range source indices all return the input snapshot
// untouched.
func (s Snapshot) Move(req MoveRequest) (Snapshot, MoveOutcome) {
	none := MoveOutcome{Kind: MoveNone}
	if req.ToDay == "" {
		return s, none
	}
	if req.FromDay == req.ToDay && req.FromIndex == req.ToIndex {
		return s, none
	}

	from := s.DayByID(req.FromDay)
	to := s.DayByID(req.ToDay)
	if from == -1 || to == -1 {
		return s, none
	}
	src := s.Days[from]
	if req.FromIndex < 0 || req.FromIndex >= len(src.Activities) {
		return s, none
	}

	if from == to {
		acts := make([]domain.Activity, 0, len(src.Activities))
		acts = append(acts, src.Activities[:req.FromIndex]...)
		acts = append(acts, src.Activities[req.FromIndex+1:]...)
		at := clamp(req.ToIndex, len(acts))
		acts = insertAt(acts, at, src.Activities[req.FromIndex])
		src.Activities = acts
		return s.replaceDay(from, src), MoveOutcome{Kind: MoveReordered}
	}

	dst := s.Days[to]
	moved := src.Activities[req.FromIndex]

	srcActs := make([]domain.Activity, 0, len(src.Activities)-1)
	srcActs = append(srcActs, src.Activities[:req.FromIndex]...)
	srcActs = append(srcActs, src.Activities[req.FromIndex+1:]...)
	src.Activities = srcActs

	dstActs := make([]domain.Activity, len(dst.Activities))
	copy(dstActs, dst.Activities)
	at := clamp(req.ToIndex, len(dstActs))
	dst.Activities = insertAt(dstActs, at, moved)

	out := s.replaceDay(from, src)
	out = out.replaceDay(to, dst)
	return out, MoveOutcome{Kind: MoveCrossDay, DestTitle: dst.Title}
}

// clamp bounds a destination index to the insertable range [0, n].
// Drop targets past the end of a list mean "append".
func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

func insertAt(acts []domain.Activity, i int, a domain.Activity) []domain.Activity {
	acts = append(acts, domain.Activity{})
	copy(acts[i+1:], acts[i:])
	acts[i] = a
	return acts
}
