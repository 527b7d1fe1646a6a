package planner

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/google/uuid"
)

type DraftKind int

const (
	// DraftNew is a brand-new activity that exists nowhere in the snapshot
	// until committed.
	DraftNew DraftKind = iota
	// DraftEditing is a working copy of an activity already on the board.
	DraftEditing
)

// Draft is the pending-edit buffer behind the activity form. Field edits
// land on Draft.Activity and never touch the committed snapshot until
// Commit; discarding the draft discards everything. The explicit Kind
// records whether this is a create or an edit, so commit does not have to
// guess from id presence.
type Draft struct {
	Kind      DraftKind
	TargetDay string
	Activity  domain.Activity
}

// NewDraft opens a buffer for a brand-new activity on the given day, with
// a fresh id and default field values.
func NewDraft(dayID string) *Draft {
	return &Draft{
		Kind:      DraftNew,
		TargetDay: dayID,
		Activity: domain.Activity{
			ID:   "activity-" + uuid.New().String()[:8],
			Type: domain.ActivityGeneric,
		},
	}
}

// EditDraft opens a buffer as a deep copy of an existing activity.
func EditDraft(dayID string, a domain.Activity) *Draft {
	return &Draft{
		Kind:      DraftEditing,
		TargetDay: dayID,
		Activity:  a.Clone(),
	}
}

// AddTag appends a tag unless the draft already carries it.
func (d *Draft) AddTag(tag string) {
	for _, t := range d.Activity.Tags {
		if t == tag {
			return
		}
	}
	d.Activity.Tags = append(d.Activity.Tags, tag)
}

// RemoveTag drops a tag from the draft, keeping the remaining order.
func (d *Draft) RemoveTag(tag string) {
	out := d.Activity.Tags[:0]
	for _, t := range d.Activity.Tags {
		if t != tag {
			out = append(out, t)
		}
	}
	d.Activity.Tags = out
}

// ToggleTag adds the tag if absent, removes it if present.
func (d *Draft) ToggleTag(tag string) {
	for _, t := range d.Activity.Tags {
		if t == tag {
			d.RemoveTag(tag)
			return
		}
	}
	d.Activity.Tags = append(d.Activity.Tags, tag)
}

// Validate checks that the draft can be committed. The form keeps the
// buffer open and the save action blocked while this fails.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.Activity.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if d.TargetDay == "" {
		return fmt.Errorf("no target day set")
	}
	return nil
}

// Commit writes the draft into the snapshot. Edits replace the activity in
// place, keeping its position; everything else is appended at the end of
// the target day. An edited activity whose original has since been deleted
// is appended rather than lost. The caller clears the draft on success.
func (d *Draft) Commit(s Snapshot) (Snapshot, error) {
	if err := d.Validate(); err != nil {
		return s, err
	}
	i := s.DayByID(d.TargetDay)
	if i == -1 {
		return s, fmt.Errorf("day %q not found", d.TargetDay)
	}
	day := s.Days[i]
	committed := d.Activity.Clone()

	if d.Kind == DraftEditing {
		if j := day.IndexOfActivity(committed.ID); j != -1 {
			acts := make([]domain.Activity, len(day.Activities))
			copy(acts, day.Activities)
			acts[j] = committed
			day.Activities = acts
			return s.replaceDay(i, day), nil
		}
	}

	acts := make([]domain.Activity, len(day.Activities), len(day.Activities)+1)
	copy(acts, day.Activities)
	day.Activities = append(acts, committed)
	return s.replaceDay(i, day), nil
}
