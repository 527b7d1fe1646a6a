package planner

import (
	"testing"

	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndo_RestoresToEnd(t *testing.T) {
	s := boardWith(3)
	deleted := s.Days[0].Activities[0]
	deleted.Checklist = []domain.ChecklistItem{{ID: "c1", Text: "Passport", Completed: true}}
	s.Days[0].Activities[0] = deleted

	var undo UndoBuffer
	s, removed, ok := s.DeleteActivity("day-1", "a1")
	require.True(t, ok)
	undo.Record("day-1", removed)

	assert.Equal(t, -1, s.Days[0].IndexOfActivity("a1"))
	assert.True(t, undo.Pending())

	out, restored := undo.Undo(s)
	require.True(t, restored)
	require.Len(t, out.Days[0].Activities, 3)
	got := out.Days[0].Activities[2]
	assert.Equal(t, deleted, got, "all fields restored exactly, appended at the end")
	assert.False(t, undo.Pending(), "buffer cleared after undo")
}

func TestUndo_EmptyBufferIsNoop(t *testing.T) {
	s := boardWith(2)
	var undo UndoBuffer
	out, restored := undo.Undo(s)
	assert.False(t, restored)
	assert.Equal(t, s.Days, out.Days)
}

func TestUndo_SecondDeletionOverwritesFirst(t *testing.T) {
	s := boardWith(2)
	var undo UndoBuffer

	s, first, _ := s.DeleteActivity("day-1", "a1")
	undo.Record("day-1", first)
	s, second, _ := s.DeleteActivity("day-1", "a2")
	undo.Record("day-1", second)

	out, restored := undo.Undo(s)
	require.True(t, restored)
	require.Len(t, out.Days[0].Activities, 1)
	assert.Equal(t, "a2", out.Days[0].Activities[0].ID, "only the latest deletion is recoverable")

	_, restored = undo.Undo(out)
	assert.False(t, restored, "single-level undo")
}

func TestUndo_AgainstCurrentStateNotCapturedOne(t *testing.T) {
	s := boardWith(2, 0)
	var undo UndoBuffer

	s, removed, _ := s.DeleteActivity("day-1", "a1")
	undo.Record("day-1", removed)

	// The board keeps changing before undo fires.
	s, _ = s.Move(MoveRequest{FromDay: "day-1", FromIndex: 0, ToDay: "day-2", ToIndex: 0})
	s = s.AddDay()

	out, restored := undo.Undo(s)
	require.True(t, restored)
	require.Len(t, out.Days[0].Activities, 1)
	assert.Equal(t, "a1", out.Days[0].Activities[0].ID)
	require.Len(t, out.Days[1].Activities, 1, "intervening move preserved")
	assert.Len(t, out.Days, 3, "intervening day add preserved")
}

func TestUndo_VanishedDayIsNoop(t *testing.T) {
	s := boardWith(1)
	var undo UndoBuffer
	_, removed, _ := s.DeleteActivity("day-1", "a1")
	undo.Record("day-1", removed)

	// Rebuild the board without the origin day, as a reseed would.
	reseeded := NewSnapshot([]domain.Day{{ID: "day-7", Title: "Day 7"}})

	out, restored := undo.Undo(reseeded)
	assert.False(t, restored)
	assert.Equal(t, reseeded.Days, out.Days)
	assert.True(t, undo.Pending(), "buffer kept when restore target is gone")
}
