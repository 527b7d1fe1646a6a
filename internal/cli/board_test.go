package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/alexanderramin/travelscape/internal/planner"
	"github.com/alexanderramin/travelscape/internal/repository"
	"github.com/alexanderramin/travelscape/internal/service"
	"github.com/alexanderramin/travelscape/internal/teatest"
	"github.com/alexanderramin/travelscape/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp wires the full service stack against an in-memory database.
func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &App{
		Itinerary: service.NewItineraryService(
			repository.NewSQLiteItineraryRepo(database),
			repository.NewSQLiteSetupRepo(database),
			repository.NewSQLiteMoodRepo(database),
			repository.NewSQLiteUndoRepo(database),
			testutil.NewTestUoW(database),
		),
		Setup:  service.NewSetupService(repository.NewSQLiteSetupRepo(database)),
		Export: service.NewExportService(),
	}
}

// startBoard saves the given days and opens the board on them.
func startBoard(t *testing.T, app *App, days []domain.Day) *teatest.Driver {
	t.Helper()
	require.NoError(t, app.Itinerary.Save(context.Background(), planner.NewSnapshot(days)))
	return teatest.New(t, newBoardModel(app), 120, 40)
}

func boardOf(d *teatest.Driver) *boardModel {
	return d.Model.(*boardModel)
}

func twoDayBoard() []domain.Day {
	return []domain.Day{
		testutil.NewTestDay(1, testutil.WithActivities(
			testutil.NewTestActivity("Snorkel", testutil.WithTags("booked")),
			testutil.NewTestActivity("Dinner", testutil.WithType(domain.ActivityFood)),
		)),
		testutil.NewTestDay(2),
	}
}

func TestBoard_RendersDaysAndActivities(t *testing.T) {
	d := startBoard(t, newTestApp(t), twoDayBoard())

	view := d.View()
	assert.Contains(t, view, "Day 1")
	assert.Contains(t, view, "Day 2")
	assert.Contains(t, view, "Snorkel")
	assert.Contains(t, view, "Dinner")
	assert.Contains(t, view, "(empty)")
}

func TestBoard_MoveActivityToEmptyDay(t *testing.T) {
	d := startBoard(t, newTestApp(t), twoDayBoard())

	d.Press(' ') // grab Snorkel
	d.Press('l') // target Day 2
	d.PressEnter()

	m := boardOf(d)
	assert.Contains(t, d.View(), "Activity moved to Day 2")
	require.Len(t, m.snap.Days[1].Activities, 1)
	assert.Equal(t, "Snorkel", m.snap.Days[1].Activities[0].Title)
	require.Len(t, m.snap.Days[0].Activities, 1)
	assert.True(t, m.dirty)
}

func TestBoard_ReorderWithinDay(t *testing.T) {
	d := startBoard(t, newTestApp(t), twoDayBoard())

	d.Press(' ') // grab Snorkel at position 0
	d.Press('j') // target position 1
	d.PressEnter()

	m := boardOf(d)
	assert.Contains(t, d.View(), "Activity reordered")
	assert.Equal(t, "Dinner", m.snap.Days[0].Activities[0].Title)
	assert.Equal(t, "Snorkel", m.snap.Days[0].Activities[1].Title)
}

func TestBoard_CancelledMoveChangesNothing(t *testing.T) {
	d := startBoard(t, newTestApp(t), twoDayBoard())

	d.Press(' ')
	d.Press('l')
	d.PressEsc()

	m := boardOf(d)
	assert.Contains(t, d.View(), "Move cancelled")
	assert.Len(t, m.snap.Days[0].Activities, 2)
	assert.Empty(t, m.snap.Days[1].Activities)
	assert.False(t, m.dirty)
}

func TestBoard_TickTodoChecksNextItemWithoutForm(t *testing.T) {
	days := []domain.Day{
		testutil.NewTestDay(1, testutil.WithActivities(
			testutil.NewTestActivity("Snorkel", testutil.WithChecklist("Rent gear", "Book boat")),
		)),
	}
	d := startBoard(t, newTestApp(t), days)

	d.Press('t')

	m := boardOf(d)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Contains(t, d.View(), "Done: Rent gear")
	items := m.snap.Days[0].Activities[0].Checklist
	require.Len(t, items, 2)
	assert.True(t, items[0].Completed)
	assert.False(t, items[1].Completed)
	assert.True(t, m.dirty)

	// Ticking past the last item resets the whole list.
	d.Press('t')
	d.Press('t')
	items = boardOf(d).snap.Days[0].Activities[0].Checklist
	assert.False(t, items[0].Completed)
	assert.False(t, items[1].Completed)
	assert.Contains(t, d.View(), "Checklist reset")
}

func TestBoard_DeleteThenUndoRestoresToEnd(t *testing.T) {
	d := startBoard(t, newTestApp(t), twoDayBoard())

	d.Press('x') // delete Snorkel
	m := boardOf(d)
	assert.Contains(t, d.View(), "Removed Snorkel")
	require.Len(t, m.snap.Days[0].Activities, 1)

	d.Press('u')
	m = boardOf(d)
	assert.Contains(t, d.View(), "Restored Snorkel")
	require.Len(t, m.snap.Days[0].Activities, 2)
	// Restore is to the end, not the original position.
	assert.Equal(t, "Snorkel", m.snap.Days[0].Activities[1].Title)
}

func TestBoard_UndoWithEmptySlot(t *testing.T) {
	d := startBoard(t, newTestApp(t), twoDayBoard())

	d.Press('u')
	assert.Contains(t, d.View(), "Nothing to undo")
}

func TestBoard_FilterHidesNonMatching(t *testing.T) {
	d := startBoard(t, newTestApp(t), twoDayBoard())

	d.Press('f') // planned: neither matches
	view := d.View()
	assert.Contains(t, view, "Filter: #planned")
	assert.NotContains(t, view, "Snorkel")
	assert.NotContains(t, view, "Dinner")

	d.Press('f') // booked: Snorkel carries the tag
	view = d.View()
	assert.Contains(t, view, "Snorkel")
	assert.NotContains(t, view, "Dinner")
}

func TestBoard_FilterBlocksGrab(t *testing.T) {
	d := startBoard(t, newTestApp(t), twoDayBoard())

	d.Press('f')
	d.Press(' ')
	m := boardOf(d)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Contains(t, d.View(), "Clear the filter")
}

func TestBoard_TagKeyTogglesActiveFilterTag(t *testing.T) {
	d := startBoard(t, newTestApp(t), twoDayBoard())
	m := boardOf(d)

	d.Press('#') // no filter tag picked yet
	assert.Contains(t, d.View(), "Pick a tag with f first")
	assert.False(t, m.dirty)

	d.Press('f') // planned
	d.Press('f') // booked: Snorkel visible
	d.Press('#')
	assert.Contains(t, d.View(), "Untagged #booked")
	assert.Empty(t, m.snap.Days[0].Activities[0].Tags)
	assert.True(t, m.dirty)

	// Snorkel dropped out of the filtered view, so another press finds
	// nothing under the cursor.
	d.Press('#')
	assert.Empty(t, m.snap.Days[0].Activities[0].Tags)

	d.Press('f') // must-do
	d.Press('f') // food: Dinner visible through its type
	d.Press('#')
	assert.Contains(t, d.View(), "Tagged #food")
	assert.Contains(t, m.snap.Days[0].Activities[1].Tags, "food")
}

func TestBoard_AddDay(t *testing.T) {
	d := startBoard(t, newTestApp(t), twoDayBoard())

	d.Press('+')
	m := boardOf(d)
	require.Len(t, m.snap.Days, 3)
	assert.Equal(t, "Day 3", m.snap.Days[2].Title)
	assert.True(t, m.dirty)
}

func TestBoard_MoodPickerAppliesAndPersists(t *testing.T) {
	app := newTestApp(t)
	d := startBoard(t, app, twoDayBoard())

	d.Press('m')
	d.Press('j') // first catalog entry after (clear)
	d.PressEnter()

	m := boardOf(d)
	require.NotNil(t, m.snap.Days[0].Mood)
	assert.Equal(t, "Chill", m.snap.Days[0].Mood.Label)

	// The mood write bypasses the dirty/save cycle.
	loaded := app.Itinerary.Load(context.Background())
	require.NotNil(t, loaded.Days[0].Mood)
	assert.Equal(t, "Chill", loaded.Days[0].Mood.Label)
}

func TestBoard_SaveAndQuitPersists(t *testing.T) {
	app := newTestApp(t)
	d := startBoard(t, app, twoDayBoard())

	d.Press('+')
	d.Press('s')
	assert.Contains(t, d.View(), "Itinerary saved")
	assert.False(t, boardOf(d).dirty)

	loaded := app.Itinerary.Load(context.Background())
	assert.Len(t, loaded.Days, 3)

	d.Press('q')
	assert.True(t, d.Quitting)
}

func TestBoard_QuitSavesDirtyState(t *testing.T) {
	app := newTestApp(t)
	d := startBoard(t, app, twoDayBoard())

	d.Press('+')
	d.Press('q')
	require.True(t, d.Quitting)

	loaded := app.Itinerary.Load(context.Background())
	assert.Len(t, loaded.Days, 3)
}

func TestBoard_AddActivityForm(t *testing.T) {
	d := startBoard(t, newTestApp(t), twoDayBoard())

	d.Press('a')
	m := boardOf(d)
	require.Equal(t, modeForm, m.mode)
	require.NotNil(t, m.draft)
	assert.Equal(t, planner.DraftNew, m.draft.Kind)
	assert.Equal(t, "day-1", m.draft.TargetDay)

	// Escape discards the draft without touching the board.
	d.PressEsc()
	m = boardOf(d)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Nil(t, m.draft)
	assert.Len(t, m.snap.Days[0].Activities, 2)
}

func TestBoard_RenameForm(t *testing.T) {
	d := startBoard(t, newTestApp(t), twoDayBoard())

	d.Press('r')
	m := boardOf(d)
	require.Equal(t, modeForm, m.mode)
	assert.True(t, m.rename)

	d.PressEsc()
	assert.Equal(t, "Day 1", boardOf(d).snap.Days[0].Title)
}

func TestBoard_ToastExpiry(t *testing.T) {
	d := startBoard(t, newTestApp(t), twoDayBoard())

	d.Press('+')
	m := boardOf(d)
	require.NotEmpty(t, m.toast)

	// A stale expiry for an older toast is ignored.
	d.Send(toastExpireMsg{seq: m.toastSeq - 1})
	assert.NotEmpty(t, boardOf(d).toast)

	d.Send(toastExpireMsg{seq: m.toastSeq})
	assert.Empty(t, boardOf(d).toast)
}
