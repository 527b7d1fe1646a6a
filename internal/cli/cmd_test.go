package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/alexanderramin/travelscape/internal/planner"
	"github.com/alexanderramin/travelscape/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCmd runs a cobra command and captures cobra-level output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// seedBoard persists a known two-day board so commands do not fall back to
// the starter sample trip.
func seedBoard(t *testing.T, app *App) {
	t.Helper()
	require.NoError(t, app.Itinerary.Save(context.Background(), planner.NewSnapshot(twoDayBoard())))
}

func loadDays(t *testing.T, app *App) []domain.Day {
	t.Helper()
	return app.Itinerary.Load(context.Background()).Days
}

// --- root ---

func TestRootCmd_NoArgsNonInteractiveShowsHelp(t *testing.T) {
	app := newTestApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "travelscape")
}

// --- setup ---

func TestSetupCmd_FlagsAndFreshSeed(t *testing.T) {
	app := newTestApp(t)

	_, err := executeCmd(t, app, "setup",
		"--destination", "Lisbon",
		"--type", "cities",
		"--days", "3",
		"--start", "2026-09-14",
		"--fresh")
	require.NoError(t, err)

	setup := app.Setup.Get(context.Background())
	assert.Equal(t, "Lisbon", setup.Destination)
	assert.Equal(t, domain.TripCities, setup.TripType)
	assert.Equal(t, 3, setup.NumberOfDays)

	days := loadDays(t, app)
	require.Len(t, days, 3)
	for _, d := range days {
		assert.Empty(t, d.Activities)
	}
}

func TestSetupCmd_WithoutFreshKeepsItinerary(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "setup", "--destination", "Lisbon")
	require.NoError(t, err)

	days := loadDays(t, app)
	require.Len(t, days, 2)
	assert.NotEmpty(t, days[0].Activities)
}

func TestSetupCmd_InvalidType(t *testing.T) {
	app := newTestApp(t)

	_, err := executeCmd(t, app, "setup", "--destination", "X", "--type", "jungle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trip type")
}

func TestSetupCmd_InvalidDate(t *testing.T) {
	app := newTestApp(t)

	_, err := executeCmd(t, app, "setup", "--start", "next tuesday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date")
}

func TestSetupCmd_NoFlagsNoTerminal(t *testing.T) {
	app := newTestApp(t)

	_, err := executeCmd(t, app, "setup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no terminal")
}

// --- day ---

func TestDayListCmd_TimelineFlag(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "day", "list", "--timeline")
	require.NoError(t, err)
}

func TestDayAddCmd(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "day", "add")
	require.NoError(t, err)

	days := loadDays(t, app)
	require.Len(t, days, 3)
	assert.Equal(t, "Day 3", days[2].Title)
}

func TestDayRenameCmd(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "day", "rename", "2", "Ubud", "Day", "Trip")
	require.NoError(t, err)
	assert.Equal(t, "Ubud Day Trip", loadDays(t, app)[1].Title)
}

func TestDayMoodCmd_SetAndClear(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "day", "mood", "1", "Foodie")
	require.NoError(t, err)
	require.NotNil(t, loadDays(t, app)[0].Mood)
	assert.Equal(t, "Foodie", loadDays(t, app)[0].Mood.Label)

	_, err = executeCmd(t, app, "day", "mood", "1")
	require.NoError(t, err)
	assert.Nil(t, loadDays(t, app)[0].Mood)
}

func TestDayMoodCmd_UnknownLabel(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "day", "mood", "1", "Grumpy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mood")
}

// --- activity ---

func TestActivityAddCmd(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "activity", "add", "2",
		"--title", "Temple Visit",
		"--start", "09:00", "--end", "11:00",
		"--location", "Ubud",
		"--type", "explore",
		"--tags", "must-do,booked")
	require.NoError(t, err)

	days := loadDays(t, app)
	require.Len(t, days[1].Activities, 1)
	a := days[1].Activities[0]
	assert.Equal(t, "Temple Visit", a.Title)
	assert.Equal(t, "09:00", a.TimeStart)
	assert.Equal(t, domain.ActivityExplore, a.Type)
	assert.Equal(t, []string{"must-do", "booked"}, a.Tags)
}

func TestActivityAddCmd_RequiresTitle(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "activity", "add", "1")
	assert.Error(t, err)
}

func TestActivityAddCmd_InvalidType(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "activity", "add", "1", "--title", "X", "--type", "sleeping")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid type")
}

func TestActivityEditCmd_ChangesOnlyFlaggedFields(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "activity", "edit", "1", "1", "--title", "Reef Snorkel")
	require.NoError(t, err)

	a := loadDays(t, app)[0].Activities[0]
	assert.Equal(t, "Reef Snorkel", a.Title)
	assert.Equal(t, []string{"booked"}, a.Tags, "untouched fields survive the edit")
}

func TestActivityRmThenUndo(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "activity", "rm", "1", "1")
	require.NoError(t, err)
	days := loadDays(t, app)
	require.Len(t, days[0].Activities, 1)
	assert.Equal(t, "Dinner", days[0].Activities[0].Title)

	_, err = executeCmd(t, app, "activity", "undo")
	require.NoError(t, err)
	days = loadDays(t, app)
	require.Len(t, days[0].Activities, 2)
	assert.Equal(t, "Snorkel", days[0].Activities[1].Title)

	// The slot is spent.
	_, err = executeCmd(t, app, "activity", "undo")
	require.NoError(t, err)
	assert.Len(t, loadDays(t, app)[0].Activities, 2)
}

func TestActivityMoveCmd_CrossDayDefaultsToEnd(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "activity", "move", "1", "1", "2")
	require.NoError(t, err)

	days := loadDays(t, app)
	require.Len(t, days[1].Activities, 1)
	assert.Equal(t, "Snorkel", days[1].Activities[0].Title)
}

func TestActivityMoveCmd_WithinDay(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "activity", "move", "1", "1", "1", "2")
	require.NoError(t, err)

	days := loadDays(t, app)
	assert.Equal(t, "Dinner", days[0].Activities[0].Title)
	assert.Equal(t, "Snorkel", days[0].Activities[1].Title)
}

func TestActivityMoveCmd_BadPosition(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "activity", "move", "1", "9", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no activity 9")
}

func TestActivityTodoCmds(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "activity", "todo", "add", "1", "1", "Pack", "fins")
	require.NoError(t, err)
	a := loadDays(t, app)[0].Activities[0]
	require.Len(t, a.Checklist, 1)
	assert.Equal(t, "Pack fins", a.Checklist[0].Text)
	assert.False(t, a.Checklist[0].Completed)

	_, err = executeCmd(t, app, "activity", "todo", "toggle", "1", "1", "1")
	require.NoError(t, err)
	assert.True(t, loadDays(t, app)[0].Activities[0].Checklist[0].Completed)

	_, err = executeCmd(t, app, "activity", "todo", "rm", "1", "1", "1")
	require.NoError(t, err)
	assert.Empty(t, loadDays(t, app)[0].Activities[0].Checklist)
}

func TestActivityTodoCmd_BadItem(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "activity", "todo", "toggle", "1", "1", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no checklist item")
}

// --- export ---

func TestExportCmd_WritesFile(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	out := filepath.Join(t.TempDir(), "trip.txt")
	_, err := executeCmd(t, app, "export", "--out", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Itinerary")
	assert.Contains(t, string(data), "Snorkel")
}

// --- progress ---

func TestProgressCmd(t *testing.T) {
	app := newTestApp(t)
	seedBoard(t, app)

	_, err := executeCmd(t, app, "progress")
	require.NoError(t, err)
}

// --- resolution helpers ---

func TestResolveDay(t *testing.T) {
	snap := planner.NewSnapshot([]domain.Day{
		testutil.NewTestDay(1),
		testutil.NewTestDay(2),
	})
	snap = snap.RenameDay("day-2", "Ubud Day Trip")

	d, err := resolveDay(snap, "1")
	require.NoError(t, err)
	assert.Equal(t, "day-1", d.ID)

	d, err = resolveDay(snap, "day-2")
	require.NoError(t, err)
	assert.Equal(t, "day-2", d.ID)

	d, err = resolveDay(snap, "ubud")
	require.NoError(t, err)
	assert.Equal(t, "day-2", d.ID)

	_, err = resolveDay(snap, "9")
	assert.Error(t, err)
	_, err = resolveDay(snap, "nowhere")
	assert.Error(t, err)
	_, err = resolveDay(snap, "")
	assert.Error(t, err)
}

func TestResolveDay_AmbiguousPrefix(t *testing.T) {
	snap := planner.NewSnapshot([]domain.Day{
		testutil.NewTestDay(1),
		testutil.NewTestDay(2),
	})

	_, err := resolveDay(snap, "day")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestResolveActivity(t *testing.T) {
	day := testutil.NewTestDay(1, testutil.WithActivities(
		testutil.NewTestActivity("One"),
		testutil.NewTestActivity("Two"),
	))

	a, err := resolveActivity(day, "2")
	require.NoError(t, err)
	assert.Equal(t, "Two", a.Title)

	_, err = resolveActivity(day, "0")
	assert.Error(t, err)
	_, err = resolveActivity(day, "three")
	assert.Error(t, err)
}
