package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/travelscape/internal/cli/formatter"
	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/alexanderramin/travelscape/internal/planner"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type boardMode int

const (
	modeBrowse boardMode = iota
	modeMove
	modeForm
	modeMood
)

// filterCycle is the tag ring the f key steps through. The empty entry
// means "no filter"; activity types count as tags.
var filterCycle = []string{
	"", "planned", "booked", "must-do",
	"food", "travel", "explore", "accommodation",
}

// toastExpireMsg clears the toast line. The sequence number ignores
// expirations of toasts that have since been replaced.
type toastExpireMsg struct{ seq int }

const toastWindow = 4 * time.Second

type boardKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Grab   key.Binding
	Drop   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Todo   key.Binding
	Undo   key.Binding
	Mood   key.Binding
	Rename key.Binding
	AddDay key.Binding
	Filter key.Binding
	Tag    key.Binding
	Save   key.Binding
	Quit   key.Binding
	Cancel key.Binding
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Add, k.Edit, k.Delete, k.Undo, k.Mood, k.Filter, k.Save, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Grab, k.Drop, k.Add, k.Edit, k.Delete, k.Todo, k.Undo},
		{k.Mood, k.Rename, k.AddDay, k.Filter, k.Tag, k.Save, k.Quit},
	}
}

var boardKeys = boardKeyMap{
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/→", "day")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("l", "day")),
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/j", "activity")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j", "activity")),
	Grab:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "grab")),
	Drop:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	Todo:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tick todo")),
	Undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	Mood:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mood")),
	Rename: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename day")),
	AddDay: key.NewBinding(key.WithKeys("+"), key.WithHelp("+", "add day")),
	Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
	Tag:    key.NewBinding(key.WithKeys("#"), key.WithHelp("#", "toggle tag")),
	Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "save & quit")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

type boardModel struct {
	app   *App
	setup domain.TripSetup
	th    formatter.Theme
	snap  planner.Snapshot

	mode   boardMode
	dayIdx int
	actIdx int

	// move mode: where the grabbed activity was picked up
	grabDay string
	grabIdx int

	// form mode: pending activity draft or day rename
	draft         *planner.Draft
	form          *huh.Form
	formTypeValue *string
	rename        bool
	renameValue   string

	moodIdx   int
	filterIdx int

	toast    string
	toastSeq int
	dirty    bool

	keys   boardKeyMap
	help   help.Model
	width  int
	height int
}

func newBoardModel(app *App) *boardModel {
	ctx := context.Background()
	setup := app.Setup.Get(ctx)
	return &boardModel{
		app:   app,
		setup: setup,
		th:    formatter.ThemeFor(setup.TripType),
		snap:  app.Itinerary.Load(ctx),
		keys:  boardKeys,
		help:  help.New(),
	}
}

func (m *boardModel) Init() tea.Cmd {
	return nil
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastExpireMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeMood:
			return m.updateMood(msg)
		case modeMove:
			return m.updateMove(msg)
		default:
			return m.updateBrowse(msg)
		}
	}

	if m.mode == modeForm {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m *boardModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.dirty {
			if err := m.app.Itinerary.Save(context.Background(), m.snap); err != nil {
				return m, m.showToast("Save failed: " + err.Error())
			}
		}
		return m, tea.Quit
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.moveCursorDay(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursorDay(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursorActivity(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursorActivity(1)

	case key.Matches(msg, m.keys.Grab):
		return m.startMove()

	case key.Matches(msg, m.keys.Add):
		return m.openActivityForm(planner.NewDraft(m.currentDay().ID))

	case key.Matches(msg, m.keys.Edit):
		if a, ok := m.currentActivity(); ok {
			return m.openActivityForm(planner.EditDraft(m.currentDay().ID, a))
		}

	case key.Matches(msg, m.keys.Delete):
		return m.deleteCurrent()

	case key.Matches(msg, m.keys.Todo):
		return m.tickTodo()

	case key.Matches(msg, m.keys.Undo):
		return m.undoDelete()

	case key.Matches(msg, m.keys.Mood):
		m.mode = modeMood
		m.moodIdx = 0
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		return m.openRenameForm()

	case key.Matches(msg, m.keys.AddDay):
		m.snap = m.snap.AddDay()
		m.dirty = true
		return m, m.showToast("Added " + m.snap.Days[len(m.snap.Days)-1].Title)

	case key.Matches(msg, m.keys.Filter):
		m.filterIdx = (m.filterIdx + 1) % len(filterCycle)
		m.clampCursor()
		if f := filterCycle[m.filterIdx]; f != "" {
			return m, m.showToast("Filter: #" + f)
		}
		return m, m.showToast("Filter cleared")

	case key.Matches(msg, m.keys.Tag):
		return m.toggleFilterTag()

	case key.Matches(msg, m.keys.Save):
		if err := m.app.Itinerary.Save(context.Background(), m.snap); err != nil {
			return m, m.showToast("Save failed: " + err.Error())
		}
		m.dirty = false
		return m, m.showToast("Itinerary saved")
	}
	return m, nil
}

func (m *boardModel) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
		return m, m.showToast("Move cancelled")

	case key.Matches(msg, m.keys.Left):
		m.moveCursorDay(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursorDay(1)
	case key.Matches(msg, m.keys.Up):
		m.moveCursorActivity(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursorActivity(1)

	case key.Matches(msg, m.keys.Drop), key.Matches(msg, m.keys.Grab):
		req := planner.MoveRequest{
			FromDay:   m.grabDay,
			FromIndex: m.grabIdx,
			ToDay:     m.currentDay().ID,
			ToIndex:   m.actIdx,
		}
		snap, outcome := m.snap.Move(req)
		m.mode = modeBrowse
		if !outcome.Changed() {
			return m, m.showToast("Nothing moved")
		}
		m.snap = snap
		m.dirty = true
		if outcome.Kind == planner.MoveCrossDay {
			return m, m.showToast("Activity moved to " + outcome.DestTitle)
		}
		return m, m.showToast("Activity reordered")
	}
	return m, nil
}

func (m *boardModel) updateMood(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Entry 0 clears the mood; entries 1..n are the catalog.
	count := len(domain.Moods) + 1
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeBrowse
	case key.Matches(msg, m.keys.Up):
		m.moodIdx = (m.moodIdx + count - 1) % count
	case key.Matches(msg, m.keys.Down):
		m.moodIdx = (m.moodIdx + 1) % count
	case key.Matches(msg, m.keys.Drop):
		day := m.currentDay()
		var mood *domain.Mood
		if m.moodIdx > 0 {
			chosen := domain.Moods[m.moodIdx-1]
			mood = &chosen
		}
		m.snap = m.snap.SetDayMood(day.ID, mood)
		m.mode = modeBrowse
		if err := m.app.Itinerary.SetMood(context.Background(), day.ID, mood); err != nil {
			return m, m.showToast("Mood not saved: " + err.Error())
		}
		if mood == nil {
			return m, m.showToast("Mood cleared for " + day.Title)
		}
		return m, m.showToast(day.Title + " is now " + mood.Emoji + " " + mood.Label)
	}
	return m, nil
}

func (m *boardModel) startMove() (tea.Model, tea.Cmd) {
	if m.filterActive() {
		return m, m.showToast("Clear the filter to move activities (f)")
	}
	if _, ok := m.currentActivity(); !ok {
		return m, nil
	}
	m.grabDay = m.currentDay().ID
	m.grabIdx = m.actIdx
	m.mode = modeMove
	return m, nil
}

func (m *boardModel) deleteCurrent() (tea.Model, tea.Cmd) {
	a, ok := m.currentActivity()
	if !ok {
		return m, nil
	}
	day := m.currentDay()
	snap, removed, ok := m.snap.DeleteActivity(day.ID, a.ID)
	if !ok {
		return m, nil
	}
	m.snap = snap
	m.dirty = true
	m.clampCursor()
	if err := m.app.Itinerary.StashRemoved(context.Background(), day.ID, removed); err != nil {
		return m, m.showToast("Removed " + removed.Title + " (undo unavailable: " + err.Error() + ")")
	}
	return m, m.showToast("Removed " + removed.Title + " (u to undo)")
}

// toggleFilterTag stamps the active filter tag onto the card under the
// cursor, or peels it off again. The filter ring doubles as the tag
// palette: pick a tag with f, then # flips it.
func (m *boardModel) toggleFilterTag() (tea.Model, tea.Cmd) {
	tag := filterCycle[m.filterIdx]
	if tag == "" {
		return m, m.showToast("Pick a tag with f first")
	}
	a, ok := m.currentActivity()
	if !ok {
		return m, nil
	}
	draft := planner.EditDraft(m.currentDay().ID, a)
	draft.ToggleTag(tag)
	snap, err := draft.Commit(m.snap)
	if err != nil {
		return m, m.showToast("Tag not changed: " + err.Error())
	}
	m.snap = snap
	m.dirty = true
	m.clampCursor()
	for _, t := range draft.Activity.Tags {
		if t == tag {
			return m, m.showToast("Tagged #" + tag)
		}
	}
	return m, m.showToast("Untagged #" + tag)
}

// tickTodo checks off the next open checklist item on the card under the
// cursor, straight onto the committed activity without going through the
// edit form. Once every item is done another press resets them all.
func (m *boardModel) tickTodo() (tea.Model, tea.Cmd) {
	a, ok := m.currentActivity()
	if !ok || len(a.Checklist) == 0 {
		return m, nil
	}
	items := append([]domain.ChecklistItem(nil), a.Checklist...)
	ticked := ""
	for i := range items {
		if !items[i].Completed {
			items[i].Completed = true
			ticked = items[i].Text
			break
		}
	}
	if ticked == "" {
		for i := range items {
			items[i].Completed = false
		}
	}
	m.snap = m.snap.ReplaceChecklist(m.currentDay().ID, a.ID, items)
	m.dirty = true
	if ticked == "" {
		return m, m.showToast("Checklist reset")
	}
	return m, m.showToast("Done: " + ticked)
}

func (m *boardModel) undoDelete() (tea.Model, tea.Cmd) {
	snap, restored, ok, err := m.app.Itinerary.RestoreRemoved(context.Background(), m.snap)
	if err != nil {
		return m, m.showToast("Undo failed: " + err.Error())
	}
	if !ok {
		return m, m.showToast("Nothing to undo")
	}
	m.snap = snap
	m.dirty = true
	return m, m.showToast("Restored " + restored.Title)
}

// ── cursor helpers ──────────────────────────────────────────────────────

func (m *boardModel) currentDay() domain.Day {
	return m.snap.Days[m.dayIdx]
}

// visible returns the activities of the day shown under the current
// filter, paired with their real positions in the snapshot.
func (m *boardModel) visible(day domain.Day) []int {
	f := filterCycle[m.filterIdx]
	idx := make([]int, 0, len(day.Activities))
	for i, a := range day.Activities {
		if f == "" || a.HasTag(f) {
			idx = append(idx, i)
		}
	}
	return idx
}

func (m *boardModel) filterActive() bool {
	return filterCycle[m.filterIdx] != ""
}

// currentActivity returns the activity under the cursor, honoring the
// filter.
func (m *boardModel) currentActivity() (domain.Activity, bool) {
	day := m.currentDay()
	vis := m.visible(day)
	if m.actIdx < 0 || m.actIdx >= len(vis) {
		return domain.Activity{}, false
	}
	return day.Activities[vis[m.actIdx]], true
}

func (m *boardModel) moveCursorDay(delta int) {
	n := len(m.snap.Days)
	if n == 0 {
		return
	}
	m.dayIdx = (m.dayIdx + delta + n) % n
	m.clampCursor()
}

func (m *boardModel) moveCursorActivity(delta int) {
	n := len(m.visible(m.currentDay()))
	// In move mode the cursor may sit one past the end: that is the
	// "drop at the end" slot.
	if m.mode == modeMove {
		n++
	}
	if n == 0 {
		m.actIdx = 0
		return
	}
	m.actIdx = (m.actIdx + delta + n) % n
}

func (m *boardModel) clampCursor() {
	if m.dayIdx >= len(m.snap.Days) {
		m.dayIdx = len(m.snap.Days) - 1
	}
	if m.dayIdx < 0 {
		m.dayIdx = 0
	}
	n := len(m.visible(m.currentDay()))
	if m.actIdx >= n {
		m.actIdx = n - 1
	}
	if m.actIdx < 0 {
		m.actIdx = 0
	}
}

func (m *boardModel) showToast(text string) tea.Cmd {
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastWindow, func(time.Time) tea.Msg {
		return toastExpireMsg{seq: seq}
	})
}
