package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/alexanderramin/travelscape/internal/planner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// openActivityForm switches the board into form mode with a huh form bound
// directly to the draft's activity fields.
func (m *boardModel) openActivityForm(draft *planner.Draft) (tea.Model, tea.Cmd) {
	m.draft = draft
	m.rename = false

	typeOptions := []huh.Option[string]{
		huh.NewOption("Activity", "activity"),
		huh.NewOption("Food", "food"),
		huh.NewOption("Travel", "travel"),
		huh.NewOption("Explore", "explore"),
		huh.NewOption("Accommodation", "accommodation"),
	}
	tagOptions := make([]huh.Option[string], len(domain.BuiltinTags))
	for i, tag := range domain.BuiltinTags {
		tagOptions[i] = huh.NewOption(tag, tag).Selected(draft.Activity.HasTag(tag))
	}

	typeValue := string(draft.Activity.Type)
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&draft.Activity.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start time").
				Placeholder("09:00").
				Value(&draft.Activity.TimeStart),
			huh.NewInput().
				Title("End time").
				Placeholder("10:30").
				Value(&draft.Activity.TimeEnd),
			huh.NewInput().
				Title("Location").
				Value(&draft.Activity.Location),
			huh.NewInput().
				Title("Notes").
				Value(&draft.Activity.Notes),
			huh.NewSelect[string]().
				Title("Type").
				Options(typeOptions...).
				Value(&typeValue),
			huh.NewMultiSelect[string]().
				Title("Tags").
				Options(tagOptions...).
				Value(&draft.Activity.Tags),
		),
	).WithTheme(huhTheme(m.th)).WithShowHelp(false)

	m.formTypeValue = &typeValue
	m.mode = modeForm
	return m, m.form.Init()
}

// openRenameForm switches into form mode with a single-field day rename.
func (m *boardModel) openRenameForm() (tea.Model, tea.Cmd) {
	day := m.currentDay()
	m.renameValue = day.Title
	m.rename = true

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Rename " + day.Title).
				Value(&m.renameValue),
		),
	).WithTheme(huhTheme(m.th)).WithShowHelp(false)

	m.mode = modeForm
	return m, m.form.Init()
}

func (m *boardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape discards the draft; nothing touches the snapshot.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.closeForm()
		return m, m.showToast("Discarded")
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		if m.rename {
			m.snap = m.snap.RenameDay(m.currentDay().ID, m.renameValue)
			m.dirty = true
			m.closeForm()
			return m, m.showToast("Day renamed")
		}

		m.draft.Activity.Type = domain.ActivityType(*m.formTypeValue)
		snap, err := m.draft.Commit(m.snap)
		if err != nil {
			m.closeForm()
			return m, m.showToast("Not saved: " + err.Error())
		}
		verb := "Added "
		if m.draft.Kind == planner.DraftEditing {
			verb = "Updated "
		}
		title := m.draft.Activity.Title
		m.snap = snap
		m.dirty = true
		m.closeForm()
		return m, m.showToast(verb + title)
	}

	return m, cmd
}

func (m *boardModel) closeForm() {
	m.mode = modeBrowse
	m.form = nil
	m.draft = nil
	m.rename = false
	m.formTypeValue = nil
	m.clampCursor()
}
