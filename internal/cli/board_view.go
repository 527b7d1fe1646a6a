package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/travelscape/internal/cli/formatter"
	"github.com/alexanderramin/travelscape/internal/domain"
	"github.com/alexanderramin/travelscape/internal/lookup"
	"github.com/alexanderramin/travelscape/internal/planner"
	"github.com/charmbracelet/lipgloss"
)

const columnWidth = 28

func (m *boardModel) View() string {
	if m.mode == modeForm && m.form != nil {
		return m.headerView() + "\n\n" + m.form.View()
	}
	if m.mode == modeMood {
		return m.headerView() + "\n\n" + m.moodView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.boardView())
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

func (m *boardModel) headerView() string {
	r := planner.Progress(m.snap.Days)
	title := m.th.Header.Render(m.setup.Destination)
	if m.dirty {
		title += formatter.StyleYellow.Render(" ●")
	}
	return title + "\n" + formatter.RenderBar(r.Percent, 20) + "  " + formatter.Dim(r.Message())
}

func (m *boardModel) boardView() string {
	cols := make([]string, len(m.snap.Days))
	for i, d := range m.snap.Days {
		cols[i] = m.columnView(i, d)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m *boardModel) columnView(dayIdx int, d domain.Day) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(formatter.ColorDim).
		Padding(0, 1).
		Width(columnWidth)
	if dayIdx == m.dayIdx {
		border = border.BorderForeground(m.th.Accent)
	}

	var b strings.Builder
	heading := formatter.Bold(d.Title)
	if d.Mood != nil {
		heading += " " + d.Mood.Emoji
	}
	b.WriteString(heading)
	b.WriteString("\n")

	vis := m.visible(d)
	if len(vis) == 0 {
		b.WriteString(formatter.Dim("(empty)"))
	}
	for pos, real := range vis {
		b.WriteString(m.cardView(dayIdx, pos, real, d.Activities[real]))
		if pos < len(vis)-1 {
			b.WriteString("\n")
		}
	}

	// In move mode an extra slot past the last card marks "drop at end".
	if m.mode == modeMove && dayIdx == m.dayIdx && m.actIdx == len(vis) {
		b.WriteString("\n" + m.th.Badge.Render("▸ (drop here)"))
	}

	return border.Render(b.String())
}

func (m *boardModel) cardView(dayIdx, pos, real int, a domain.Activity) string {
	cursor := "  "
	selected := dayIdx == m.dayIdx && pos == m.actIdx
	if selected {
		cursor = m.th.Badge.Render("▸ ")
	}

	grabbed := m.mode == modeMove && m.snap.Days[dayIdx].ID == m.grabDay && real == m.grabIdx
	title := a.Title
	if grabbed {
		title = "◈ " + title
	}

	line := cursor
	if a.TimeStart != "" {
		line += formatter.Dim(a.TimeStart) + " "
	}
	if selected || grabbed {
		line += formatter.Bold(title)
	} else {
		line += formatter.StyleFg.Render(title)
	}

	var extras []string
	extras = append(extras, m.th.Badge.Render(string(a.Type)))
	if w, ok := lookup.WeatherFor(a.Location); ok {
		extras = append(extras, w.Icon+" "+w.Temp)
	}
	if c, ok := lookup.Coords(a.Location); ok {
		extras = append(extras, formatter.FormatCoords(c))
	}
	if len(a.Checklist) > 0 {
		done := 0
		for _, item := range a.Checklist {
			if item.Completed {
				done++
			}
		}
		extras = append(extras, fmt.Sprintf("☑ %d/%d", done, len(a.Checklist)))
	}
	line += "\n   " + formatter.Dim(strings.Join(extras, " · "))
	return line
}

func (m *boardModel) moodView() string {
	day := m.currentDay()
	var b strings.Builder
	b.WriteString(m.th.Header.Render("Mood for "+day.Title) + "\n\n")

	labels := []string{"(clear)"}
	for _, mood := range domain.Moods {
		labels = append(labels, mood.Emoji+" "+mood.Label)
	}
	for i, label := range labels {
		if i == m.moodIdx {
			b.WriteString(m.th.Badge.Render("▸ "+label) + "\n")
		} else {
			b.WriteString("  " + label + "\n")
		}
	}
	b.WriteString("\n" + formatter.Dim("enter apply · esc cancel"))
	return b.String()
}

func (m *boardModel) footerView() string {
	var b strings.Builder
	if m.toast != "" {
		b.WriteString(formatter.StyleYellow.Render(m.toast))
	}
	b.WriteString("\n")
	if m.mode == modeMove {
		b.WriteString(formatter.Dim("moving: arrows pick the target slot · enter drop · esc cancel"))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}
