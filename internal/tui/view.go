package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yonasmekonnen/nesha/internal/app"
	"github.com/yonasmekonnen/nesha/internal/ethiopic"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHome:
		content = m.viewHome()
	case StateHabits:
		content = docStyle.Render(m.habitsModel.View())
	case StateTasks:
		content = docStyle.Render(m.tasksModel.View())
	case StateNotes:
		content = docStyle.Render(m.notesModel.View())
	case StateChat:
		content = docStyle.Render(m.chatModel.View())
	case StateSettings:
		content = m.viewSettings()
	case StateAddHabit, StateAddTask, StateAddNote, StateEditNote, StateEditSettings:
		content = m.form.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Home", "Habits", "Tasks", "Notes", "Chat", "Settings"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHome() string {
	settings := m.svc.Settings()
	today := ethiopic.Today()

	greeting := "Selam"
	if settings.Name != "" {
		greeting = fmt.Sprintf("Selam, %s", settings.Name)
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(greeting))
	sb.WriteString("\n")
	sb.WriteString(subtleStyle.Render(fmt.Sprintf("%s, %s", today.DayName, ethiopic.Format(today, settings.Language))))
	sb.WriteString("\n\n")

	advice := m.advice
	if advice == "" {
		advice = "Fetching today's advice..."
	}
	sb.WriteString(adviceStyle.Render(advice))
	sb.WriteString("\n\n")

	reminders := m.svc.Reminders()
	if len(reminders) > 0 {
		sb.WriteString(headerStyle.Render("Reminders"))
		sb.WriteString("\n")
		for _, r := range reminders {
			sb.WriteString(reminderStyle.Render("• " + r.Text))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	habits := m.svc.Habits()
	done := 0
	day := app.Today()
	for _, h := range habits {
		if h.CompletedOn(day) {
			done++
		}
	}
	sb.WriteString(subtleStyle.Render(fmt.Sprintf("%d/%d habits done today · press 'r' for fresh advice", done, len(habits))))

	return docStyle.Render(sb.String())
}

func (m Model) viewSettings() string {
	s := m.svc.Settings()

	lang := "English"
	if s.Language == "am" {
		lang = "አማርኛ"
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Settings"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("  Language:  %s\n", lang))
	sb.WriteString(fmt.Sprintf("  Dark Mode: %v\n", s.DarkMode))
	name := s.Name
	if name == "" {
		name = subtleStyle.Render("(not set)")
	}
	sb.WriteString(fmt.Sprintf("  Name:      %s\n", name))
	sb.WriteString("\n")
	sb.WriteString(subtleStyle.Render("press 'e' to edit"))

	return docStyle.Render(sb.String())
}
