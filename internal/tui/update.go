package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/yonasmekonnen/nesha/internal/app"
	"github.com/yonasmekonnen/nesha/internal/i18n"
	"github.com/yonasmekonnen/nesha/internal/models"
	"github.com/yonasmekonnen/nesha/internal/tui/components/chatview"
	"github.com/yonasmekonnen/nesha/internal/tui/components/habitlist"
	"github.com/yonasmekonnen/nesha/internal/tui/components/notelist"
	"github.com/yonasmekonnen/nesha/internal/tui/components/tasklist"
)

type adviceMsg struct {
	text string
}

type chatReplyMsg struct {
	gen     int
	text    string
	isError bool
}

func (m Model) fetchAdviceCmd(refresh bool) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if refresh {
			return adviceMsg{text: svc.RefreshAdvice(ctx)}
		}
		return adviceMsg{text: svc.DailyAdvice(ctx)}
	}
}

func (m Model) sendChatCmd(gen int, text string) tea.Cmd {
	session := m.chat
	return func() tea.Msg {
		if session == nil {
			return chatReplyMsg{
				gen:     gen,
				text:    i18n.T(models.LanguageEnglish).ChatUnavailable,
				isError: true,
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		reply := session.Send(ctx, text)
		isError := reply == i18n.T(models.LanguageEnglish).ChatError
		return chatReplyMsg{gen: gen, text: reply, isError: isError}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentWidth := msg.Width - 4
		contentHeight := msg.Height - 7
		m.habitsModel.SetSize(contentWidth, contentHeight)
		m.tasksModel.SetSize(contentWidth, contentHeight)
		m.notesModel.SetSize(contentWidth, contentHeight)
		m.chatModel.SetSize(contentWidth, contentHeight)
		return m, nil

	case adviceMsg:
		m.advice = msg.text
		return m, nil

	case chatReplyMsg:
		// A reply from a superseded conversation is dropped
		if msg.gen != m.chatGen {
			return m, nil
		}
		m.waiting = false
		m.svc.AppendChatMessage(models.RoleModel, msg.text, msg.isError)
		m.chatModel.SetWaiting(false)
		m.chatModel.SetMessages(m.svc.ChatMessages())
		return m, nil
	}

	// Form sub-states consume everything until completed or aborted
	switch m.state {
	case StateAddHabit:
		return m.updateHabitForm(msg)
	case StateAddTask:
		return m.updateTaskForm(msg)
	case StateAddNote, StateEditNote:
		return m.updateNoteForm(msg)
	case StateEditSettings:
		return m.updateSettingsForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}
	}

	// Component intents
	switch msg := msg.(type) {
	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{Frequency: "daily"}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()
	case habitlist.ToggleHabitMsg:
		m.svc.ToggleHabitCompletion(msg.ID, app.Today())
		m.habitsModel.SetHabits(m.svc.Habits(), app.Today())
		return m, nil
	case habitlist.DeleteHabitMsg:
		m.svc.DeleteHabit(msg.ID)
		m.habitsModel.SetHabits(m.svc.Habits(), app.Today())
		return m, nil

	case tasklist.AddTaskMsg:
		m.taskForm = &TaskFormModel{Priority: "medium"}
		m.form = newTaskForm(m.taskForm)
		m.state = StateAddTask
		return m, m.form.Init()
	case tasklist.ToggleTaskMsg:
		m.svc.ToggleTask(msg.ID)
		m.refreshTasks()
		return m, nil
	case tasklist.DeleteTaskMsg:
		m.svc.DeleteTask(msg.ID)
		m.refreshTasks()
		return m, nil
	case tasklist.CycleSortMsg:
		switch m.taskSort {
		case app.SortByCreation:
			m.taskSort = app.SortByPriority
		case app.SortByPriority:
			m.taskSort = app.SortByDueDate
		default:
			m.taskSort = app.SortByCreation
		}
		m.refreshTasks()
		return m, nil

	case notelist.AddNoteMsg:
		m.noteForm = &NoteFormModel{}
		m.form = newNoteForm(m.noteForm)
		m.state = StateAddNote
		return m, m.form.Init()
	case notelist.EditNoteMsg:
		for _, n := range m.svc.Notes() {
			if n.ID == msg.ID {
				m.noteForm = &NoteFormModel{Content: n.Content}
				m.editingNoteID = n.ID
				m.form = newNoteForm(m.noteForm)
				m.state = StateEditNote
				return m, m.form.Init()
			}
		}
		return m, nil
	case notelist.DeleteNoteMsg:
		m.svc.DeleteNote(msg.ID)
		m.notesModel.SetNotes(m.svc.Notes())
		return m, nil

	case chatview.SendMsg:
		m.svc.AppendChatMessage(models.RoleUser, msg.Text, false)
		m.chatGen++
		m.waiting = true
		m.chatModel.SetMessages(m.svc.ChatMessages())
		m.chatModel.SetWaiting(true)
		return m, m.sendChatCmd(m.chatGen, msg.Text)
	case chatview.ClearMsg:
		m.svc.ClearChat()
		m.chat.Clear()
		m.chatGen++
		m.waiting = false
		m.chatModel.SetWaiting(false)
		m.chatModel.SetMessages(nil)
		return m, nil
	}

	// Delegate to the active tab
	var cmd tea.Cmd
	switch m.state {
	case StateHabits:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
	case StateTasks:
		m.tasksModel, cmd = m.tasksModel.Update(msg)
	case StateNotes:
		m.notesModel, cmd = m.notesModel.Update(msg)
	case StateChat:
		m.chatModel, cmd = m.chatModel.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) refreshTasks() {
	m.tasksModel.SetTasks(m.svc.SortedTasks(m.taskSort), app.Today())
}

func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	// The chat input owns most keys; only ctrl+c and tab switching stay global
	if m.state == StateChat {
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return tea.Quit, true
		case "tab", "shift+tab":
		default:
			return nil, false
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil, true
	case key.Matches(msg, m.keys.Tab):
		if m.state < tabCount {
			m.state = (m.state + 1) % tabCount
		}
		return nil, true
	case key.Matches(msg, m.keys.ShiftTab):
		if m.state < tabCount {
			m.state = (m.state + tabCount - 1) % tabCount
		}
		return nil, true
	case key.Matches(msg, m.keys.Refresh) && m.state == StateHome:
		m.advice = ""
		return m.fetchAdviceCmd(true), true
	case key.Matches(msg, m.keys.Edit) && m.state == StateSettings:
		s := m.svc.Settings()
		m.settingsForm = &SettingsFormModel{
			Language: string(s.Language),
			DarkMode: s.DarkMode,
			Name:     s.Name,
		}
		m.form = newSettingsForm(m.settingsForm)
		m.state = StateEditSettings
		return m.form.Init(), true
	}
	return nil, false
}

func (m Model) updateHabitForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateHabits
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		m.svc.AddHabit(m.habitForm.Title, models.Frequency(m.habitForm.Frequency), m.habitForm.Description)
		m.habitsModel.SetHabits(m.svc.Habits(), app.Today())
		m.state = StateHabits
	case huh.StateAborted:
		m.state = StateHabits
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateTasks
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		reminder := m.taskForm.Reminder && m.taskForm.Due != ""
		m.svc.AddTask(m.taskForm.Title, models.Priority(m.taskForm.Priority), m.taskForm.Due, reminder)
		m.refreshTasks()
		m.state = StateTasks
	case huh.StateAborted:
		m.state = StateTasks
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateNoteForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateNotes
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateEditNote {
			m.svc.UpdateNote(m.editingNoteID, m.noteForm.Content)
			m.editingNoteID = ""
		} else {
			m.svc.AddNote(m.noteForm.Content)
		}
		m.notesModel.SetNotes(m.svc.Notes())
		m.state = StateNotes
	case huh.StateAborted:
		m.editingNoteID = ""
		m.state = StateNotes
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateSettings
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if err := m.svc.SetLanguage(models.Language(m.settingsForm.Language)); err == nil {
			// Language changes invalidate the cached advice wording
			m.advice = ""
			cmds = append(cmds, m.fetchAdviceCmd(false))
		}
		m.svc.SetDarkMode(m.settingsForm.DarkMode)
		m.svc.SetName(m.settingsForm.Name)
		m.state = StateSettings
	case huh.StateAborted:
		m.state = StateSettings
	}
	return m, tea.Batch(cmds...)
}
